package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/errors"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/prompter"
	"github.com/neofinance/neofin/pkg/session"
)

type AssistantService struct {
	sessions *session.Manager
}

// NewAssistantService creates a new assistant service
func NewAssistantService(sessions *session.Manager) *AssistantService {
	return &AssistantService{sessions: sessions}
}

// Chat sends one message to the budgeting assistant and prints the reply.
// Prompts interactively when message is empty.
func (s *AssistantService) Chat(message string) error {
	if message == "" {
		var err error
		message, err = prompter.PromptString("You: ")
		if err != nil {
			return err
		}
	}
	if message == "" {
		return fmt.Errorf("message cannot be empty")
	}

	formatter.PrintInfo("Thinking...")
	reply, err := api.Chat(message)
	if err != nil {
		formatter.PrintError("The assistant is having a hard time responding. Please try again later.")
		return err
	}

	fmt.Printf("\n%s\n", reply.Response)
	return nil
}

// ChatCSV uploads a CSV of transactions for the assistant to analyze
func (s *AssistantService) ChatCSV(path, message string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFoundError(path)
		}
		return err
	}
	defer f.Close()

	formatter.PrintInfo("Uploading %s...", filepath.Base(path))
	reply, err := api.ChatWithCSV(filepath.Base(path), f, message)
	if err != nil {
		formatter.PrintError("CSV analysis failed: %v", err)
		return err
	}

	fmt.Printf("\n%s\n", reply.Response)
	return nil
}
