package api

import (
	"io"

	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/logger"
)

// Chat sends a message to the budgeting assistant
func Chat(message string) (*ChatResponse, error) {
	logger.Debug("Sending assistant message")

	req := ChatRequest{
		Message: message,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/assistant/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return nil, err
	}

	return &chatResp, nil
}

// ChatWithCSV uploads a CSV of transactions plus an optional message and
// returns the assistant's reply about its contents
func ChatWithCSV(filename string, file io.Reader, message string) (*ChatResponse, error) {
	logger.Debug("Uploading CSV to assistant", "file", filename)

	req := client.GetClient().
		R().
		SetFileReader("file", filename, file)

	if message != "" {
		req.SetFormData(map[string]string{"message": message})
	}

	resp, err := req.Post("/assistant/csv/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(resp.Body(), &chatResp); err != nil {
		return nil, err
	}

	return &chatResp, nil
}
