package service

import (
	"fmt"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/guard"
	"github.com/neofinance/neofin/pkg/prompter"
	"github.com/neofinance/neofin/pkg/session"
)

type AdminService struct {
	sessions *session.Manager
}

// NewAdminService creates a new admin service
func NewAdminService(sessions *session.Manager) *AdminService {
	return &AdminService{sessions: sessions}
}

// ListUsers displays all accounts (staff only)
func (s *AdminService) ListUsers() error {
	if err := guard.RequireStaff(s.sessions); err != nil {
		return err
	}

	users, err := api.GetUsers()
	if err != nil {
		formatter.PrintError("Failed to fetch users: %v", err)
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID,
			u.Username,
			u.Email,
			boolMark(u.IsStaff),
			boolMark(u.IsGuest),
		})
	}

	formatter.PrintTable([]string{"ID", "Username", "Email", "Staff", "Guest"}, rows)
	return nil
}

// DeleteUser removes an account after confirmation (staff only)
func (s *AdminService) DeleteUser(id string, skipConfirm bool) error {
	if err := guard.RequireStaff(s.sessions); err != nil {
		return err
	}

	if !skipConfirm {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete user %s? This cannot be undone.", id))
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteUser(id); err != nil {
		if api.IsNotFound(err) {
			formatter.PrintError("User not found: %s", id)
			return err
		}
		formatter.PrintError("Failed to delete user: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ User deleted")
	return nil
}

func boolMark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
