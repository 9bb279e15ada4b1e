package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/logger"
)

// GetUsers lists all user accounts (staff only)
func GetUsers() ([]User, error) {
	logger.Debug("Fetching user list")

	resp, err := client.GetClient().
		R().
		Get("/users/admin/users/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, err
	}

	logger.Debug("Users fetched", "count", len(users))
	return users, nil
}

// DeleteUser removes a user account (staff only)
func DeleteUser(id string) error {
	logger.Debug("Deleting user", "id", id)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/users/admin/users/%s/", id))

	return CheckResponse(resp, err)
}
