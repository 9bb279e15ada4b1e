package api

import (
	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/logger"
)

// Login authenticates user with email and password
func Login(email, password string) (*LoginResponse, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/login/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "username", loginResp.Username)
	return &loginResp, nil
}

// Register creates a new account
func Register(email, username, password string) (*RegisterResponse, error) {
	logger.Debug("Attempting registration", "email", email, "username", username)

	req := RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/register/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var registerResp RegisterResponse
	if err := json.Unmarshal(resp.Body(), &registerResp); err != nil {
		return nil, err
	}

	logger.Debug("Registration successful", "username", registerResp.Username)
	return &registerResp, nil
}

// GuestSignup mints an ephemeral anonymous identity
func GuestSignup() (*GuestSignupResponse, error) {
	logger.Debug("Requesting guest identity")

	resp, err := client.GetClient().
		R().
		Post("/users/guest-signup/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var guestResp GuestSignupResponse
	if err := json.Unmarshal(resp.Body(), &guestResp); err != nil {
		return nil, err
	}

	logger.Debug("Guest signup successful", "username", guestResp.User.Username)
	return &guestResp, nil
}

// RefreshToken exchanges the refresh token for a new access token
func RefreshToken(refreshToken string) (*RefreshResponse, error) {
	logger.Debug("Refreshing access token")

	req := RefreshRequest{
		Refresh: refreshToken,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/refresh-token/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var refreshResp RefreshResponse
	if err := json.Unmarshal(resp.Body(), &refreshResp); err != nil {
		return nil, err
	}

	logger.Debug("Access token refreshed")
	return &refreshResp, nil
}

// GetCurrentUser gets the current authenticated user
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/users/me/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "username", user.Username)
	return &user, nil
}
