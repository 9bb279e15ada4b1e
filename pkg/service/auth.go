package service

import (
	"fmt"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/guard"
	"github.com/neofinance/neofin/pkg/logger"
	"github.com/neofinance/neofin/pkg/prompter"
	"github.com/neofinance/neofin/pkg/session"
)

type AuthService struct {
	sessions *session.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(sessions *session.Manager) *AuthService {
	return &AuthService{sessions: sessions}
}

// Login handles user login
func (s *AuthService) Login() error {
	// Check if already logged in
	if current, ok := s.sessions.Current(); ok {
		formatter.PrintWarning("Already logged in as %s", current.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	// Prompt for email and password
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}

	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	// Call login API
	formatter.PrintInfo("Authenticating...")
	loginResp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	// Persist the new session
	sess := session.Session{
		AccessToken:  loginResp.Access,
		RefreshToken: loginResp.Refresh,
		Username:     loginResp.Username,
		IsStaff:      loginResp.IsStaff,
	}
	if err := s.sessions.Set(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	if sess.IsStaff {
		formatter.PrintInfo("Logged in as %s (STAFF)", formatter.Bold.Sprint(sess.Username))
	} else {
		formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(sess.Username))
	}

	return nil
}

// Register creates a new account and logs it in
func (s *AuthService) Register() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		return fmt.Errorf("passwords do not match")
	}

	formatter.PrintInfo("Creating account...")
	registerResp, err := api.Register(email, username, password)
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	sess := session.Session{
		AccessToken:  registerResp.Access,
		RefreshToken: registerResp.Refresh,
		Username:     registerResp.Username,
	}
	if err := s.sessions.Set(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account created!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(sess.Username))
	return nil
}

// Guest signs in with a server-issued anonymous identity
func (s *AuthService) Guest() error {
	formatter.PrintInfo("Requesting guest access...")
	guestResp, err := api.GuestSignup()
	if err != nil {
		formatter.PrintError("Guest signup failed: %v", err)
		return err
	}

	sess := session.Session{
		AccessToken:  guestResp.Access,
		RefreshToken: guestResp.Refresh,
		Username:     guestResp.User.Username,
		IsGuest:      true,
	}
	if err := s.sessions.Set(sess); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Continuing as guest %s", formatter.Bold.Sprint(sess.Username))
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout() error {
	if _, ok := s.sessions.Current(); !ok {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}

	if !confirm {
		return nil
	}

	if err := s.sessions.Clear(); err != nil {
		formatter.PrintError("Failed to clear session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// Me displays the current user's account details
func (s *AuthService) Me() error {
	if err := guard.RequireAuth(s.sessions); err != nil {
		return err
	}

	formatter.PrintInfo("Fetching user information...")
	user, err := api.GetCurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			formatter.PrintError("Session expired. Please login again.")
			s.sessions.Clear()
			return fmt.Errorf("unauthorized")
		}
		formatter.PrintError("Failed to fetch user: %v", err)
		return err
	}

	fmt.Printf("\n")
	keyValues := map[string]interface{}{
		"Username": user.Username,
		"Email":    user.Email,
		"Guest":    user.IsGuest,
	}
	if user.DateJoined != "" {
		keyValues["Joined"] = user.DateJoined
	}
	if user.IsStaff {
		keyValues["Staff"] = "✓ YES"
	}
	formatter.PrintKeyValue(keyValues)

	return nil
}

// Refresh exchanges the refresh token for a new access token
func (s *AuthService) Refresh() error {
	refreshToken := s.sessions.RefreshToken()
	if refreshToken == "" {
		return fmt.Errorf("not logged in")
	}

	logger.Debug("Refreshing token")
	refreshResp, err := api.RefreshToken(refreshToken)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.sessions.Clear()
			return fmt.Errorf("refresh token expired, please login again")
		}
		return err
	}

	if err := s.sessions.SetAccessToken(refreshResp.Access); err != nil {
		return err
	}

	logger.Debug("Token refreshed successfully")
	formatter.PrintSuccess("✓ Token refreshed")
	return nil
}
