package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/neofinance/neofin/pkg/logger"
	"github.com/neofinance/neofin/pkg/session"
)

// Paths that never trigger the refresh flow. A 401 from any of these is a
// plain credential failure, not an expired session.
var authExemptPaths = []string{
	"/login/",
	"/register/",
	"/users/guest-signup/",
	"/api/refresh-token/",
}

// authTransport recovers from a 401 by exchanging the refresh token for a
// new access token and resending the original request. The resend goes
// through the base transport, so it happens at most once per original
// request. A second 401 propagates to the caller. Concurrent requests that
// 401 at the same time each refresh independently; last write wins.
type authTransport struct {
	base       http.RoundTripper
	sessions   *session.Manager
	refreshURL string
}

func newAuthTransport(mgr *session.Manager, baseURL string, base http.RoundTripper) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{
		base:       base,
		sessions:   mgr,
		refreshURL: strings.TrimRight(baseURL, "/") + "/api/refresh-token/",
	}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || t.sessions == nil || isAuthExempt(req.URL.Path) {
		return resp, nil
	}

	refreshToken := t.sessions.RefreshToken()
	if refreshToken == "" {
		// Nothing to refresh with; hand the 401 back untouched
		return resp, nil
	}

	access, refreshErr := t.refresh(req.Context(), refreshToken)
	if refreshErr != nil {
		logger.Warn("Token refresh failed, clearing session", "error", refreshErr)
		if clearErr := t.sessions.Clear(); clearErr != nil {
			logger.Error("Failed to clear session state", "error", clearErr)
		}
		return resp, nil
	}

	if err := t.sessions.SetAccessToken(access); err != nil {
		logger.Error("Failed to persist refreshed access token", "error", err)
	}

	retry, cloneErr := cloneRequest(req)
	if cloneErr != nil {
		logger.Warn("Cannot replay request after refresh", "error", cloneErr)
		return resp, nil
	}
	retry.Header.Set("Authorization", "Bearer "+access)

	// Drain the 401 body so the connection can be reused
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	logger.Debug("Replaying request with refreshed token", "method", retry.Method, "url", retry.URL.String())
	return t.base.RoundTrip(retry)
}

// refresh exchanges the refresh token for a new access token
func (t *authTransport) refresh(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh endpoint returned %d", resp.StatusCode)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}

	return out.Access, nil
}

// cloneRequest makes a replayable copy of req, rewinding the body
func cloneRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, fmt.Errorf("request body cannot be replayed")
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	return clone, nil
}

func isAuthExempt(path string) bool {
	for _, p := range authExemptPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}
