package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/neofinance/neofin/pkg/config"
	"github.com/neofinance/neofin/pkg/logger"
	"github.com/neofinance/neofin/pkg/session"
)

var httpClient *resty.Client
var sessions *session.Manager

// Init initializes the HTTP client
func Init(mgr *session.Manager) {
	sessions = mgr
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "neofin/0.1.0")
	httpClient.SetTransport(newAuthTransport(mgr, baseURL, nil))

	// Attach the bearer credential and add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)

		if token := mgr.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init(sessions)
	}
	return httpClient
}

// Sessions returns the session manager the client was initialized with
func Sessions() *session.Manager {
	return sessions
}
