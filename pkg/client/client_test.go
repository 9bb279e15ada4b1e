package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neofinance/neofin/pkg/session"
)

// TestInitWiresSessionManager validates Init stores the session manager
func TestInitWiresSessionManager(t *testing.T) {
	mgr := session.NewManager(session.NewStore(t.TempDir()))

	Init(mgr)

	if httpClient == nil {
		t.Fatal("Init should create the HTTP client")
	}
	if Sessions() != mgr {
		t.Error("Sessions should return the manager Init was given")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	mgr := session.NewManager(session.NewStore(t.TempDir()))
	Init(mgr)

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestRequestsCarryBearerToken validates that after login the pipeline
// attaches the session's access token to every outgoing request
func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"username":"alice"}`)
	}))
	defer server.Close()

	mgr := session.NewManager(session.NewStore(t.TempDir()))
	if err := mgr.Set(session.Session{AccessToken: "T1", RefreshToken: "R1", Username: "alice"}); err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}

	Init(mgr)
	httpClient.SetBaseURL(server.URL)

	resp, err := GetClient().R().Get("/users/me/")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Fatalf("Expected success, got %d", resp.StatusCode())
	}
	if gotAuth != "Bearer T1" {
		t.Errorf("Authorization = %q, want Bearer T1", gotAuth)
	}
}

// TestLoggedOutRequestsHaveNoBearer validates no credential leaks out
// when the session is empty
func TestLoggedOutRequestsHaveNoBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"articles":[]}`)
	}))
	defer server.Close()

	mgr := session.NewManager(session.NewStore(t.TempDir()))
	Init(mgr)
	httpClient.SetBaseURL(server.URL)

	if _, err := GetClient().R().Get("/news/"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization should be empty when logged out, got %q", gotAuth)
	}
}

// TestInitSetsUserAgent validates default headers
func TestInitSetsUserAgent(t *testing.T) {
	mgr := session.NewManager(session.NewStore(t.TempDir()))
	Init(mgr)

	agent := httpClient.Header.Get("User-Agent")
	if agent != "neofin/0.1.0" {
		t.Errorf("User-Agent = %q, want neofin/0.1.0", agent)
	}
}
