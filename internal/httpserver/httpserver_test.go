package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/webhook"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockEventUC struct {
	event.UseCase
	pingErr error
}

func (m *mockEventUC) Ping(ctx context.Context) error { return m.pingErr }

func (m *mockEventUC) Recent(ctx context.Context, input event.RecentInput) (event.RecentOutput, error) {
	return event.RecentOutput{Events: []model.Event{}, Limit: input.Limit}, nil
}

type mockWebhook struct{ calls int }

func (m *mockWebhook) HandleGitHubWebhook(c *gin.Context) {
	m.calls++
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func newTestServer(t *testing.T, uc event.UseCase, wh WebhookHandler, proxies ...string) *HTTPServer {
	t.Helper()
	srv, err := New(&mockLogger{}, Config{
		Logger:           &mockLogger{},
		Port:             5000,
		Mode:             gin.TestMode,
		Environment:      string(model.EnvironmentTesting),
		TrustedProxies:   proxies,
		EventUC:          uc,
		WebhookHandler:   wh,
		MaxEventsDisplay: 50,
		RefreshInterval:  15 * time.Second,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &mockEventUC{pingErr: errors.New("down")}, &mockWebhook{})

	w := get(srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	ts, err := time.Parse(time.RFC3339, body.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestReady(t *testing.T) {
	w := get(newTestServer(t, &mockEventUC{}, &mockWebhook{}), "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(newTestServer(t, &mockEventUC{pingErr: event.ErrStorageUnavailable}, &mockWebhook{}), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLiveAndMetrics(t *testing.T) {
	srv := newTestServer(t, &mockEventUC{}, &mockWebhook{})

	w := get(srv, "/live")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Success", body["message"])

	w = get(srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestDomainRoutes(t *testing.T) {
	wh := &mockWebhook{}
	srv := newTestServer(t, &mockEventUC{}, wh)

	for _, path := range []string{"/webhook", "/webhook/github"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	assert.Equal(t, 2, wh.calls)

	w := get(srv, "/api/events")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"events":[],"count":0}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewValidates(t *testing.T) {
	_, err := New(&mockLogger{}, Config{Port: 5000, Mode: gin.TestMode, WebhookHandler: &mockWebhook{}})
	assert.Error(t, err)

	_, err = New(&mockLogger{}, Config{Mode: gin.TestMode, EventUC: &mockEventUC{}, WebhookHandler: &mockWebhook{}})
	assert.Error(t, err)
}

func TestWebhookSourceIgnoresForwardedForByDefault(t *testing.T) {
	wh, err := webhook.NewHandler(&mockEventUC{}, webhook.SecurityConfig{
		AllowedIPs: []string{"192.30.252.0/22"},
	}, nil, &mockLogger{})
	require.NoError(t, err)

	postFrom := func(srv *HTTPServer) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(""))
		req.RemoteAddr = "192.0.2.1:1234"
		req.Header.Set("X-Forwarded-For", "192.30.252.10")
		req.Header.Set("X-GitHub-Event", "push")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	t.Run("untrusted peer", func(t *testing.T) {
		w := postFrom(newTestServer(t, &mockEventUC{}, wh))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("trusted proxy", func(t *testing.T) {
		w := postFrom(newTestServer(t, &mockEventUC{}, wh, "192.0.2.1"))
		// Allowed through the source check, then rejected for the empty body
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNewRejectsInvalidTrustedProxy(t *testing.T) {
	_, err := New(&mockLogger{}, Config{
		Port:           5000,
		Mode:           gin.TestMode,
		TrustedProxies: []string{"not-an-ip"},
		EventUC:        &mockEventUC{},
		WebhookHandler: &mockWebhook{},
	})
	assert.Error(t, err)
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv := newTestServer(t, &mockEventUC{}, &mockWebhook{})
	srv.host = "127.0.0.1"
	srv.port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port)) + "/live"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("Run did not return after cancel")
	}
}
