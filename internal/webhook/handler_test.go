package webhook_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
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
	inserted  []model.Event
	insertErr error
}

func (m *mockEventUC) Insert(ctx context.Context, input event.InsertInput) (event.InsertOutput, error) {
	if m.insertErr != nil {
		return event.InsertOutput{}, m.insertErr
	}
	m.inserted = append(m.inserted, input.Event)
	return event.InsertOutput{ID: "generated"}, nil
}

const pushBody = `{
	"ref": "refs/heads/main",
	"pusher": {"name": "alice"},
	"repository": {"full_name": "o/r"},
	"head_commit": {"timestamp": "2021-04-01T21:30:00Z"}
}`

func newRouter(t *testing.T, uc event.UseCase, cfg webhook.SecurityConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := webhook.NewHandler(uc, cfg, webhook.NewNormalizer(), &mockLogger{})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/webhook", h.HandleGitHubWebhook)
	return r
}

func post(r *gin.Engine, eventType, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if eventType != "" {
		req.Header.Set("X-GitHub-Event", eventType)
	}
	req.Header.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGitHubWebhook(t *testing.T) {
	t.Run("push is stored", func(t *testing.T) {
		uc := &mockEventUC{}
		w := post(newRouter(t, uc, webhook.SecurityConfig{}), "push", pushBody, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Webhook processed"}`, w.Body.String())
		require.Len(t, uc.inserted, 1)
		assert.Equal(t, "alice", uc.inserted[0].Author)
		assert.Equal(t, "main", uc.inserted[0].ToBranch)
		assert.Equal(t, time.Date(2021, 4, 1, 21, 30, 0, 0, time.UTC), uc.inserted[0].Timestamp)
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		uc := &mockEventUC{}
		w := post(newRouter(t, uc, webhook.SecurityConfig{}), "issues", `{"action":"opened"}`, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ignored","message":"Event type not supported"}`, w.Body.String())
		assert.Empty(t, uc.inserted)
	})

	t.Run("closed unmerged pull request is ignored", func(t *testing.T) {
		uc := &mockEventUC{}
		body := `{"action":"closed","pull_request":{"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"merged":false},"repository":{"full_name":"o/r"}}`
		w := post(newRouter(t, uc, webhook.SecurityConfig{}), "pull_request", body, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ignored"`)
		assert.Empty(t, uc.inserted)
	})

	t.Run("payloads without a storable event are ignored", func(t *testing.T) {
		for name, tc := range map[string]struct{ eventType, body string }{
			"bare heads ref":      {"push", `{"ref":"refs/heads/","pusher":{"name":"a"},"repository":{"full_name":"o/r"}}`},
			"trailing slash ref":  {"push", `{"ref":"refs/heads/x/","pusher":{"name":"a"},"repository":{"full_name":"o/r"}}`},
			"zero created_at":     {"pull_request", `{"action":"opened","pull_request":{"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"created_at":"0001-01-01T00:00:00Z"},"repository":{"full_name":"o/r"}}`},
			"zero merged_at":      {"pull_request", `{"action":"closed","pull_request":{"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"merged":true,"merged_at":"0001-01-01T00:00:00Z"},"repository":{"full_name":"o/r"}}`},
			"merged_at past 2262": {"pull_request", `{"action":"closed","pull_request":{"user":{"login":"bob"},"head":{"ref":"f"},"base":{"ref":"main"},"merged":true,"merged_at":"2300-01-01T00:00:00Z"},"repository":{"full_name":"o/r"}}`},
		} {
			uc := &mockEventUC{}
			w := post(newRouter(t, uc, webhook.SecurityConfig{}), tc.eventType, tc.body, nil)

			assert.Equal(t, http.StatusOK, w.Code, name)
			assert.JSONEq(t, `{"status":"ignored","message":"Event payload incomplete"}`, w.Body.String(), name)
			assert.Empty(t, uc.inserted, name)
		}
	})

	t.Run("push with far future commit time uses arrival time", func(t *testing.T) {
		uc := &mockEventUC{}
		body := `{"ref":"refs/heads/main","pusher":{"name":"a"},"repository":{"full_name":"o/r"},"head_commit":{"timestamp":"2300-01-01T00:00:00Z"}}`
		w := post(newRouter(t, uc, webhook.SecurityConfig{}), "push", body, nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, uc.inserted, 1)
		assert.WithinDuration(t, time.Now(), uc.inserted[0].Timestamp, time.Minute)
	})

	t.Run("empty payloads are rejected", func(t *testing.T) {
		for _, body := range []string{"", "   ", "null", "{}", "[]", `""`, "0", "false"} {
			uc := &mockEventUC{}
			w := post(newRouter(t, uc, webhook.SecurityConfig{}), "push", body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
			assert.JSONEq(t, `{"error":"No payload received"}`, w.Body.String(), "body %q", body)
			assert.Empty(t, uc.inserted)
		}
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		w := post(newRouter(t, &mockEventUC{}, webhook.SecurityConfig{}), "push", `{"ref":`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid JSON payload"}`, w.Body.String())
	})

	t.Run("storage failure is redacted", func(t *testing.T) {
		uc := &mockEventUC{insertErr: errors.New("event store unavailable: dial tcp 10.0.0.3:5432: connection refused")}
		w := post(newRouter(t, uc, webhook.SecurityConfig{}), "push", pushBody, nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})

	t.Run("storage failure exposed when configured", func(t *testing.T) {
		uc := &mockEventUC{insertErr: errors.New("boom")}
		w := post(newRouter(t, uc, webhook.SecurityConfig{ExposeErrors: true}), "push", pushBody, nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())
	})

	t.Run("oversized payload", func(t *testing.T) {
		big := `{"ref":"` + strings.Repeat("a", 2048) + `"}`
		w := post(newRouter(t, &mockEventUC{}, webhook.SecurityConfig{MaxPayloadBytes: 1024}), "push", big, nil)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestHandleGitHubWebhookSignature(t *testing.T) {
	cfg := webhook.SecurityConfig{Secret: "s3cret", VerifySignature: true}

	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write([]byte(pushBody))
	valid := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	uc := &mockEventUC{}
	r := newRouter(t, uc, cfg)

	w := post(r, "push", pushBody, map[string]string{"X-Hub-Signature-256": valid})
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(r, "push", pushBody, map[string]string{"X-Hub-Signature-256": "sha256=deadbeef"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(r, "push", pushBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Len(t, uc.inserted, 1)

	t.Run("signature ignored when verification is off", func(t *testing.T) {
		uc := &mockEventUC{}
		w := post(newRouter(t, uc, webhook.SecurityConfig{Secret: "s3cret"}), "push", pushBody, map[string]string{"X-Hub-Signature-256": "sha256=deadbeef"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type recordingLogger struct {
	mockLogger
	infos []string
	warns []string
}

func (m *recordingLogger) Infof(ctx context.Context, format string, args ...any) {
	m.infos = append(m.infos, fmt.Sprintf(format, args...))
}

func (m *recordingLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}

func TestNewHandlerLogsErrorExposure(t *testing.T) {
	l := &recordingLogger{}
	_, err := webhook.NewHandler(&mockEventUC{}, webhook.SecurityConfig{}, nil, l)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(l.infos, "\n"), "expose_errors=false")
	assert.Empty(t, l.warns)

	l = &recordingLogger{}
	_, err = webhook.NewHandler(&mockEventUC{}, webhook.SecurityConfig{ExposeErrors: true}, nil, l)
	require.NoError(t, err)
	assert.Contains(t, strings.Join(l.warns, "\n"), "expose_errors=true")
}

func TestHandleGitHubWebhookSourceControls(t *testing.T) {
	t.Run("ip allowlist", func(t *testing.T) {
		r := newRouter(t, &mockEventUC{}, webhook.SecurityConfig{AllowedIPs: []string{"192.30.252.0/22"}})
		// httptest requests come from 192.0.2.1
		w := post(r, "push", pushBody, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rate limit", func(t *testing.T) {
		r := newRouter(t, &mockEventUC{}, webhook.SecurityConfig{RateLimitPerMin: 10})
		assert.Equal(t, http.StatusOK, post(r, "push", pushBody, nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, post(r, "push", pushBody, nil).Code)
	})
}
