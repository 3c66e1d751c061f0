package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/bootstrap"
	"prioritiser-backend/internal/mailer"
	"prioritiser-backend/internal/shared/config"
)

type captureSender struct {
	sent []mailer.Message
}

func (f *captureSender) Send(ctx context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

func newTestApp(t *testing.T) (*bootstrap.App, *captureSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
		LocalStoreDir:   t.TempDir(),
		AssetsDir:       t.TempDir(),
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	sender := &captureSender{}
	app.ReportService.Mail = sender
	app.ReportService.TargetEmail = "reports@lumos.test"
	app.ReportService.FromEmail = "Lumos Prioritiser <onboarding@resend.dev>"
	return app, sender
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestReportSubmitSuccess(t *testing.T) {
	app, sender := newTestApp(t)

	resp := postJSON(t, app.Router, "/api/v1/reports", map[string]any{
		"name":    "Jo Bloggs",
		"company": "Acme Ltd",
		"email":   "jo@acme.test",
		"scores": map[string]int{
			"foundations": 10, "website": 90, "seo": 90, "email": 90, "ppc": 90, "social": 90,
		},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok:true")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one email sent, got %d", len(sender.sent))
	}
}

func TestReportSubmitValidation(t *testing.T) {
	app, sender := newTestApp(t)

	resp := postJSON(t, app.Router, "/api/v1/reports", map[string]any{
		"email": "jo@acme.test",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.Code)
	}

	resp = postJSON(t, app.Router, "/api/v1/reports", map[string]any{
		"name": "Jo Bloggs",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", resp.Code)
	}

	if len(sender.sent) != 0 {
		t.Fatalf("expected no email side effect on validation failure")
	}
}

func TestReportSubmitNotConfigured(t *testing.T) {
	app, _ := newTestApp(t)
	app.ReportService.Mail = nil

	resp := postJSON(t, app.Router, "/api/v1/reports", map[string]any{
		"name":  "Jo Bloggs",
		"email": "jo@acme.test",
	})
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var out struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error.Code != "email_not_configured" {
		t.Fatalf("expected email_not_configured, got %q", out.Error.Code)
	}
}

func TestReportRecentDevRoute(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app.Router, "/api/v1/reports", map[string]any{
		"name":  "Jo Bloggs",
		"email": "jo@acme.test",
		"scores": map[string]int{
			"foundations": 10, "website": 20, "seo": 30, "email": 40, "ppc": 50, "social": 60,
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dev/reports/recent", nil)
	recent := httptest.NewRecorder()
	app.Router.ServeHTTP(recent, req)

	if recent.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recent.Code)
	}
	var subs []struct {
		SubmissionID string `json:"submissionId"`
		Name         string `json:"name"`
	}
	if err := json.NewDecoder(recent.Body).Decode(&subs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(subs) != 1 || subs[0].Name != "Jo Bloggs" {
		t.Fatalf("expected one recorded submission, got %+v", subs)
	}
}
