package assessment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/bootstrap"
	"prioritiser-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		Env:             "dev",
		LocalStoreDir:   t.TempDir(),
		AssetsDir:       t.TempDir(),
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestQuestionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Questions []struct {
			ID      string `json:"id"`
			Channel string `json:"channel"`
			Options []struct {
				ID    string `json:"id"`
				Score int    `json:"score"`
			} `json:"options"`
		} `json:"questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(out.Questions))
	}
	for _, q := range out.Questions {
		if len(q.Options) != 4 {
			t.Fatalf("expected 4 options for %s, got %d", q.ID, len(q.Options))
		}
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]any{
		"answers": map[string]string{
			"foundations_tracking": "a",
			"website_speed":        "b",
		},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Scores     map[string]int `json:"scores"`
		Priorities []struct {
			ID      string `json:"id"`
			Channel string `json:"channel"`
		} `json:"priorities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Scores["foundations"] != 100 {
		t.Fatalf("expected foundations 100, got %d", out.Scores["foundations"])
	}
	if out.Scores["website"] != 75 {
		t.Fatalf("expected website 75, got %d", out.Scores["website"])
	}
	if len(out.Priorities) == 0 {
		t.Fatalf("expected priorities for unanswered channels")
	}
}

func TestResultsEndpointQueryParams(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/results?foundations=10&website=90&seo=90&email=90&ppc=90&social=90", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Priorities []struct {
			ID      string `json:"id"`
			Channel string `json:"channel"`
		} `json:"priorities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Priorities) != 1 {
		t.Fatalf("expected exactly 1 priority, got %d", len(out.Priorities))
	}
	if out.Priorities[0].Channel != "foundations" {
		t.Fatalf("expected foundations priority, got %s", out.Priorities[0].Channel)
	}
}

func TestResultsEndpointDefaultsToZero(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results?foundations=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Scores     map[string]int `json:"scores"`
		Priorities []struct {
			ID string `json:"id"`
		} `json:"priorities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for key, score := range out.Scores {
		if score != 0 {
			t.Fatalf("expected %s to default to 0, got %d", key, score)
		}
	}
	// Every channel at 0 is critical; the cap still applies.
	if len(out.Priorities) != 5 {
		t.Fatalf("expected 5 priorities for all-zero scores, got %d", len(out.Priorities))
	}
}
