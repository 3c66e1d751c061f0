package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.submit)
}

// RegisterDevRoutes attaches dev-only report routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/recent", h.recent)
}

type submitRequest struct {
	Name    string                   `json:"name"`
	Company string                   `json:"company"`
	Email   string                   `json:"email"`
	Phone   string                   `json:"phone"`
	Scores  assessment.ChannelScores `json:"scores"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	sub, err := h.Svc.Submit(c.Request.Context(), SubmitInput{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Scores:  req.Scores,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Name and email are required", nil)
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "email_not_configured", "Server not configured for email", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "report_failed", "Failed to send report", nil)
		}
		return
	}

	c.Set("submissionId", sub.ID)
	respond.OK(c, gin.H{"ok": true})
}

type submissionResponse struct {
	SubmissionID string                   `json:"submissionId"`
	Name         string                   `json:"name"`
	Company      string                   `json:"company,omitempty"`
	Email        string                   `json:"email"`
	Phone        string                   `json:"phone,omitempty"`
	Scores       assessment.ChannelScores `json:"scores"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func (h *Handler) recent(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	subs, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list submissions", nil)
		return
	}

	resp := make([]submissionResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, submissionResponse{
			SubmissionID: sub.ID,
			Name:         sub.Name,
			Company:      sub.Company,
			Email:        sub.Email,
			Phone:        sub.Phone,
			Scores:       sub.Scores,
			CreatedAt:    sub.CreatedAt,
		})
	}
	respond.OK(c, resp)
}
