package progress

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/shared/server/respond"
)

// Handler exposes save/load/clear of in-progress assessment state.
type Handler struct {
	Store Store
}

// NewHandler constructs a Handler.
func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches progress routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/progress/:clientId", h.save)
	rg.GET("/progress/:clientId", h.load)
	rg.DELETE("/progress/:clientId", h.clear)
}

func (h *Handler) save(c *gin.Context) {
	var state State
	if err := c.ShouldBindJSON(&state); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if state.Answers == nil {
		state.Answers = assessment.AnswersMap{}
	}
	if state.Step < 0 {
		state.Step = 0
	}

	err := h.Store.Save(c.Request.Context(), c.Param("clientId"), state)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidClientID):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid client id", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save progress", nil)
		}
		return
	}
	respond.OK(c, state)
}

func (h *Handler) load(c *gin.Context) {
	state, err := h.Store.Load(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidClientID):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid client id", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no saved progress", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load progress", nil)
		}
		return
	}
	respond.OK(c, state)
}

func (h *Handler) clear(c *gin.Context) {
	err := h.Store.Clear(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidClientID):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid client id", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear progress", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
