package assessment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/shared/server/respond"
)

// Handler exposes the question bank and the evaluation endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.questions)
	rg.POST("/assessments/evaluate", h.evaluate)
	rg.GET("/results", h.results)
}

func (h *Handler) questions(c *gin.Context) {
	respond.OK(c, gin.H{"questions": Questions})
}

type evaluateRequest struct {
	Answers AnswersMap `json:"answers"`
}

type evaluateResponse struct {
	Scores     ChannelScores `json:"scores"`
	Priorities []Priority    `json:"priorities"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Answers == nil {
		req.Answers = AnswersMap{}
	}

	scores := CalculateChannelScores(req.Answers)
	respond.OK(c, evaluateResponse{
		Scores:     scores,
		Priorities: GeneratePriorities(scores),
	})
}

func (h *Handler) results(c *gin.Context) {
	scores := ScoresFromQuery(c.Query)
	respond.OK(c, evaluateResponse{
		Scores:     scores,
		Priorities: GeneratePriorities(scores),
	})
}

// ScoresFromQuery reads the six named score parameters, defaulting each to 0
// when absent or non-numeric.
func ScoresFromQuery(query func(string) string) ChannelScores {
	scores := make(ChannelScores, len(Channels))
	for _, ch := range Channels {
		scores[ch] = 0
		if raw := query(string(ch)); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				scores[ch] = v
			}
		}
	}
	return scores
}
