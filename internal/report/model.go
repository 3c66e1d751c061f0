package report

import (
	"time"

	"prioritiser-backend/internal/assessment"
)

// Contact is the submitter's details; Company and Phone are optional.
type Contact struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// Submission is one recorded report request.
type Submission struct {
	ID        string
	Name      string
	Company   string
	Email     string
	Phone     string
	Scores    assessment.ChannelScores
	CreatedAt time.Time
}
