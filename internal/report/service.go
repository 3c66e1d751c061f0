package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/mailer"
	"prioritiser-backend/internal/shared/metrics"
	"prioritiser-backend/internal/shared/telemetry"
)

const attachmentFileName = "lumos-prioritiser-report.pdf"

// Service renders and delivers the report for one submission.
type Service struct {
	Repo        Repo
	Mail        mailer.Sender
	FromEmail   string
	TargetEmail string
	AssetsDir   string
}

// SubmitInput is the validated-by-service request payload.
type SubmitInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Scores  assessment.ChannelScores
}

// Submit validates the contact details, renders the text summary and PDF,
// sends the email once and records the submission. Validation failures occur
// before any side effect; the email send is never retried.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Submission, error) {
	metrics.IncReportSubmitted()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Email == "" {
		return Submission{}, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if s.Mail == nil || s.TargetEmail == "" {
		metrics.IncReportFailed()
		return Submission{}, ErrNotConfigured
	}

	if in.Scores == nil {
		in.Scores = assessment.ChannelScores{}
	}

	contact := Contact{Name: in.Name, Company: in.Company, Email: in.Email, Phone: in.Phone}
	priorities := assessment.GeneratePriorities(in.Scores)
	textSummary := BuildTextSummary(contact, in.Scores, priorities)

	renderStart := time.Now()
	pdfBytes, err := RenderPDF(contact, in.Scores, priorities, s.AssetsDir)
	metrics.ObserveRenderDurationMs(float64(time.Since(renderStart).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncReportFailed()
		return Submission{}, fmt.Errorf("render report: %w", err)
	}

	subjectFor := in.Company
	if subjectFor == "" {
		subjectFor = in.Name
	}

	err = s.Mail.Send(ctx, mailer.Message{
		From:               s.FromEmail,
		To:                 s.TargetEmail,
		Subject:            fmt.Sprintf("New Lumos Prioritiser report – %s", subjectFor),
		Text:               textSummary,
		AttachmentName:     attachmentFileName,
		AttachmentContent:  pdfBytes,
		AttachmentMimeType: "application/pdf",
	})
	if err != nil {
		metrics.IncReportFailed()
		return Submission{}, fmt.Errorf("send report: %w", err)
	}
	metrics.IncReportSent()

	sub := Submission{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Scores:    in.Scores,
		CreatedAt: time.Now().UTC(),
	}
	if s.Repo != nil {
		// The email is already out; a failed insert should not fail the caller.
		if err := s.Repo.Create(ctx, sub); err != nil {
			telemetry.Warn("report.record_failed", map[string]any{
				"submission_id": sub.ID,
				"error":         err.Error(),
			})
		}
	}

	return sub, nil
}

// Recent lists the latest recorded submissions.
func (s *Service) Recent(ctx context.Context, limit int) ([]Submission, error) {
	if s.Repo == nil {
		return []Submission{}, nil
	}
	return s.Repo.ListRecent(ctx, limit)
}
