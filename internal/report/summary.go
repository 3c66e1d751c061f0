package report

import (
	"fmt"
	"strings"

	"prioritiser-backend/internal/assessment"
)

// BuildTextSummary renders the plain-text email body. Output is
// byte-deterministic for identical inputs; optional contact lines are
// omitted entirely when empty.
func BuildTextSummary(contact Contact, scores assessment.ChannelScores, priorities []assessment.Priority) string {
	var lines []string

	lines = append(lines, "New Lumos Prioritiser report")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Name: %s", contact.Name))
	if contact.Company != "" {
		lines = append(lines, fmt.Sprintf("Company: %s", contact.Company))
	}
	lines = append(lines, fmt.Sprintf("Email: %s", contact.Email))
	if contact.Phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", contact.Phone))
	}
	lines = append(lines, "")
	lines = append(lines, "Channel scores:")
	for _, ch := range assessment.Channels {
		lines = append(lines, fmt.Sprintf("- %s: %d%%", assessment.ChannelLabels[ch], scores[ch]))
	}
	lines = append(lines, "")
	lines = append(lines, "Top priorities:")
	for i, p := range priorities {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s", i+1, p.Channel, p.Title))
	}

	return strings.Join(lines, "\n")
}
