package assessment

// ChannelKey identifies one of the six scored marketing channels.
type ChannelKey string

const (
	ChannelFoundations ChannelKey = "foundations"
	ChannelWebsite     ChannelKey = "website"
	ChannelSEO         ChannelKey = "seo"
	ChannelEmail       ChannelKey = "email"
	ChannelPPC         ChannelKey = "ppc"
	ChannelSocial      ChannelKey = "social"
)

// Channels lists the channels in their fixed declaration order. Scoring,
// sorting tiebreaks and report output all follow this order.
var Channels = []ChannelKey{
	ChannelFoundations,
	ChannelWebsite,
	ChannelSEO,
	ChannelEmail,
	ChannelPPC,
	ChannelSocial,
}

// ChannelLabels maps channel keys to their display names.
var ChannelLabels = map[ChannelKey]string{
	ChannelFoundations: "Foundations",
	ChannelWebsite:     "Website",
	ChannelSEO:         "SEO",
	ChannelEmail:       "Email",
	ChannelPPC:         "PPC",
	ChannelSocial:      "Social",
}

// QuestionOption is one selectable answer carrying a 0-4 score.
type QuestionOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// Question is one assessment question owned by a single channel.
type Question struct {
	ID      string           `json:"id"`
	Channel ChannelKey       `json:"channel"`
	Prompt  string           `json:"prompt"`
	Helper  string           `json:"helper,omitempty"`
	Options []QuestionOption `json:"options"`
}

// AnswersMap maps question id to the chosen option id. It may be sparse;
// unanswered questions are simply absent.
type AnswersMap map[string]string

// ChannelScores maps each channel to its 0-100 percentage score.
type ChannelScores map[ChannelKey]int

// Severity buckets a channel score for recommendation lookup.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityImprove  Severity = "improve"
	SeverityOptimise Severity = "optimise"
	SeverityMaintain Severity = "maintain"
)

// Priority is a canned recommendation selected for a channel at a given
// severity. Maintain-severity channels never produce one.
type Priority struct {
	ID      string     `json:"id"`
	Channel ChannelKey `json:"channel"`
	Title   string     `json:"title"`
	Why     string     `json:"why"`
	Actions []string   `json:"actions"`
}
