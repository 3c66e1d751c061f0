package assessment

import "math"

// maxScorePerQuestion is the highest option score a question can award.
const maxScorePerQuestion = 4

// CalculateChannelScores reduces a sparse answers map into a 0-100 percentage
// per channel. Answers that reference an unknown question or option are
// skipped as unanswered. Channels with no answered questions score 0.
func CalculateChannelScores(answers AnswersMap) ChannelScores {
	scores := make(map[ChannelKey]int, len(Channels))
	totals := make(map[ChannelKey]int, len(Channels))
	for _, ch := range Channels {
		scores[ch] = 0
		totals[ch] = 0
	}

	for _, question := range Questions {
		answerID, ok := answers[question.ID]
		if !ok || answerID == "" {
			continue
		}

		option, found := findOption(question, answerID)
		if !found {
			continue
		}

		scores[question.Channel] += option.Score
		totals[question.Channel] += maxScorePerQuestion
	}

	out := make(ChannelScores, len(Channels))
	for _, ch := range Channels {
		max := totals[ch]
		if max == 0 {
			max = 1 // avoid divide-by-zero; unanswered channels score 0
		}
		raw := float64(scores[ch]) / float64(max) * 100
		out[ch] = int(math.Round(raw))
	}
	return out
}

func findOption(q Question, optionID string) (QuestionOption, bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return QuestionOption{}, false
}
