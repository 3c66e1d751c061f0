package assessment

import "sort"

// maxPriorities caps the plan so the report stays actionable.
const maxPriorities = 5

// SeverityForScore buckets a 0-100 channel score. Bands are inclusive on the
// upper bound: 0-25 critical, 26-50 improve, 51-75 optimise, 76+ maintain.
func SeverityForScore(score int) Severity {
	switch {
	case score <= 25:
		return SeverityCritical
	case score <= 50:
		return SeverityImprove
	case score <= 75:
		return SeverityOptimise
	default:
		return SeverityMaintain
	}
}

// PriorityForChannel looks up the canned recommendation for a channel at the
// severity implied by its score. Maintain-severity channels have none.
func PriorityForChannel(channel ChannelKey, score int) (Priority, bool) {
	severity := SeverityForScore(score)
	if severity == SeverityMaintain {
		return Priority{}, false
	}
	bySeverity, ok := priorityCatalog[channel]
	if !ok {
		return Priority{}, false
	}
	p, ok := bySeverity[severity]
	return p, ok
}

// GeneratePriorities ranks all channels weakest-first and collects up to five
// recommendations. The sort is stable, so equal scores keep the fixed channel
// declaration order.
func GeneratePriorities(scores ChannelScores) []Priority {
	type entry struct {
		channel ChannelKey
		score   int
	}

	entries := make([]entry, 0, len(Channels))
	for _, ch := range Channels {
		entries = append(entries, entry{channel: ch, score: scores[ch]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score < entries[j].score
	})

	priorities := make([]Priority, 0, maxPriorities)
	for _, e := range entries {
		if p, ok := PriorityForChannel(e.channel, e.score); ok {
			priorities = append(priorities, p)
		}
		if len(priorities) >= maxPriorities {
			break
		}
	}
	return priorities
}
