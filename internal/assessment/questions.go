package assessment

// Questions is the fixed, ordered question bank: one question per channel,
// four options each. Read-only reference data initialized at process start.
var Questions = []Question{
	{
		ID:      "foundations_tracking",
		Channel: ChannelFoundations,
		Prompt:  "How confident are you that your revenue tracking is accurate across key channels?",
		Helper:  "Think GA4, Google Ads, Meta Ads and your ecommerce platform.",
		Options: []QuestionOption{
			{ID: "a", Label: "Very confident – we review it weekly", Score: 4},
			{ID: "b", Label: "Mostly – some gaps but usable", Score: 3},
			{ID: "c", Label: "Not really – partial tracking only", Score: 2},
			{ID: "d", Label: "Not at all – we’re basically flying blind", Score: 0},
		},
	},
	{
		ID:      "website_speed",
		Channel: ChannelWebsite,
		Prompt:  "How would you describe your website’s speed and stability?",
		Options: []QuestionOption{
			{ID: "a", Label: "Fast and reliable on mobile and desktop", Score: 4},
			{ID: "b", Label: "Generally OK, a bit slow at times", Score: 3},
			{ID: "c", Label: "Noticeably slow or glitchy", Score: 1},
			{ID: "d", Label: "Frequently slow or crashes", Score: 0},
		},
	},
	{
		ID:      "seo_structure",
		Channel: ChannelSEO,
		Prompt:  "How structured is your SEO content strategy?",
		Helper:  "Think topic clusters, pillar pages and internal linking.",
		Options: []QuestionOption{
			{ID: "a", Label: "Clear clusters and pillars for key journeys", Score: 4},
			{ID: "b", Label: "Some themes but no real structure", Score: 2},
			{ID: "c", Label: "We publish ad hoc when we can", Score: 1},
			{ID: "d", Label: "We don’t really do SEO content", Score: 0},
		},
	},
	{
		ID:      "email_flows",
		Channel: ChannelEmail,
		Prompt:  "Which automated email flows do you currently have live?",
		Helper:  "Pick the option that fits best overall.",
		Options: []QuestionOption{
			{ID: "a", Label: "Welcome, abandon, post-purchase and win-back", Score: 4},
			{ID: "b", Label: "A couple of basics (e.g. welcome + abandon)", Score: 3},
			{ID: "c", Label: "Only newsletters/campaigns, no automations", Score: 1},
			{ID: "d", Label: "We don’t really send email", Score: 0},
		},
	},
	{
		ID:      "ppc_structure",
		Channel: ChannelPPC,
		Prompt:  "How structured are your paid campaigns across Google and/or Meta right now?",
		Options: []QuestionOption{
			{ID: "a", Label: "Clear naming, audiences and testing plan", Score: 4},
			{ID: "b", Label: "Some structure but it’s a bit messy", Score: 2},
			{ID: "c", Label: "It’s basically a free-for-all", Score: 1},
			{ID: "d", Label: "We don’t run paid campaigns", Score: 0},
		},
	},
	{
		ID:      "social_consistency",
		Channel: ChannelSocial,
		Prompt:  "How consistent is your organic social presence?",
		Options: []QuestionOption{
			{ID: "a", Label: "We post with a clear plan at least 3x per week", Score: 4},
			{ID: "b", Label: "We post weekly but it isn’t very planned", Score: 2},
			{ID: "c", Label: "We post occasionally when someone remembers", Score: 1},
			{ID: "d", Label: "We’re basically dormant", Score: 0},
		},
	},
}
