package assessment

// priorityCatalog holds one authored recommendation per channel per
// non-maintain severity (6 channels x 3 severities). Populated once at
// startup and never mutated.
var priorityCatalog = map[ChannelKey]map[Severity]Priority{
	ChannelFoundations: {
		SeverityCritical: {
			ID:      "foundations-critical",
			Channel: ChannelFoundations,
			Title:   "Fix your measurement and tracking first.",
			Why:     "If you can't trust your numbers, every other decision becomes guesswork. Fixing tracking makes all other work compounding instead of random.",
			Actions: []string{
				"Audit key journeys in GA4, your ecommerce platform and ad platforms.",
				"Set up or verify purchase and lead events with clear naming.",
				"Agree a simple weekly metrics snapshot you can actually review.",
			},
		},
		SeverityImprove: {
			ID:      "foundations-improve",
			Channel: ChannelFoundations,
			Title:   "Tighten up your measurement framework.",
			Why:     "You have some data, but gaps or inconsistencies are holding back better optimisation and budget decisions.",
			Actions: []string{
				"Standardise naming conventions across GA4, Google Ads and Meta.",
				"Close obvious tracking gaps on key conversion paths.",
				"Document a simple measurement plan so the whole team knows what 'good' looks like.",
			},
		},
		SeverityOptimise: {
			ID:      "foundations-optimise",
			Channel: ChannelFoundations,
			Title:   "Formalise your weekly trading rhythm.",
			Why:     "Your tracking is in a good place; the next lift comes from consistent review and decision-making.",
			Actions: []string{
				"Create a one-page weekly trading dashboard.",
				"Define 2–3 default checks you run every week (e.g. CPA, ROAS, CVR by channel).",
				"Schedule a 30–45 minute recurring review with the right people in the room.",
			},
		},
	},
	ChannelWebsite: {
		SeverityCritical: {
			ID:      "website-critical",
			Channel: ChannelWebsite,
			Title:   "Stabilise your website experience.",
			Why:     "Slow or unreliable sites leak money on every visit. Fixing core stability pays off across every channel.",
			Actions: []string{
				"Run basic performance checks on mobile and desktop (e.g. Lighthouse, WebPageTest).",
				"Tackle obvious quick wins: image compression, caching, removing unused apps/plugins.",
				"Ensure your checkout or lead forms are simple, clear and error-free.",
			},
		},
		SeverityImprove: {
			ID:      "website-improve",
			Channel: ChannelWebsite,
			Title:   "Improve speed and clarity on key journeys.",
			Why:     "Visitors are getting through, but friction is likely holding back conversion rate.",
			Actions: []string{
				"Identify your top 3 landing pages by traffic and optimise them first.",
				"Tighten hero copy, social proof and primary CTAs on those pages.",
				"Check mobile layouts carefully and fix obvious UX issues.",
			},
		},
		SeverityOptimise: {
			ID:      "website-optimise",
			Channel: ChannelWebsite,
			Title:   "Test one change on your highest-value page.",
			Why:     "Small, structured experiments on key pages often yield meaningful conversion lifts.",
			Actions: []string{
				"Pick your highest revenue or lead-driving page.",
				"Run a simple test on messaging, layout or social proof.",
				"Record the outcome and roll out winning patterns elsewhere.",
			},
		},
	},
	ChannelSEO: {
		SeverityCritical: {
			ID:      "seo-critical",
			Channel: ChannelSEO,
			Title:   "Put a basic SEO foundation in place.",
			Why:     "Right now you're likely invisible for important searches. A basic structure will unlock compounding organic growth.",
			Actions: []string{
				"List 5–10 key problems your best customers search for.",
				"Create or improve one practical guide for each of those topics.",
				"Make sure each page has a clear title, H1 and internal links from relevant pages.",
			},
		},
		SeverityImprove: {
			ID:      "seo-improve",
			Channel: ChannelSEO,
			Title:   "Move from ad hoc posts to simple clusters.",
			Why:     "A loose collection of posts won’t build topical authority. Clusters help search engines understand what you’re the best answer for.",
			Actions: []string{
				"Pick one core topic and list the supporting sub-topics.",
				"Make one page your pillar for that topic, then link related posts into it.",
				"Add internal links between related posts to help both users and search engines.",
			},
		},
		SeverityOptimise: {
			ID:      "seo-optimise",
			Channel: ChannelSEO,
			Title:   "Tidy up internal linking around your best content.",
			Why:     "You already have good SEO momentum. Better linking can push key pages further.",
			Actions: []string{
				"Identify your top organic pages by traffic and conversions.",
				"Add internal links from relevant posts into those pages using natural anchor text.",
				"Trim or update any thin, outdated content that no longer serves a purpose.",
			},
		},
	},
	ChannelEmail: {
		SeverityCritical: {
			ID:      "email-critical",
			Channel: ChannelEmail,
			Title:   "Get core email flows live.",
			Why:     "You’re leaving easy money on the table by not following up with engaged visitors and customers automatically.",
			Actions: []string{
				"Set up a simple welcome flow for new subscribers or customers.",
				"Create an abandoned basket or browse flow if you sell online.",
				"Make sure every email has a clear, singular call-to-action.",
			},
		},
		SeverityImprove: {
			ID:      "email-improve",
			Channel: ChannelEmail,
			Title:   "Strengthen and extend your automated flows.",
			Why:     "Basic flows are in place, but they could be doing more to retain and grow customers.",
			Actions: []string{
				"Add at least one post-purchase flow focused on education and repeat purchase.",
				"Review subject lines and preview text on existing flows for clarity and curiosity.",
				"Remove or reduce any overly frequent broadcasts that don’t clearly serve the customer.",
			},
		},
		SeverityOptimise: {
			ID:      "email-optimise",
			Channel: ChannelEmail,
			Title:   "Test one improvement to your best-performing flow.",
			Why:     "Optimising what already works will often beat starting something entirely new.",
			Actions: []string{
				"Identify your highest revenue-per-recipient flow.",
				"Test a new offer, layout or social proof section in that flow.",
				"Document the result and replicate successful patterns elsewhere.",
			},
		},
	},
	ChannelPPC: {
		SeverityCritical: {
			ID:      "ppc-critical",
			Channel: ChannelPPC,
			Title:   "Stabilise paid campaigns before you scale.",
			Why:     "Unstructured paid activity can burn budget quickly without learning anything useful.",
			Actions: []string{
				"Pause obviously underperforming campaigns or ad sets.",
				"Consolidate into a small number of well-defined campaigns with clear goals.",
				"Make sure each ad set/ad group has tightly themed keywords or audiences.",
			},
		},
		SeverityImprove: {
			ID:      "ppc-improve",
			Channel: ChannelPPC,
			Title:   "Bring structure and naming discipline to your accounts.",
			Why:     "A clearer account structure makes it easier to see what’s working and iterate.",
			Actions: []string{
				"Create a simple naming convention for campaigns and ad sets.",
				"Group campaigns by objective (prospecting vs remarketing, for example).",
				"Set a small number of default weekly checks for performance and budget pacing.",
			},
		},
		SeverityOptimise: {
			ID:      "ppc-optimise",
			Channel: ChannelPPC,
			Title:   "Run a deliberate test on your strongest campaign.",
			Why:     "You already have functioning campaigns. Structured tests can unlock further efficiency.",
			Actions: []string{
				"Pick your best campaign by ROAS or cost per lead.",
				"Test a new creative angle or audience while keeping the rest constant.",
				"Review results after a defined period and either roll out or roll back.",
			},
		},
	},
	ChannelSocial: {
		SeverityCritical: {
			ID:      "social-critical",
			Channel: ChannelSocial,
			Title:   "Choose one core channel and show up consistently.",
			Why:     "Inconsistent or absent organic presence makes it harder for people to trust you and remember you exist.",
			Actions: []string{
				"Pick the one channel where your customers are most active.",
				"Commit to 2–3 posts per week for the next month.",
				"Focus on helpful, human posts over polished production.",
			},
		},
		SeverityImprove: {
			ID:      "social-improve",
			Channel: ChannelSocial,
			Title:   "Move from reactive posting to a simple content rhythm.",
			Why:     "Posting only when inspiration strikes makes it harder to build momentum.",
			Actions: []string{
				"Define 3–4 recurring content themes (e.g. education, behind the scenes, proof).",
				"Plan your next 2 weeks of posts around those themes.",
				"Block out one batching session each week to draft and schedule content.",
			},
		},
		SeverityOptimise: {
			ID:      "social-optimise",
			Channel: ChannelSocial,
			Title:   "Lean into what’s already resonating.",
			Why:     "Doubling down on proven formats will usually beat chasing every new trend.",
			Actions: []string{
				"Identify your top 5 posts by reach and by saves or replies.",
				"Look for common patterns in topic, format and hook.",
				"Create 3 new posts that deliberately echo those patterns.",
			},
		},
	},
}
