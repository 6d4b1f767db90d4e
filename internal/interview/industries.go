// Package interview implements the interview domain: the static industry,
// company and difficulty tables, the question priority resolver, and the
// prompt composer that turns an InterviewRequestConfig into the system
// prompt handed to the language model.
package interview

import "sort"

// IndustryProfile holds the static configuration for one supported industry.
// Profiles are built once at init and never mutated at runtime.
type IndustryProfile struct {
	ID              string
	Description     string
	FocusAreas      []string
	SampleQuestions []string
	Companies       []string
	PressureTactics []string
}

// industryProfiles maps industry id to its profile. Nine industries are
// supported; lookups outside this set are a validation error upstream.
var industryProfiles = map[string]IndustryProfile{
	"technology": {
		ID:          "technology",
		Description: "software product and platform companies, from high-growth startups to large engineering organisations",
		FocusAreas: []string{
			"System design and architecture trade-offs",
			"Coding practices, testing and code review culture",
			"Scalability, reliability and incident response",
			"Cross-functional collaboration with product and design",
			"Ownership of technical decisions and their consequences",
		},
		SampleQuestions: []string{
			"Walk me through a system you designed end to end. What would you change today?",
			"Tell me about the worst production incident you were involved in. What was your role?",
			"How do you decide when code is good enough to ship?",
			"Describe a technical disagreement with a colleague and how it was resolved.",
			"What part of your current stack would you replace first, and why?",
		},
		Companies: []string{
			"Google", "Apple", "Microsoft", "Amazon", "Meta", "Netflix", "Stripe",
			"Spotify", "Airbnb", "Uber", "Shopify", "Salesforce", "Nvidia", "Datadog",
		},
		PressureTactics: []string{
			"Ask for concrete numbers: latency, throughput, team size, timeline.",
			"Challenge a design decision with a plausible alternative and watch the defence.",
			"Ask what they would do differently with hindsight.",
		},
	},
	"finance": {
		ID:          "finance",
		Description: "investment banks, asset managers, fintechs and trading firms",
		FocusAreas: []string{
			"Market awareness and current financial events",
			"Quantitative reasoning under time pressure",
			"Risk assessment and regulatory context",
			"Client relationship management",
			"Attention to detail in numerical work",
		},
		SampleQuestions: []string{
			"Walk me through a DCF valuation from scratch.",
			"What moved the markets this week, and why should I care?",
			"Tell me about a time you caught an error that others had missed.",
			"How would you explain a derivative to a client with no financial background?",
			"Why this desk and not another?",
		},
		Companies: []string{
			"Goldman Sachs", "JPMorgan", "Morgan Stanley", "BlackRock", "Citadel",
			"Barclays", "HSBC", "Revolut", "Monzo", "Jane Street",
		},
		PressureTactics: []string{
			"Interrupt a rambling answer and ask for the one-sentence version.",
			"Push a mental-arithmetic follow-up with a tight time expectation.",
			"Ask them to take the opposite side of their own market view.",
		},
	},
	"law": {
		ID:          "law",
		Description: "commercial law firms, chambers and in-house legal teams",
		FocusAreas: []string{
			"Commercial awareness and client business context",
			"Structured legal reasoning and analysis",
			"Written and verbal communication precision",
			"Ethical judgement and professional conduct",
			"Resilience and workload management",
		},
		SampleQuestions: []string{
			"Tell me about a commercial story in the news and why it matters to our clients.",
			"Why commercial law rather than the bar?",
			"A client asks you to do something you believe is unethical but not illegal. What do you do?",
			"Describe a time you had to explain a complex matter to someone in simple terms.",
			"Which of our practice areas interests you most, and what do you know about it?",
			"Tell me about a time you worked to a brutal deadline. What gave?",
			"How would you prioritise competing requests from two partners?",
			"What do you think will be the biggest challenge facing law firms in the next five years?",
		},
		Companies: []string{
			"Clifford Chance", "Linklaters", "Allen & Overy", "Freshfields",
			"Slaughter and May", "Herbert Smith Freehills", "Ashurst", "Hogan Lovells",
		},
		PressureTactics: []string{
			"Ask for the commercial angle on every legal point raised.",
			"Probe a vague answer about motivation with a specific scenario.",
		},
	},
	"consulting": {
		ID:          "consulting",
		Description: "strategy and management consulting firms",
		FocusAreas: []string{
			"Structured problem solving and hypothesis-driven thinking",
			"Market sizing and case mathematics",
			"Client communication and executive presence",
			"Synthesis: leading with the answer",
			"Team leadership on engagements",
		},
		SampleQuestions: []string{
			"Our client's profits dropped 20% year on year. Structure your diagnosis.",
			"Estimate the annual market for electric scooters in a major city.",
			"Tell me about a time you changed a sceptical stakeholder's mind.",
			"What makes a slide good?",
			"Give me your answer first, then the reasoning.",
		},
		Companies: []string{
			"McKinsey", "Bain", "Boston Consulting Group", "Deloitte", "Accenture",
			"PwC", "EY", "KPMG", "Oliver Wyman",
		},
		PressureTactics: []string{
			"Insist on a structure before allowing any analysis.",
			"Change a case assumption mid-answer and ask them to adapt.",
			"Ask 'so what?' after each finding.",
		},
	},
	"marketing": {
		ID:          "marketing",
		Description: "brand, growth and performance marketing teams across agencies and in-house",
		FocusAreas: []string{
			"Campaign strategy and measurable outcomes",
			"Audience insight and segmentation",
			"Creative judgement backed by data",
			"Channel mix and budget allocation",
			"Brand voice consistency",
		},
		SampleQuestions: []string{
			"Tell me about a campaign you ran that failed. What did you learn?",
			"How do you decide between brand and performance spend?",
			"Pick a brand you admire and critique its current positioning.",
			"Walk me through how you would launch a product with no budget.",
			"Which metric do you distrust most, and why?",
		},
		Companies: []string{
			"Unilever", "Procter & Gamble", "Nike", "Coca-Cola", "Ogilvy", "WPP", "HubSpot",
		},
		PressureTactics: []string{
			"Ask for the measured result of every campaign mentioned.",
			"Challenge a creative opinion with a conflicting data point.",
		},
	},
	"healthcare": {
		ID:          "healthcare",
		Description: "hospitals, healthtech companies, pharma and care providers",
		FocusAreas: []string{
			"Patient or user safety and duty of care",
			"Working within regulation and clinical governance",
			"Multidisciplinary teamwork",
			"Handling emotionally difficult situations",
			"Evidence-based decision making",
		},
		SampleQuestions: []string{
			"Tell me about a time you raised a safety concern. What happened?",
			"How do you balance speed of delivery against regulatory constraints?",
			"Describe a difficult conversation with a patient, family member or clinician.",
			"What recent development in healthcare do you find most significant?",
			"How do you keep your knowledge current?",
		},
		Companies: []string{
			"NHS", "Pfizer", "AstraZeneca", "Johnson & Johnson", "Babylon Health", "Bupa",
		},
		PressureTactics: []string{
			"Present an ethical dilemma with no clean answer and ask for a decision.",
			"Ask what they would do when protocol conflicts with judgement.",
		},
	},
	"education": {
		ID:          "education",
		Description: "schools, universities and education technology companies",
		FocusAreas: []string{
			"Learner outcomes and how they are measured",
			"Differentiation for mixed-ability groups",
			"Safeguarding and pastoral responsibility",
			"Curriculum design and assessment",
			"Working with parents and stakeholders",
		},
		SampleQuestions: []string{
			"Describe a lesson or course you designed that you are proud of. How did you know it worked?",
			"How do you handle a learner who is disengaged?",
			"Tell me about a time you received difficult feedback on your teaching or content.",
			"What role should technology play in the classroom?",
			"How do you measure progress beyond test scores?",
		},
		Companies: []string{
			"Pearson", "Duolingo", "Coursera", "Khan Academy", "Kaplan",
		},
		PressureTactics: []string{
			"Ask for evidence of impact, not intent.",
			"Probe how they adapted when an approach failed for a specific learner.",
		},
	},
	"retail": {
		ID:          "retail",
		Description: "high-street retailers, e-commerce and consumer goods operations",
		FocusAreas: []string{
			"Customer experience and service recovery",
			"Commercial trading decisions: range, price, promotion",
			"Operational execution under seasonal pressure",
			"Team leadership on the shop floor or in fulfilment",
			"Use of sales and footfall data",
		},
		SampleQuestions: []string{
			"Tell me about a time you turned an unhappy customer around.",
			"Peak season starts tomorrow and you are two people short. What do you do?",
			"How would you decide which products to discount first?",
			"Describe a store or site you think executes brilliantly, and why.",
			"What does good availability look like, and what does it cost?",
		},
		Companies: []string{
			"Tesco", "Sainsbury's", "John Lewis", "Marks & Spencer", "IKEA", "Zara", "ASOS",
		},
		PressureTactics: []string{
			"Drill into the numbers behind any commercial claim.",
			"Ask them to make a trading call with incomplete information.",
		},
	},
	"media": {
		ID:          "media",
		Description: "broadcasters, publishers, streaming services and creative studios",
		FocusAreas: []string{
			"Editorial judgement and audience understanding",
			"Working to immovable deadlines",
			"Pitching and defending creative ideas",
			"Rights, standards and compliance awareness",
			"Collaboration across creative and commercial teams",
		},
		SampleQuestions: []string{
			"Pitch me a story or show idea in ninety seconds.",
			"Tell me about a piece of work that was killed. How did you respond?",
			"How do you balance what the audience wants against what the brand stands for?",
			"Describe a deadline you nearly missed and what saved it.",
			"What would you commission for us right now?",
		},
		Companies: []string{
			"BBC", "Sky", "Netflix", "The Guardian", "Condé Nast", "Spotify",
		},
		PressureTactics: []string{
			"Cut a pitch short and ask for the headline version.",
			"Ask who the audience is for every idea proposed.",
		},
	},
}

// Industry returns the profile for an industry id.
func Industry(id string) (IndustryProfile, bool) {
	p, ok := industryProfiles[id]
	return p, ok
}

// IndustryIDs returns the supported industry ids in sorted order.
func IndustryIDs() []string {
	ids := make([]string, 0, len(industryProfiles))
	for id := range industryProfiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
