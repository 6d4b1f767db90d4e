package interview

// DifficultyProfile describes one of the four fixed interview difficulty
// levels. Display is the form rendered into the prompt ("LEVEL: Mid-Level").
type DifficultyProfile struct {
	Level    string
	Display  string
	Guidance string
}

var difficultyProfiles = map[string]DifficultyProfile{
	"entry-level": {
		Level:   "entry-level",
		Display: "Entry-Level",
		Guidance: "Calibrate for a candidate with little or no professional experience. " +
			"Weight questions towards education, internships, projects and motivation. " +
			"Accept potential over polish, but still probe whether claimed contributions were really theirs.",
	},
	"mid-level": {
		Level:   "mid-level",
		Display: "Mid-Level",
		Guidance: "Calibrate for a candidate with roughly two to six years of experience. " +
			"Expect concrete ownership of delivered work. Probe for independent judgement, " +
			"trade-off decisions they made themselves, and early signs of mentoring others.",
	},
	"senior": {
		Level:   "senior",
		Display: "Senior",
		Guidance: "Calibrate for an experienced professional expected to lead work and people. " +
			"Drill into decisions with organisational consequences, conflict they resolved, " +
			"failures they owned, and how they multiplied the people around them. Do not accept 'we' answers; ask what THEY did.",
	},
	"executive": {
		Level:   "executive",
		Display: "Executive",
		Guidance: "Calibrate for a leadership candidate. Focus on strategy, commercial results, " +
			"organisational design and hard calls: restructures, cancelled bets, public failures. " +
			"Challenge their narrative; executives should withstand pushback without becoming defensive.",
	},
}

// Difficulty returns the profile for a difficulty level.
func Difficulty(level string) (DifficultyProfile, bool) {
	d, ok := difficultyProfiles[level]
	return d, ok
}

// DifficultyLevels returns the four levels in ascending order of seniority.
func DifficultyLevels() []string {
	return []string{"entry-level", "mid-level", "senior", "executive"}
}

// interviewerTitles maps industry id, then difficulty level, to the pool of
// interviewer job titles the composer picks from at random.
var interviewerTitles = map[string]map[string][]string{
	"technology": {
		"entry-level": {"Software Engineer", "Engineering Team Lead"},
		"mid-level":   {"Senior Software Engineer", "Engineering Manager", "Staff Engineer"},
		"senior":      {"Engineering Manager", "Director of Engineering", "Principal Engineer"},
		"executive":   {"VP of Engineering", "Chief Technology Officer"},
	},
	"finance": {
		"entry-level": {"Analyst", "Associate"},
		"mid-level":   {"Vice President", "Senior Associate"},
		"senior":      {"Executive Director", "Head of Desk"},
		"executive":   {"Managing Director", "Chief Investment Officer"},
	},
	"law": {
		"entry-level": {"Associate", "Graduate Recruitment Partner"},
		"mid-level":   {"Senior Associate", "Counsel"},
		"senior":      {"Partner", "Of Counsel"},
		"executive":   {"Senior Partner", "Head of Practice"},
	},
	"consulting": {
		"entry-level": {"Consultant", "Engagement Manager"},
		"mid-level":   {"Engagement Manager", "Associate Partner"},
		"senior":      {"Associate Partner", "Partner"},
		"executive":   {"Senior Partner", "Practice Lead"},
	},
	"marketing": {
		"entry-level": {"Marketing Manager", "Brand Manager"},
		"mid-level":   {"Senior Brand Manager", "Head of Growth"},
		"senior":      {"Marketing Director", "Head of Brand"},
		"executive":   {"Chief Marketing Officer", "VP of Marketing"},
	},
	"healthcare": {
		"entry-level": {"Ward Manager", "Clinical Supervisor"},
		"mid-level":   {"Clinical Lead", "Service Manager"},
		"senior":      {"Head of Department", "Medical Director"},
		"executive":   {"Chief Medical Officer", "Director of Clinical Services"},
	},
	"education": {
		"entry-level": {"Head of Department", "Senior Teacher"},
		"mid-level":   {"Deputy Head", "Programme Director"},
		"senior":      {"Headteacher", "Dean"},
		"executive":   {"Director of Education", "Vice-Chancellor"},
	},
	"retail": {
		"entry-level": {"Store Manager", "Team Leader"},
		"mid-level":   {"Area Manager", "Buying Manager"},
		"senior":      {"Regional Director", "Head of Trading"},
		"executive":   {"Retail Director", "Chief Commercial Officer"},
	},
	"media": {
		"entry-level": {"Producer", "Section Editor"},
		"mid-level":   {"Senior Producer", "Commissioning Editor"},
		"senior":      {"Executive Producer", "Head of Content"},
		"executive":   {"Director of Programmes", "Editor-in-Chief"},
	},
}

// genericTitles is the fallback pool when no (industry, difficulty) entry exists.
var genericTitles = []string{"Hiring Manager", "Head of Department", "Senior Manager"}

// TitlesFor returns the interviewer title pool for an (industry, difficulty)
// pair, falling back to a generic pool so the composer never interpolates an
// empty title.
func TitlesFor(industry, difficulty string) []string {
	if byLevel, ok := interviewerTitles[industry]; ok {
		if titles, ok := byLevel[difficulty]; ok && len(titles) > 0 {
			return titles
		}
	}
	return genericTitles
}
