package interview

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *Composer {
	return NewComposerWithRand(rand.New(rand.NewSource(1)))
}

func baseConfig() InterviewRequestConfig {
	return InterviewRequestConfig{
		Industry:      "technology",
		Role:          "Backend Engineer",
		Difficulty:    "mid-level",
		QuestionCount: 5,
	}
}

func TestCompose_MinimalConfig(t *testing.T) {
	prompt := testComposer().Compose(baseConfig(), "")

	assert.NotContains(t, prompt.Text, "CUSTOM QUESTIONS")
	assert.NotContains(t, prompt.Text, "CANDIDATE CV")
	assert.NotContains(t, prompt.Text, "JOB DESCRIPTION")
	assert.NotContains(t, prompt.Text, "PREFERRED QUESTION TYPES")
	assert.NotContains(t, prompt.Text, "RECENT COMPANY CONTEXT")

	// The fixed sections render regardless of optional fields.
	assert.Contains(t, prompt.Text, "GROUND RULES:")
	assert.Contains(t, prompt.Text, "QUESTION SOURCE PRIORITY:")
	assert.Contains(t, prompt.Text, "FOLLOW-UP POLICY:")
	assert.Contains(t, prompt.Text, "FINAL REMINDERS:")
	assert.Contains(t, prompt.Text, "LEVEL: Mid-Level")
}

func TestCompose_AllIndustriesAndLevels(t *testing.T) {
	for _, industryID := range IndustryIDs() {
		for _, level := range DifficultyLevels() {
			t.Run(industryID+"/"+level, func(t *testing.T) {
				cfg := InterviewRequestConfig{
					Industry:      industryID,
					Role:          "Candidate Role",
					Difficulty:    level,
					QuestionCount: 5,
				}
				prompt := testComposer().Compose(cfg, "")

				profile, ok := Industry(industryID)
				require.True(t, ok)
				difficulty, ok := Difficulty(level)
				require.True(t, ok)

				assert.Contains(t, prompt.Text, "LEVEL: "+difficulty.Display)
				assert.Contains(t, profile.Companies, prompt.Company)
				assert.NotEmpty(t, prompt.Title)
				assert.NotContains(t, prompt.Text, "CUSTOM QUESTIONS")
				assert.NotContains(t, prompt.Text, "CANDIDATE CV")
			})
		}
	}
}

func TestCompose_CompanyResolution(t *testing.T) {
	t.Run("explicit company kept", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Company = "Initech"
		prompt := testComposer().Compose(cfg, "")
		assert.Equal(t, "Initech", prompt.Company)
		assert.Contains(t, prompt.Text, "You represent: Initech")
	})

	t.Run("empty company drawn from industry pool", func(t *testing.T) {
		prompt := testComposer().Compose(baseConfig(), "")
		require.NotEmpty(t, prompt.Company)

		tech, ok := Industry("technology")
		require.True(t, ok)
		assert.Contains(t, tech.Companies, prompt.Company)
	})

	t.Run("reruns differ only in the random title pick", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Company = "Initech"

		a := NewComposer().Compose(cfg, "")
		b := NewComposer().Compose(cfg, "")

		assert.Equal(t, "Initech", a.Company)
		assert.Equal(t, a.Company, b.Company)

		// With the company pinned, the title is the only random token left;
		// substituting it out must make the two prompts identical.
		normalize := func(p ComposedPrompt) string {
			return strings.ReplaceAll(p.Text, p.Title, "<title>")
		}
		assert.Equal(t, normalize(a), normalize(b))
	})

	t.Run("same seed resolves the same picks", func(t *testing.T) {
		a := NewComposerWithRand(rand.New(rand.NewSource(42))).Compose(baseConfig(), "")
		b := NewComposerWithRand(rand.New(rand.NewSource(42))).Compose(baseConfig(), "")
		assert.Equal(t, a.Company, b.Company)
		assert.Equal(t, a.Title, b.Title)
		assert.Equal(t, a.Text, b.Text)
	})
}

func TestCompose_InterviewerTitle(t *testing.T) {
	prompt := testComposer().Compose(baseConfig(), "")
	require.NotEmpty(t, prompt.Title)
	assert.Contains(t, TitlesFor("technology", "mid-level"), prompt.Title)
	assert.Contains(t, prompt.Text, "Your job title: "+prompt.Title)
}

func TestCompose_CustomQuestionsVerbatim(t *testing.T) {
	cfg := baseConfig()
	cfg.CustomQuestions = []string{
		"Why did you leave your last role?",
		"Explain CAP theorem like I'm five.",
	}

	prompt := testComposer().Compose(cfg, "")

	assert.Contains(t, prompt.Text, "CUSTOM QUESTIONS (MANDATORY):")
	assert.Contains(t, prompt.Text, "1. Why did you leave your last role?")
	assert.Contains(t, prompt.Text, "2. Explain CAP theorem like I'm five.")
	assert.Contains(t, prompt.Text, "WORD FOR WORD")
	assert.Equal(t, []Tier{TierCustom, TierGeneric}, prompt.Order)
}

func TestCompose_CVSectionPrecedesContext(t *testing.T) {
	cfg := baseConfig()
	cfg.CVText = "Senior engineer at Initech, 2019-2024. Led payments team."

	prompt := testComposer().Compose(cfg, "")

	cvIdx := strings.Index(prompt.Text, "CANDIDATE CV:")
	ctxIdx := strings.Index(prompt.Text, "INTERVIEW CONTEXT:")
	require.GreaterOrEqual(t, cvIdx, 0)
	require.GreaterOrEqual(t, ctxIdx, 0)
	assert.Less(t, cvIdx, ctxIdx)

	assert.Contains(t, prompt.Text, "Led payments team")
	assert.Equal(t, []Tier{TierCV, TierGeneric}, prompt.Order)
}

func TestCompose_QuestionCountDirective(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		expect string
	}{
		{"normal count wraps two before the end", 5, "From question 3 onwards"},
		{"maximum count", 10, "From question 8 onwards"},
		{"single question clamps wrap-up to one", 1, "From question 1 onwards"},
		{"two questions clamp wrap-up to one", 2, "From question 1 onwards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.QuestionCount = tt.count
			prompt := testComposer().Compose(cfg, "")
			assert.Contains(t, prompt.Text, tt.expect)
		})
	}
}

func TestCompose_LawOverride(t *testing.T) {
	cfg := baseConfig()
	cfg.Industry = "law"
	cfg.Role = "Trainee Solicitor"

	prompt := testComposer().Compose(cfg, "")

	assert.Contains(t, prompt.Text, "LAW INTERVIEW OVERRIDE:")
	assert.Contains(t, prompt.Text, "British English")
	assert.Contains(t, prompt.Text, "QUESTION BANK:")

	// The full industry bank is rendered, in order.
	law, ok := Industry("law")
	require.True(t, ok)
	for _, q := range law.SampleQuestions {
		assert.Contains(t, prompt.Text, q)
	}

	// Law swaps the knowledge category label.
	assert.Contains(t, prompt.Text, "commercial awareness")
	assert.NotContains(t, prompt.Text, "domain knowledge")
}

func TestCompose_NonLawHasNoOverride(t *testing.T) {
	prompt := testComposer().Compose(baseConfig(), "")
	assert.NotContains(t, prompt.Text, "LAW INTERVIEW OVERRIDE:")
	assert.Contains(t, prompt.Text, "domain knowledge")
}

func TestCompose_CompanyStyleSection(t *testing.T) {
	t.Run("curated company renders style", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Company = "Google"
		prompt := testComposer().Compose(cfg, "")
		assert.Contains(t, prompt.Text, "COMPANY STYLE")
		assert.Contains(t, prompt.Text, "Focus on the user")
	})

	t.Run("unknown company omits section", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Company = "Initech"
		prompt := testComposer().Compose(cfg, "")
		assert.NotContains(t, prompt.Text, "COMPANY STYLE")
	})
}

func TestCompose_ResearchRendering(t *testing.T) {
	brief := "Recent public context on Acme:\n- Acme IPO: raised $2B last quarter"

	prompt := testComposer().Compose(baseConfig(), brief)
	assert.Contains(t, prompt.Text, "RECENT COMPANY CONTEXT")
	assert.Contains(t, prompt.Text, "Acme IPO")
}

func TestCompose_QuestionTypes(t *testing.T) {
	t.Run("known types rendered, unknown dropped", func(t *testing.T) {
		cfg := baseConfig()
		cfg.QuestionTypes = []string{"behavioral", "made-up", "technical"}
		prompt := testComposer().Compose(cfg, "")
		assert.Contains(t, prompt.Text, "PREFERRED QUESTION TYPES")
		assert.Contains(t, prompt.Text, "Behavioural:")
		assert.Contains(t, prompt.Text, "Technical:")
		assert.NotContains(t, prompt.Text, "made-up")
	})

	t.Run("only unknown types omits section", func(t *testing.T) {
		cfg := baseConfig()
		cfg.QuestionTypes = []string{"made-up"}
		prompt := testComposer().Compose(cfg, "")
		assert.NotContains(t, prompt.Text, "PREFERRED QUESTION TYPES")
	})
}

func TestCompose_FollowUpIntensity(t *testing.T) {
	cfg := baseConfig()
	cfg.FollowUpIntensity = FollowUpIntensive

	prompt := testComposer().Compose(cfg, "")
	assert.Contains(t, prompt.Text, "Challenge every answer.")
}

func TestCompose_JobDescription(t *testing.T) {
	cfg := baseConfig()
	cfg.JobDescription = "We need someone to own the billing pipeline."

	prompt := testComposer().Compose(cfg, "")
	assert.Contains(t, prompt.Text, "JOB DESCRIPTION:")
	assert.Contains(t, prompt.Text, "own the billing pipeline")
}

func TestCompose_UnknownIndustryFallsBack(t *testing.T) {
	// Validation upstream rejects unknown industries; Compose itself must
	// still produce a usable prompt rather than panic.
	cfg := baseConfig()
	cfg.Industry = "astrology"

	prompt := testComposer().Compose(cfg, "")
	assert.NotEmpty(t, prompt.Text)
	assert.NotEmpty(t, prompt.Company)
}

func TestCompose_IntroExample(t *testing.T) {
	t.Run("law uses the coach-toned intro", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Industry = "law"
		prompt := testComposer().Compose(cfg, "")
		assert.Contains(t, prompt.Text, "Eleanor Whitfield")
	})

	t.Run("other industries use the generic intro", func(t *testing.T) {
		prompt := testComposer().Compose(baseConfig(), "")
		assert.Contains(t, prompt.Text, "Sarah Chen")
	})
}
