package research

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/customsearch/v1"
)

func TestNewResearcher_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		cx     string
	}{
		{"no key", "", "cx-id"},
		{"no engine id", "key", ""},
		{"neither", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResearcher(context.Background(), tt.apiKey, tt.cx)
			require.NoError(t, err)
			assert.Nil(t, r)
			assert.False(t, r.Enabled())
		})
	}
}

func TestResearchCompany_DisabledReturnsEmpty(t *testing.T) {
	var r *Researcher

	brief, err := r.ResearchCompany(context.Background(), "Stripe", "Backend Engineer")
	require.NoError(t, err)
	assert.Empty(t, brief)
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t,
		"Acme company culture values recent news Backend Engineer",
		buildQuery("Acme", "Backend Engineer"))

	// An absent role leaves the base query untouched.
	assert.Equal(t,
		"Acme company culture values recent news",
		buildQuery("Acme", "  "))
}

func TestSnippetsFromResults(t *testing.T) {
	items := []*customsearch.Result{
		{Title: "About Acme", Link: "https://acme.example/about", Snippet: "Acme builds rockets."},
		{Title: "No snippet", Link: "https://acme.example/empty", Snippet: "   "},
		{Title: "About Acme dup", Link: "https://acme.example/about", Snippet: "duplicate link"},
		{Title: "Acme culture", Link: "https://acme.example/culture", Snippet: "Values speed."},
		{Title: "Acme news", Link: "https://news.example/acme", Snippet: "Raised a round."},
		{Title: "One too many", Link: "https://extra.example", Snippet: "dropped by cap"},
	}

	snippets := snippetsFromResults(items, 3)
	require.Len(t, snippets, 3)
	assert.Equal(t, "https://acme.example/about", snippets[0].Link)
	assert.Equal(t, "Acme builds rockets.", snippets[0].Summary)
	assert.Equal(t, "https://acme.example/culture", snippets[1].Link)
	assert.Equal(t, "https://news.example/acme", snippets[2].Link)
}

func TestRenderBrief(t *testing.T) {
	snippets := []Snippet{
		{Title: "About Acme", Link: "https://acme.example/about", Summary: "Acme builds rockets."},
		{Title: "", Link: "https://acme.example/culture", Summary: "Values speed."},
	}

	brief := RenderBrief("Acme", snippets)
	assert.Contains(t, brief, "Recent public context on Acme:")
	assert.Contains(t, brief, "- About Acme: Acme builds rockets.")
	// A result with no title falls back to its link.
	assert.Contains(t, brief, "- https://acme.example/culture: Values speed.")
}

func TestRenderBrief_Empty(t *testing.T) {
	assert.Empty(t, RenderBrief("Acme", nil))
}
