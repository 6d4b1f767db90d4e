// Package research fetches public context about a company before an
// interview starts. It is an optional enrichment: when search credentials
// are absent the rest of the system runs without it.
package research

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// maxSnippets bounds how many search results are carried into the prompt.
const maxSnippets = 3

// Snippet is one search result distilled to what the prompt needs.
type Snippet struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

// Researcher handles external company research via Programmable Search.
// A nil Researcher is valid and reports itself disabled.
type Researcher struct {
	svc *customsearch.Service
	cx  string
}

// NewResearcher creates a Researcher, or returns nil without error when
// either credential is missing. Callers check Enabled rather than nil-ness.
func NewResearcher(ctx context.Context, apiKey, cx string) (*Researcher, error) {
	if apiKey == "" || cx == "" {
		return nil, nil
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Researcher{svc: svc, cx: cx}, nil
}

// Enabled reports whether research calls will reach the provider.
func (r *Researcher) Enabled() bool {
	return r != nil && r.svc != nil
}

// ResearchCompany searches for recent public context about the company and
// renders it as a prompt-ready brief. The role narrows the query when given.
// A disabled researcher returns an empty brief and no error.
func (r *Researcher) ResearchCompany(ctx context.Context, company, role string) (string, error) {
	if !r.Enabled() {
		return "", nil
	}
	company = strings.TrimSpace(company)
	if company == "" {
		return "", nil
	}

	query := buildQuery(company, role)
	resp, err := r.svc.Cse.List().Context(ctx).Cx(r.cx).Q(query).Num(5).Do()
	if err != nil {
		return "", fmt.Errorf("company search failed: %w", err)
	}

	return RenderBrief(company, snippetsFromResults(resp.Items, maxSnippets)), nil
}

// buildQuery assembles the search query for a company and optional role.
func buildQuery(company, role string) string {
	query := fmt.Sprintf("%s company culture values recent news", company)
	if role = strings.TrimSpace(role); role != "" {
		query += " " + role
	}
	return query
}

// snippetsFromResults distills raw search results, dropping items with no
// snippet text and deduplicating by link.
func snippetsFromResults(items []*customsearch.Result, max int) []Snippet {
	seen := make(map[string]bool)
	out := make([]Snippet, 0, max)
	for _, item := range items {
		if item == nil || strings.TrimSpace(item.Snippet) == "" {
			continue
		}
		if seen[item.Link] {
			continue
		}
		seen[item.Link] = true
		out = append(out, Snippet{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: strings.TrimSpace(item.Snippet),
		})
		if len(out) == max {
			break
		}
	}
	return out
}

// RenderBrief formats snippets as the research block the prompt composer
// appends to its context section. An empty snippet list renders as "".
func RenderBrief(company string, snippets []Snippet) string {
	if len(snippets) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recent public context on %s:\n", company)
	for _, s := range snippets {
		title := s.Title
		if title == "" {
			title = s.Link
		}
		fmt.Fprintf(&sb, "- %s: %s\n", title, s.Summary)
	}
	return strings.TrimRight(sb.String(), "\n")
}
