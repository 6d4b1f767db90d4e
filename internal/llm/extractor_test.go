package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract the thing.",
		Fields: []SchemaField{
			{Name: "title", Type: "string", Description: "the title", Required: true},
			{Name: "tags", Type: "[\"string\"]", Description: "related tags"},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract the thing.")
	assert.Contains(t, prompt, "\"title\": string (required) // the title")
	assert.Contains(t, prompt, "\"tags\": [\"string\"] // related tags")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "some input text")
}

func TestAnswerFeedbackSchema(t *testing.T) {
	schema := AnswerFeedbackSchema("commercial awareness")

	require.Len(t, schema.Fields, 9)
	for _, field := range schema.Fields {
		assert.True(t, field.Required, field.Name)
	}

	prompt := BuildExtractionPrompt(schema, "input")
	assert.Contains(t, prompt, "0-10 commercial awareness")
	assert.Contains(t, prompt, "\"suggested_improvements\"")
}

func TestFinalVerdictSchema(t *testing.T) {
	schema := FinalVerdictSchema()

	names := make([]string, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"verdict", "summary", "key_strengths", "key_concerns"}, names)

	prompt := BuildExtractionPrompt(schema, "input")
	assert.Contains(t, prompt, "\"pass\" | \"borderline\" | \"fail\"")
}
