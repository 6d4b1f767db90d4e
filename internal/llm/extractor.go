// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based structured output.
// It provides a reusable way to describe the JSON a call must return.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "AnswerFeedback")
	Description string        // System prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the structured output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", number
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Ground every judgement in the provided material; do not invent facts about the candidate.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// AnswerFeedbackSchema returns the structured-output schema for scoring a
// single interview answer. The knowledge label varies by industry (law
// interviews assess commercial awareness in place of domain knowledge), so
// it is a parameter.
func AnswerFeedbackSchema(knowledgeLabel string) ExtractionSchema {
	return ExtractionSchema{
		Name: "AnswerFeedback",
		Description: `You are an experienced interview assessor. Evaluate ONE candidate answer to ONE interview question.
Be specific and honest: name the exact phrases or claims your points refer to.
Weak answers get low scores; do not inflate.`,
		Fields: []SchemaField{
			{Name: "strengths", Type: "[\"string\"]", Description: "what the answer did well, concretely", Required: true},
			{Name: "weaknesses", Type: "[\"string\"]", Description: "what undermined the answer", Required: true},
			{Name: "opportunities", Type: "[\"string\"]", Description: "angles the candidate could have used but did not", Required: true},
			{Name: "threats", Type: "[\"string\"]", Description: "impressions that could sink the candidacy if repeated", Required: true},
			{Name: "suggested_improvements", Type: "[\"string\"]", Description: "rewrites or tactics for a stronger answer", Required: true},
			{Name: "communication", Type: "number", Description: "0-10 clarity and structure", Required: true},
			{Name: "domain_knowledge", Type: "number", Description: fmt.Sprintf("0-10 %s", knowledgeLabel), Required: true},
			{Name: "problem_solving", Type: "number", Description: "0-10 reasoning quality", Required: true},
			{Name: "relevant_experience", Type: "number", Description: "0-10 evidence of applicable experience", Required: true},
		},
	}
}

// FinalVerdictSchema returns the structured-output schema for the
// end-of-interview verdict.
func FinalVerdictSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "FinalVerdict",
		Description: `You are the hiring panel reviewing a completed mock interview.
Weigh the whole transcript and the per-answer feedback, then issue a single verdict.
"pass" means you would advance the candidate, "fail" means you would not, "borderline" means it could go either way.`,
		Fields: []SchemaField{
			{Name: "verdict", Type: "\"pass\" | \"borderline\" | \"fail\"", Description: "the overall outcome", Required: true},
			{Name: "summary", Type: "\"string\"", Description: "3-5 sentence justification addressed to the candidate", Required: true},
			{Name: "key_strengths", Type: "[\"string\"]", Description: "the strongest recurring signals", Required: true},
			{Name: "key_concerns", Type: "[\"string\"]", Description: "the concerns that most shaped the verdict", Required: true},
		},
	}
}
