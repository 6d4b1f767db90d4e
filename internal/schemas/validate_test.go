package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFeedback = `{
	"strengths": ["clear narrative"],
	"weaknesses": ["no numbers"],
	"opportunities": ["mention leadership"],
	"threats": ["came across hesitant"],
	"suggested_improvements": ["lead with the outcome"],
	"communication": 7,
	"domain_knowledge": 6,
	"problem_solving": 8,
	"relevant_experience": 5
}`

func TestValidateFeedback_Valid(t *testing.T) {
	assert.NoError(t, ValidateFeedback(validFeedback))
}

func TestValidateFeedback_MissingField(t *testing.T) {
	err := ValidateFeedback(`{"strengths": []}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateFeedback_WrongType(t *testing.T) {
	err := ValidateFeedback(`{
		"strengths": "not an array",
		"weaknesses": [], "opportunities": [], "threats": [],
		"suggested_improvements": [],
		"communication": 7, "domain_knowledge": 6,
		"problem_solving": 8, "relevant_experience": 5
	}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateVerdict_Valid(t *testing.T) {
	err := ValidateVerdict(`{
		"verdict": "pass",
		"summary": "Strong throughout.",
		"key_strengths": ["communication"],
		"key_concerns": []
	}`)
	assert.NoError(t, err)
}

func TestValidateVerdict_UnknownVerdict(t *testing.T) {
	err := ValidateVerdict(`{
		"verdict": "strong-hire",
		"summary": "Great.",
		"key_strengths": [],
		"key_concerns": []
	}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateVerdict_EmptySummary(t *testing.T) {
	err := ValidateVerdict(`{
		"verdict": "fail",
		"summary": "",
		"key_strengths": [],
		"key_concerns": []
	}`)
	assert.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}

func TestValidateJSONString_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string"}
				}
			}
		}
	}`

	jsonContent := `{"person": {}}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
