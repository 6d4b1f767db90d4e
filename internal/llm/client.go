package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ChatMessage is one turn of conversation history sent to the model.
// Role is "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateChat continues a conversation under a system prompt and returns the full reply
	GenerateChat(ctx context.Context, systemPrompt string, history []ChatMessage, tier ModelTier) (string, error)
	// GenerateChatStream continues a conversation, invoking onDelta for each
	// incremental text fragment, and returns the accumulated reply
	GenerateChatStream(ctx context.Context, systemPrompt string, history []ChatMessage, tier ModelTier, onDelta func(delta string) error) (string, error)
	// GenerateFromDocument generates text from a prompt plus an attached binary document
	GenerateFromDocument(ctx context.Context, prompt string, data []byte, mimeType string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// GenerateChat continues a conversation and returns the full reply at once.
func (c *GeminiClient) GenerateChat(ctx context.Context, systemPrompt string, history []ChatMessage, tier ModelTier) (string, error) {
	return c.GenerateChatStream(ctx, systemPrompt, history, tier, nil)
}

// GenerateChatStream continues a conversation under a system prompt. The
// history must end with a user message; everything before it is sent as chat
// history. onDelta may be nil for non-streaming use.
func (c *GeminiClient) GenerateChatStream(ctx context.Context, systemPrompt string, history []ChatMessage, tier ModelTier, onDelta func(delta string) error) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}
	// Conversational replies need more variety than extraction calls.
	model.SetTemperature(0.8)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	if len(history) == 0 {
		return "", fmt.Errorf("conversation history is empty")
	}
	last := history[len(history)-1]
	if last.Role != "user" {
		return "", fmt.Errorf("conversation history must end with a user message, got %q", last.Role)
	}

	session := model.StartChat()
	session.History = toGenaiHistory(history[:len(history)-1])

	stream := session.SendMessageStream(ctx, genai.Text(last.Content))
	return collectStream(stream.Next, onDelta)
}

// GenerateFromDocument generates text from a prompt plus an attached binary
// document (PDF and similar formats the provider reads natively).
func (c *GeminiClient) GenerateFromDocument(ctx context.Context, prompt string, data []byte, mimeType string, tier ModelTier) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content from document: %w", err)
	}

	return extractTextFromResponse(resp)
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// model resolves the generative model for a tier with the default settings
// shared by all call paths.
func (c *GeminiClient) model(tier ModelTier) (*genai.GenerativeModel, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}
	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	return model, nil
}

// toGenaiHistory maps conversation roles onto the provider's role names
// ("assistant" becomes "model").
func toGenaiHistory(history []ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// collectStream drains a streaming response, forwarding each text delta and
// returning the accumulated reply.
func collectStream(next func() (*genai.GenerateContentResponse, error), onDelta func(delta string) error) (string, error) {
	var sb strings.Builder
	for {
		resp, err := next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("stream failed: %w", err)
		}

		delta, err := extractTextFromResponse(resp)
		if err != nil {
			// A chunk with no text parts (e.g. a safety annotation) is not fatal.
			continue
		}
		sb.WriteString(delta)
		if onDelta != nil {
			if err := onDelta(delta); err != nil {
				return "", err
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from stream")
	}
	return sb.String(), nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
