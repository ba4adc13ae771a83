// Package textgen implements the domain.TextGenerator boundary against the
// Groq OpenAI-compatible completion API.
package textgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// GroqClient is a domain.TextGenerator backed by langchaingo's OpenAI client
// pointed at the Groq endpoint. The model is selected per call, so one
// client serves every feature.
type GroqClient struct {
	llm *openai.LLM
}

// NewGroqClient creates a connected client. The API key is validated lazily
// on first generation, not here.
func NewGroqClient(cfg config.GroqConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq API key cannot be empty")
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.ModelQA),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize groq client: %w", err)
	}
	return &GroqClient{llm: llm}, nil
}

// Generate sends the message sequence and returns the first choice's text.
// Failures come back as CodeCollaborator domain errors wrapping the typed
// sentinel that matches the upstream condition.
func (c *GroqClient) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	content := make([]llms.MessageContent, 0, len(req.Messages))
	for _, m := range req.Messages {
		content = append(content, llms.TextParts(chatRole(m.Role), m.Content))
	}

	opts := []llms.CallOption{}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}

	resp, err := c.llm.GenerateContent(ctx, content, opts...)
	if err != nil {
		logger.Get().Warn("text generation failed",
			zap.String("model", req.Model),
			zap.Error(err))
		return "", domain.NewCollaboratorError("text generation failed", classifyError(err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewCollaboratorError("text generation returned no choices", nil)
	}
	return resp.Choices[0].Content, nil
}

func chatRole(role string) llms.ChatMessageType {
	switch role {
	case domain.RoleSystem:
		return llms.ChatMessageTypeSystem
	case domain.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// classifyError folds the upstream error into one of the typed sentinels
// where the HTTP status is recognizable, else passes it through unchanged.
func classifyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "Unauthorized") || strings.Contains(msg, "invalid_api_key"):
		return fmt.Errorf("%w: %v", domain.ErrGenAuthentication, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "rate_limit"):
		return fmt.Errorf("%w: %v", domain.ErrGenRateLimited, err)
	default:
		return err
	}
}
