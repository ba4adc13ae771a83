package domain

import (
	"context"
	"errors"
)

// Chat roles used in the exchange with the text-generation collaborator.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged entry of a model conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest describes one call to the text-generation collaborator.
// The collaborator is stateless; the full message sequence is sent each time.
type GenerateRequest struct {
	Messages    []ChatMessage
	Model       string
	MaxTokens   int
	Temperature float64
}

// TextGenerator is the boundary to the external text-completion service.
// Implementations return the raw completion text or one of the typed
// failures below wrapped in a CodeCollaborator DomainError.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Typed collaborator failures. Callers that only need "collaborator
// unavailable" can match on CodeCollaborator; these sentinels preserve the
// upstream distinction for logging and user messages.
var (
	ErrGenAuthentication = errors.New("authentication failed")
	ErrGenRateLimited    = errors.New("rate limit exceeded")
)

// CollaboratorErrorMessage maps a collaborator failure to the short
// user-visible string substituted into feature responses.
func CollaboratorErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrGenAuthentication):
		return "AI authentication failed. Is the API key correct?"
	case errors.Is(err, ErrGenRateLimited):
		return "AI rate limit exceeded. Please try again in a moment."
	default:
		return "An unknown error occurred with the AI. Please try again."
	}
}
