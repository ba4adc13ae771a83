package textgen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"status 401", errors.New("API returned unexpected status code: 401"), domain.ErrGenAuthentication},
		{"invalid key", errors.New("error: invalid_api_key"), domain.ErrGenAuthentication},
		{"status 429", errors.New("API returned unexpected status code: 429"), domain.ErrGenRateLimited},
		{"rate limit text", errors.New("rate limit reached for model"), domain.ErrGenRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyError_UnknownPassesThrough(t *testing.T) {
	orig := fmt.Errorf("connection refused")
	got := classifyError(orig)
	assert.Equal(t, orig, got)
	assert.NotErrorIs(t, got, domain.ErrGenAuthentication)
	assert.NotErrorIs(t, got, domain.ErrGenRateLimited)
}

func TestNewGroqClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGroqClient(config.GroqConfig{BaseURL: "https://api.groq.com/openai/v1"})
	assert.Error(t, err)
}

func TestChatRole(t *testing.T) {
	assert.EqualValues(t, "system", chatRole(domain.RoleSystem))
	assert.EqualValues(t, "ai", chatRole(domain.RoleAssistant))
	assert.EqualValues(t, "human", chatRole(domain.RoleUser))
}
