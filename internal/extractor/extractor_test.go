package extractor

import (
	"encoding/json"
	"testing"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PayloadWithSurroundingText(t *testing.T) {
	raw := `Here's your data: {"quiz": [{"question": "Q1"}]}  thanks`

	payload, err := Extract(raw, Lists("quiz"))
	require.NoError(t, err)

	var doc struct {
		Quiz []map[string]string `json:"quiz"`
	}
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.Len(t, doc.Quiz, 1)
	assert.Equal(t, "Q1", doc.Quiz[0]["question"])
}

func TestExtract_CodeFences(t *testing.T) {
	raw := "```json\n{\"flashcards\": [{\"front\": \"a\", \"back\": \"b\"}]}\n```"

	payload, err := Extract(raw, Lists("flashcards"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "flashcards")
}

func TestExtract_NoOpeningBrace(t *testing.T) {
	_, err := Extract("Sorry, I cannot help with that.", Lists("quiz"))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeMalformedResponse))
}

func TestExtract_UnparseableObject(t *testing.T) {
	_, err := Extract(`{"quiz": [}`, Lists("quiz"))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeMalformedResponse))

	// The raw text is carried for diagnostics.
	de := err.(*domain.DomainError)
	assert.Equal(t, `{"quiz": [}`, de.Context["raw"])
}

func TestExtract_MissingRequiredKey(t *testing.T) {
	_, err := Extract(`{"cards": []}`, Lists("quiz"))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeSchemaViolation))
}

func TestExtract_WrongContainerType(t *testing.T) {
	_, err := Extract(`{"quiz": "not-a-list"}`, Lists("quiz"))
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeSchemaViolation))
}

func TestExtract_NestedBracesInsideStrings(t *testing.T) {
	raw := `{"quiz": [{"question": "What does {x} mean?"}]}`

	payload, err := Extract(raw, Lists("quiz"))
	require.NoError(t, err)
	assert.Equal(t, raw, string(payload))
}

func TestExtract_ScalarKinds(t *testing.T) {
	raw := `{"topic": "UPSC", "score_confidence": 85, "feedback": []}`

	fields := []Field{
		{Name: "topic", Kind: KindString},
		{Name: "score_confidence", Kind: KindNumber},
		{Name: "feedback", Kind: KindList},
	}
	_, err := Extract(raw, fields)
	assert.NoError(t, err)

	fields[1].Kind = KindList
	_, err = Extract(raw, fields)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeSchemaViolation))
}

func TestExtractInto(t *testing.T) {
	raw := `Evaluation follows. {"topic": "UPSC", "score_confidence": 85, "score_clarity": 75, "feedback": ["f1"], "strengths": ["s1", "s2"]}`

	var eval domain.InterviewEvaluation
	err := ExtractInto(raw, []Field{
		{Name: "score_confidence", Kind: KindNumber},
		{Name: "feedback", Kind: KindList},
	}, &eval)
	require.NoError(t, err)
	assert.Equal(t, 85, eval.ScoreConfidence)
	assert.Equal(t, []string{"s1", "s2"}, eval.Strengths)
}

func TestExtractInto_TypeMismatchIsSchemaViolation(t *testing.T) {
	raw := `{"score_confidence": "eighty", "feedback": []}`

	var eval domain.InterviewEvaluation
	err := ExtractInto(raw, Lists("feedback"), &eval)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeSchemaViolation))
}
