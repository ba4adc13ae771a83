package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/dto"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/extractor"
)

const (
	defaultQuizQuestions  = 5
	maxQuizQuestions      = 20
	defaultFlashcards     = 10
	maxFlashcards         = 30
	tokensPerQuizQuestion = 200
	tokensPerFlashcard    = 75
)

// StudyGenService is the AI study toolbox: doubt answers, notes, generated
// quizzes, flashcards and concept diagrams. The JSON-returning tools route
// their raw responses through the extractor.
type StudyGenService interface {
	AnswerDoubt(ctx context.Context, question string) (string, error)
	GenerateNotes(ctx context.Context, text string) (string, error)
	GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.GeneratedQuizResponse, error)
	GenerateFlashcards(ctx context.Context, topic string, numCards int) (*dto.FlashcardsResponse, error)
	GenerateDiagram(ctx context.Context, topic string) (string, error)
}

type studyGenServiceImpl struct {
	textGen domain.TextGenerator
	groqCfg config.GroqConfig
}

func NewStudyGenService(textGen domain.TextGenerator, groqCfg config.GroqConfig) StudyGenService {
	return &studyGenServiceImpl{textGen: textGen, groqCfg: groqCfg}
}

func (s *studyGenServiceImpl) AnswerDoubt(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("question")}
	}
	return s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: doubtSystemPrompt},
			{Role: domain.RoleUser, Content: question},
		},
		Model:     s.groqCfg.ModelQA,
		MaxTokens: 250,
	})
}

func (s *studyGenServiceImpl) GenerateNotes(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("text")}
	}
	return s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: notesSystemPrompt},
			{Role: domain.RoleUser, Content: text},
		},
		Model:     s.groqCfg.ModelNotes,
		MaxTokens: 400,
	})
}

// GenerateQuiz builds a multiple-choice quiz for a topic. The focus-state
// flags override the requested shape: late-night forces easy questions,
// distracted collapses the quiz to a single re-engagement question. When
// both are set, distracted wins.
func (s *studyGenServiceImpl) GenerateQuiz(ctx context.Context, req dto.GenerateQuizRequest) (*dto.GeneratedQuizResponse, error) {
	var verrs domain.ValidationErrors
	if strings.TrimSpace(req.Topic) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("topic"))
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = defaultQuizQuestions
	}
	if req.NumQuestions < 1 || req.NumQuestions > maxQuizQuestions {
		verrs = append(verrs, domain.NewOutOfRangeError("num_questions", req.NumQuestions, 1, maxQuizQuestions))
	}
	if req.Difficulty == "" {
		req.Difficulty = "Medium"
	}
	switch req.Difficulty {
	case "Easy", "Medium", "Hard":
	default:
		verrs = append(verrs, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	var persona string
	switch {
	case req.IsDistracted:
		persona = quizSystemPromptDistracted
		req.NumQuestions = 1
	case req.IsLateNight:
		persona = quizSystemPromptLateNight
	default:
		persona = fmt.Sprintf(quizSystemPromptStandard, req.Difficulty)
	}

	systemPrompt := persona + "\n\n" + quizJSONInstructions
	userPrompt := fmt.Sprintf("Topic: %s\nNumber of Questions: %d\nDifficulty: %s",
		req.Topic, req.NumQuestions, req.Difficulty)

	raw, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: systemPrompt},
			{Role: domain.RoleUser, Content: userPrompt},
		},
		Model:     s.groqCfg.ModelQuiz,
		MaxTokens: tokensPerQuizQuestion * req.NumQuestions,
	})
	if err != nil {
		return nil, err
	}

	var resp dto.GeneratedQuizResponse
	if err := extractor.ExtractInto(raw, extractor.Lists("quiz"), &resp); err != nil {
		return nil, err
	}
	for i, q := range resp.Quiz {
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return nil, domain.NewSchemaViolationError(
				fmt.Sprintf("question %d has answer_index %d outside its options", i+1, q.AnswerIndex))
		}
	}
	return &resp, nil
}

func (s *studyGenServiceImpl) GenerateFlashcards(ctx context.Context, topic string, numCards int) (*dto.FlashcardsResponse, error) {
	var verrs domain.ValidationErrors
	if strings.TrimSpace(topic) == "" {
		verrs = append(verrs, domain.NewMissingFieldError("topic"))
	}
	if numCards == 0 {
		numCards = defaultFlashcards
	}
	if numCards < 1 || numCards > maxFlashcards {
		verrs = append(verrs, domain.NewOutOfRangeError("num_cards", numCards, 1, maxFlashcards))
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	raw, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: flashcardSystemPrompt},
			{Role: domain.RoleUser, Content: fmt.Sprintf("Topic: %s\nNumber of Flashcards: %d", topic, numCards)},
		},
		Model:     s.groqCfg.ModelFlashcards,
		MaxTokens: tokensPerFlashcard * numCards,
	})
	if err != nil {
		return nil, err
	}

	var resp dto.FlashcardsResponse
	if err := extractor.ExtractInto(raw, extractor.Lists("flashcards"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateDiagram returns Mermaid flowchart source. The response is plain
// text, not JSON; validation is the presence of a top-down graph header.
func (s *studyGenServiceImpl) GenerateDiagram(ctx context.Context, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}

	raw, err := s.textGen.Generate(ctx, domain.GenerateRequest{
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: visualizerSystemPrompt},
			{Role: domain.RoleUser, Content: fmt.Sprintf("Convert the following topic into Mermaid.js flowchart syntax: %s", topic)},
		},
		Model:     s.groqCfg.ModelVisualizer,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", err
	}

	if !strings.Contains(raw, "graph TD") && !strings.Contains(raw, "flowchart TD") {
		return "", domain.NewMalformedResponseError("response is not a top-down Mermaid flowchart", raw)
	}
	return raw, nil
}
