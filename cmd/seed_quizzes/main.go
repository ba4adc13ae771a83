package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/database"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_quizzes.json"

type seedQuestion struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

type seedQuiz struct {
	Title     string         `json:"title"`
	Subject   string         `json:"subject"`
	Questions []seedQuestion `json:"questions"`
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var quizzes []seedQuiz
	if err := json.Unmarshal(byteValue, &quizzes); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	for _, q := range quizzes {
		if err := seedOneQuiz(ctx, db, q); err != nil {
			log.Error("Error seeding quiz, transaction rolled back",
				zap.String("title", q.Title), zap.Error(err))
			continue
		}
		log.Info("Seeded quiz",
			zap.String("title", q.Title),
			zap.Int("questions", len(q.Questions)))
	}
	log.Info("Quiz seeding completed")
}

// seedOneQuiz inserts a quiz and its questions in one transaction. A quiz
// with the same title and subject already present is skipped.
func seedOneQuiz(ctx context.Context, db *sqlx.DB, q seedQuiz) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM quizzes WHERE title = ? AND subject = ?", q.Title, q.Subject); err != nil {
		return fmt.Errorf("check existing quiz: %w", err)
	}
	if existing > 0 {
		return nil
	}

	quizID := util.NewULID()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO quizzes (id, title, subject) VALUES (?, ?, ?)",
		quizID, q.Title, q.Subject); err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}

	for _, question := range q.Questions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (id, quiz_id, question_text, option_a, option_b, option_c, option_d, correct_answer)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			util.NewULID(), quizID, question.QuestionText,
			question.OptionA, question.OptionB, question.OptionC, question.OptionD,
			question.CorrectAnswer); err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
	}

	return tx.Commit()
}
