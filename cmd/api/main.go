package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/adapter"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/adapter/textgen"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/cache"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/database"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/handler"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/middleware"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/repository"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its outcome and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	groqClient, err := textgen.NewGroqClient(cfg.Groq)
	if err != nil {
		appLogger.Fatal("Failed to create Groq client", zap.Error(err))
	}

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	badgeRepository := repository.NewSQLXBadgeRepository(db)
	scheduleRepository := repository.NewSQLXScheduleRepository(db)
	postRepository := repository.NewSQLXPostRepository(db)
	interviewRepository := repository.NewSQLXInterviewRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	badgeService := service.NewBadgeService(badgeRepository, userRepository, attemptRepository, postRepository)
	authService := service.NewAuthService(
		userRepository, attemptRepository, scheduleRepository, postRepository,
		badgeRepository, interviewRepository, badgeService, txManager, cacheAdapter, cfg.Auth,
	)
	statsService := service.NewStatsService(attemptRepository, groqClient, cfg.Groq)
	quizService := service.NewQuizService(quizRepository, attemptRepository, userRepository, badgeService, txManager)
	userService := service.NewUserService(userRepository, attemptRepository, scheduleRepository, interviewRepository, badgeService, statsService)
	scheduleService := service.NewScheduleService(scheduleRepository, userRepository, badgeService)
	postService := service.NewPostService(postRepository, userRepository, badgeService)
	plannerService := service.NewPlannerService(attemptRepository, nil)
	studyGenService := service.NewStudyGenService(groqClient, cfg.Groq)
	interviewService := service.NewInterviewService(interviewRepository, groqClient, cfg.Groq)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService)
	studyGenHandler := handler.NewStudyGenHandler(studyGenService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	postHandler := handler.NewPostHandler(postService)
	profileHandler := handler.NewProfileHandler(userService, statsService, badgeService, plannerService)
	interviewHandler := handler.NewInterviewHandler(interviewService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	protected := middleware.Protected(authService)

	// User routes
	userGroup := apiGroup.Group("/users", protected)
	userGroup.Get("/me", profileHandler.GetProfile)
	userGroup.Get("/me/dashboard", profileHandler.GetDashboard)
	userGroup.Get("/me/stats", profileHandler.GetStats)
	userGroup.Get("/me/heatmap", profileHandler.GetHeatmap)
	userGroup.Get("/me/revision-plan", profileHandler.GetRevisionPlan)
	userGroup.Get("/me/badges", profileHandler.ListBadges)
	userGroup.Put("/me/exam-group", profileHandler.ChangeExamGroup)
	userGroup.Delete("/me", authHandler.DeleteAccount)

	// Static quiz routes
	quizGroup := apiGroup.Group("/quizzes", protected)
	quizGroup.Get("/", quizHandler.ListQuizzes)
	quizGroup.Get("/:id", quizHandler.GetQuiz)
	quizGroup.Post("/:id/submit", quizHandler.SubmitQuiz)

	// AI study tools
	aiGroup := apiGroup.Group("/ai", protected)
	aiGroup.Post("/doubt", studyGenHandler.AnswerDoubt)
	aiGroup.Post("/notes", studyGenHandler.GenerateNotes)
	aiGroup.Post("/quiz", studyGenHandler.GenerateQuiz)
	aiGroup.Post("/quiz/submit", quizHandler.SubmitAIQuiz)
	aiGroup.Post("/flashcards", studyGenHandler.GenerateFlashcards)
	aiGroup.Post("/diagram", studyGenHandler.GenerateDiagram)

	// Schedule routes
	scheduleGroup := apiGroup.Group("/schedule", protected)
	scheduleGroup.Post("/tasks", scheduleHandler.CreateTask)
	scheduleGroup.Get("/tasks", scheduleHandler.ListTasks)
	scheduleGroup.Put("/tasks/:id/toggle", scheduleHandler.ToggleTask)
	scheduleGroup.Delete("/tasks/:id", scheduleHandler.DeleteTask)

	// Community routes
	postGroup := apiGroup.Group("/posts", protected)
	postGroup.Post("/", postHandler.CreatePost)
	postGroup.Get("/", postHandler.GetChannelPosts)
	postGroup.Get("/:id/replies", postHandler.GetReplies)
	postGroup.Delete("/:id", postHandler.DeletePost)

	// Interview routes
	interviewGroup := apiGroup.Group("/interview", protected)
	interviewGroup.Post("/turn", interviewHandler.NextTurn)
	interviewGroup.Post("/evaluate", interviewHandler.Evaluate)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
