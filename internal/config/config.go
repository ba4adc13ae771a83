package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Groq   GroqConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	// Path is the filesystem location of the SQLite database file.
	Path string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GroqConfig holds settings for the Groq text-completion service.
// Model IDs are per feature so heavier models can be reserved for the
// generation-quality-sensitive paths.
type GroqConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	ModelQA         string
	ModelNotes      string
	ModelQuiz       string
	ModelFeedback   string
	ModelFlashcards string
	ModelInterview  string
	ModelEvaluation string
	ModelVisualizer string
}

type AuthConfig struct {
	JWTSecret      string
	AccessTokenTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Groq: GroqConfig{
			APIKey:          viper.GetString("groq.api_key"),
			BaseURL:         viper.GetString("groq.base_url"),
			Timeout:         viper.GetDuration("groq.timeout") * time.Second,
			ModelQA:         viper.GetString("groq.models.qa"),
			ModelNotes:      viper.GetString("groq.models.notes"),
			ModelQuiz:       viper.GetString("groq.models.quiz"),
			ModelFeedback:   viper.GetString("groq.models.feedback"),
			ModelFlashcards: viper.GetString("groq.models.flashcards"),
			ModelInterview:  viper.GetString("groq.models.interview"),
			ModelEvaluation: viper.GetString("groq.models.evaluation"),
			ModelVisualizer: viper.GetString("groq.models.visualizer"),
		},
		Auth: AuthConfig{
			JWTSecret:      viper.GetString("auth.jwt_secret"),
			AccessTokenTTL: viper.GetDuration("auth.access_token_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if groqKey := os.Getenv("GROQ_API_KEY"); groqKey != "" {
		config.Groq.APIKey = groqKey
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.Auth.JWTSecret = jwtSecret
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.path", "studystreak.db")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.timeout", 20)
	viper.SetDefault("groq.models.qa", "llama-3.1-8b-instant")
	viper.SetDefault("groq.models.notes", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.models.quiz", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.models.feedback", "llama-3.1-8b-instant")
	viper.SetDefault("groq.models.flashcards", "llama-3.1-8b-instant")
	viper.SetDefault("groq.models.interview", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.models.evaluation", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.models.visualizer", "llama-3.3-70b-versatile")
	viper.SetDefault("auth.access_token_ttl", 3600)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}
