package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	LangflowAPIURL  string
	LangflowTimeout time.Duration
	RedisAddr       string
	QuestionsPath   string
	UsersCSVPath    string

	// デバッグ用トグル: 質問を既定スコアで事前入力する
	DebugMode         bool
	DebugDefaultScore int
}

func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		LangflowAPIURL:    getEnv("LANGFLOW_API_URL", "http://localhost:7860/api/v1/run/dd764172-0f56-49d4-a634-bbc2a27a818e"),
		LangflowTimeout:   time.Duration(getEnvInt("LANGFLOW_TIMEOUT_SECONDS", 120)) * time.Second,
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		QuestionsPath:     getEnv("QUESTIONS_PATH", "data/questions.json"),
		UsersCSVPath:      getEnv("USERS_CSV_PATH", "data/users.csv"),
		DebugMode:         getEnvBool("DEBUG_MODE", false),
		DebugDefaultScore: getEnvInt("DEBUG_DEFAULT_SCORE", 3),
	}

	// 事前入力スコアは回答スケールの範囲内に収める
	if cfg.DebugDefaultScore < 1 {
		cfg.DebugDefaultScore = 1
	}
	if cfg.DebugDefaultScore > 5 {
		cfg.DebugDefaultScore = 5
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
