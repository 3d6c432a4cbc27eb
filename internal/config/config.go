package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment. It is loaded once at
// process start; there is no hot-reload.
type Config struct {
	OpenAIAPIKey string
	DatabasePath string
	ResumeDir    string
	OutputDir    string
	BackupDir    string

	// Font file used by the word-cloud renderer. The cloud is skipped with
	// a warning when unset or unreadable.
	WordcloudFont string

	Port string

	// Bound on the outbound extraction call.
	LLMTimeout time.Duration

	// Sampling knobs passed through to the chat endpoint.
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

func Load() *Config {
	return &Config{
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		DatabasePath:     getEnv("DATABASE", "database.db"),
		ResumeDir:        getEnv("RESUME_DIR", "data/resume"),
		OutputDir:        getEnv("OUTPUT_DIR", "data/cover_letter"),
		BackupDir:        os.Getenv("BACKUP_DIR"),
		WordcloudFont:    os.Getenv("WORDCLOUD_FONT"),
		Port:             getEnv("PORT", "8080"),
		LLMTimeout:       getDuration("LLM_TIMEOUT", 45*time.Second),
		Temperature:      getFloat("LLM_TEMPERATURE", 1),
		TopP:             getFloat("LLM_TOP_P", 1),
		FrequencyPenalty: getFloat("LLM_FREQUENCY_PENALTY", 0),
		PresencePenalty:  getFloat("LLM_PRESENCE_PENALTY", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
