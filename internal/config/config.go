package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Classifier model
	ModelPath     string // Path to the ONNX sequence-classification model
	TokenizerPath string // Path to the HuggingFace tokenizer.json
	OnnxLibPath   string // Optional path to the onnxruntime shared library

	// Gemini API
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Wikipedia
	WikipediaBaseURL string

	// Server
	ListenAddr string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:        getEnv("MODEL_PATH", "models/classifier.onnx"),
		TokenizerPath:    getEnv("TOKENIZER_PATH", "models/tokenizer.json"),
		OnnxLibPath:      getEnv("ONNXRUNTIME_LIB_PATH", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		WikipediaBaseURL: getEnv("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org"),
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.WikipediaBaseURL == "" {
		return fmt.Errorf("WIKIPEDIA_BASE_URL is required")
	}
	return nil
}

// ValidateForClassification checks configuration needed to load the classifier.
func (c *Config) ValidateForClassification() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ModelPath == "" {
		return fmt.Errorf("MODEL_PATH is required for classification")
	}
	if c.TokenizerPath == "" {
		return fmt.Errorf("TOKENIZER_PATH is required for classification")
	}
	return nil
}

// ValidateForRefinement checks configuration needed for the Gemini refinement.
func (c *Config) ValidateForRefinement() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for refinement")
	}
	return nil
}

// ValidateForServe checks all configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.ValidateForClassification(); err != nil {
		return err
	}
	if err := c.ValidateForRefinement(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR is required for serve")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
