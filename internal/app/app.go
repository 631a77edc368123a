package app

import (
	"fmt"

	"github.com/rishika0704/promptforge/internal/classifier"
	"github.com/rishika0704/promptforge/internal/config"
	"github.com/rishika0704/promptforge/internal/keywords"
	"github.com/rishika0704/promptforge/internal/pipeline"
	"github.com/rishika0704/promptforge/internal/refiner"
	"github.com/rishika0704/promptforge/internal/wiki"
)

// App is the main application container holding all dependencies.
type App struct {
	Config     *config.Config
	Classifier *classifier.Classifier
	Pipeline   *pipeline.Pipeline
}

// New creates a new application instance with all dependencies wired up.
// The classification model is loaded here so misconfiguration fails fast
// at startup instead of on the first request.
func New(cfg *config.Config) (*App, error) {
	cls, err := classifier.New(classifier.Config{
		ModelPath:     cfg.ModelPath,
		TokenizerPath: cfg.TokenizerPath,
		OnnxLibPath:   cfg.OnnxLibPath,
	})
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}

	wikiClient := wiki.NewClient(wiki.ClientConfig{
		BaseURL: cfg.WikipediaBaseURL,
	})

	gemini := refiner.NewGeminiClient(refiner.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})

	p := pipeline.New(pipeline.Config{
		Classifier: cls,
		Extractor:  keywords.NewExtractor(),
		Enricher:   wiki.NewEnricher(wikiClient),
		Refiner:    refiner.New(refiner.Config{Generator: gemini}),
	})

	return &App{
		Config:     cfg,
		Classifier: cls,
		Pipeline:   p,
	}, nil
}

// Close releases the loaded model resources.
func (a *App) Close() error {
	if a.Classifier != nil {
		return a.Classifier.Close()
	}
	return nil
}
