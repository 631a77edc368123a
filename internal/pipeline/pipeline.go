package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rishika0704/promptforge/internal/classifier"
)

// Classifier assigns a rhetorical label to prompt text.
type Classifier interface {
	Classify(ctx context.Context, text string) (classifier.Label, error)
}

// KeywordExtractor produces ranked keyword phrases from prompt text.
type KeywordExtractor interface {
	Extract(text string) []string
}

// Enricher discovers related terms for a list of keywords.
type Enricher interface {
	Enrich(ctx context.Context, kws []string) ([]string, error)
}

// Refiner builds both refined versions of a prompt.
type Refiner interface {
	BuildManual(prompt string, label classifier.Label, kws, relatedTerms []string) string
	BuildExternal(ctx context.Context, prompt string, kws []string) string
}

// Result holds both refined versions of a prompt.
type Result struct {
	Manual   string `json:"manual"`
	External string `json:"external"`
}

// Pipeline sequences classification, keyword extraction, enrichment, and
// refinement for a single prompt. Stages run strictly in order; there is no
// concurrency, no retries, and no state shared across requests.
type Pipeline struct {
	classifier Classifier
	extractor  KeywordExtractor
	enricher   Enricher
	refiner    Refiner
}

// Config holds the pipeline's injected services.
type Config struct {
	Classifier Classifier
	Extractor  KeywordExtractor
	Enricher   Enricher
	Refiner    Refiner
}

// New creates a new Pipeline.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		classifier: cfg.Classifier,
		extractor:  cfg.Extractor,
		enricher:   cfg.Enricher,
		refiner:    cfg.Refiner,
	}
}

// Process refines a prompt and returns both refinements. Classification
// failure is request-fatal; enrichment is skipped entirely when extraction
// yields no keywords; the external refinement never fails the request.
func (p *Pipeline) Process(ctx context.Context, prompt string) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	label, err := p.classifier.Classify(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("classify prompt: %w", err)
	}

	kws := p.extractor.Extract(prompt)

	var relatedTerms []string
	if len(kws) > 0 {
		relatedTerms, err = p.enricher.Enrich(ctx, kws)
		if err != nil {
			return nil, fmt.Errorf("enrich keywords: %w", err)
		}
	}

	manual := p.refiner.BuildManual(prompt, label, kws, relatedTerms)
	external := p.refiner.BuildExternal(ctx, prompt, kws)

	slog.Info("processed prompt",
		"label", label,
		"keywords", len(kws),
		"related_terms", len(relatedTerms),
	)

	return &Result{Manual: manual, External: external}, nil
}
