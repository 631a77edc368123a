package refiner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rishika0704/promptforge/internal/classifier"
)

// ExternalErrorMessage replaces the external refinement when the Gemini call
// fails for any reason.
const ExternalErrorMessage = "Error occurred while contacting the Gemini API."

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Refiner builds both refined versions of a prompt: the deterministic
// template-based one and the Gemini-produced one.
type Refiner struct {
	generator Generator
}

// Config holds configuration for the refiner.
type Config struct {
	Generator Generator
}

// New creates a new Refiner.
func New(cfg Config) *Refiner {
	return &Refiner{generator: cfg.Generator}
}

// BuildManual assembles the template-based refinement from the classification,
// keywords, and related terms. It is a pure function of its inputs.
func (r *Refiner) BuildManual(prompt string, label classifier.Label, kws, relatedTerms []string) string {
	tmpl, ok := templatesByLabel[label]
	if !ok {
		tmpl = templatesByLabel[classifier.LabelUnrecognized]
	}

	slog.Debug("building manual refinement",
		"label", label,
		"keywords", len(kws),
		"related_terms", len(relatedTerms),
		"prompt_length", len(prompt),
	)

	joinedKeywords := strings.Join(kws, ", ")
	if len(relatedTerms) == 0 {
		return fmt.Sprintf(tmpl.base, joinedKeywords)
	}

	return fmt.Sprintf(tmpl.withRelated, joinedKeywords, strings.Join(relatedTerms, ", "))
}

// BuildExternal asks Gemini for an improved prompt that preserves the intent
// of the original. On any failure it returns ExternalErrorMessage instead of
// an error; this is the only soft-error boundary in the pipeline.
func (r *Refiner) BuildExternal(ctx context.Context, prompt string, kws []string) string {
	geminiPrompt := fmt.Sprintf(geminiPromptTemplate, prompt, strings.Join(kws, ", "))

	text, err := r.generator.Generate(ctx, geminiPrompt)
	if err != nil {
		slog.Warn("gemini refinement failed", "error", err)
		return ExternalErrorMessage
	}

	return text
}
