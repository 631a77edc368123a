package refiner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rishika0704/promptforge/internal/classifier"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestRefiner_BuildManual(t *testing.T) {
	r := New(Config{})

	t.Run("explanation without related terms", func(t *testing.T) {
		result := r.BuildManual("Explain how photosynthesis works",
			classifier.LabelExplanation, []string{"photosynthesis"}, nil)
		assert.Equal(t, "Can you explain how photosynthesis work?", result)
	})

	t.Run("explanation with related terms", func(t *testing.T) {
		result := r.BuildManual("Explain how photosynthesis works",
			classifier.LabelExplanation, []string{"photosynthesis"}, []string{"Light-dependent reactions"})
		assert.Equal(t, "Can you explain how photosynthesis work and their relationships to Light-dependent reactions?", result)
	})

	t.Run("description variants", func(t *testing.T) {
		base := r.BuildManual("", classifier.LabelDescription, []string{"black holes"}, nil)
		assert.Equal(t, "Can you describe in detail black holes?", base)

		withRelated := r.BuildManual("", classifier.LabelDescription, []string{"black holes"}, []string{"Event horizon", "Hawking radiation"})
		assert.Equal(t, "Can you describe in detail black holes and their related terms: Event horizon, Hawking radiation?", withRelated)
	})

	t.Run("definition variants", func(t *testing.T) {
		base := r.BuildManual("", classifier.LabelDefinition, []string{"entropy"}, nil)
		assert.Equal(t, "Please provide clear definitions of entropy.", base)

		withRelated := r.BuildManual("", classifier.LabelDefinition, []string{"entropy"}, []string{"Thermodynamics"})
		assert.Equal(t, "Please provide clear definitions of entropy, including Thermodynamics.", withRelated)
	})

	t.Run("comparison variants", func(t *testing.T) {
		base := r.BuildManual("", classifier.LabelComparison, []string{"tcp", "udp"}, nil)
		assert.Equal(t, "Can you compare tcp, udp?", base)

		withRelated := r.BuildManual("", classifier.LabelComparison, []string{"tcp", "udp"}, []string{"Transport layer"})
		assert.Equal(t, "Can you compare tcp, udp with Transport layer?", withRelated)
	})

	t.Run("unrecognized label falls back to generic template", func(t *testing.T) {
		base := r.BuildManual("", classifier.LabelUnrecognized, []string{"quasars"}, nil)
		assert.Equal(t, "Can you elaborate on quasars?", base)

		withRelated := r.BuildManual("", classifier.Label("summary"), []string{"quasars"}, []string{"Active galactic nucleus"})
		assert.Equal(t, "Can you elaborate on quasars, touching on Active galactic nucleus?", withRelated)
	})

	t.Run("output contains every keyword and related term", func(t *testing.T) {
		kws := []string{"neural networks", "backpropagation"}
		related := []string{"Gradient descent", "Activation function"}

		for label := range templatesByLabel {
			result := r.BuildManual("", label, kws, related)
			for _, kw := range kws {
				assert.Contains(t, result, kw, "label %s", label)
			}
			for _, term := range related {
				assert.Contains(t, result, term, "label %s", label)
			}
		}
	})

	t.Run("pure function, same output every call", func(t *testing.T) {
		first := r.BuildManual("prompt", classifier.LabelExplanation, []string{"a", "b"}, []string{"c"})
		second := r.BuildManual("prompt", classifier.LabelExplanation, []string{"a", "b"}, []string{"c"})
		assert.Equal(t, first, second)
	})
}

func TestRefiner_BuildExternal(t *testing.T) {
	t.Run("returns service response verbatim", func(t *testing.T) {
		gen := &stubGenerator{response: "A much better prompt."}
		r := New(Config{Generator: gen})

		result := r.BuildExternal(context.Background(), "Explain photosynthesis", []string{"photosynthesis"})

		assert.Equal(t, "A much better prompt.", result)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("instruction embeds prompt and keywords", func(t *testing.T) {
		gen := &stubGenerator{response: "ok"}
		r := New(Config{Generator: gen})

		r.BuildExternal(context.Background(), "Explain photosynthesis", []string{"photosynthesis", "chloroplast"})

		assert.Contains(t, gen.prompts[0], "Explain photosynthesis")
		assert.Contains(t, gen.prompts[0], "photosynthesis, chloroplast")
		assert.Contains(t, gen.prompts[0], "prompt engineer")
	})

	t.Run("failure converts to fixed error string", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("connection refused")}
		r := New(Config{Generator: gen})

		result := r.BuildExternal(context.Background(), "Explain photosynthesis", []string{"photosynthesis"})

		assert.Equal(t, "Error occurred while contacting the Gemini API.", result)
	})
}
