package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/daulet/tokenizers"
	ort "github.com/yalue/onnxruntime_go"
)

// maxSequenceLength is the model's fixed input window. Longer inputs are
// truncated, never rejected.
const maxSequenceLength = 512

// Classifier assigns one of the four prompt labels using a local ONNX
// sequence-classification model. The model and tokenizer are loaded once
// and reused for every call; they are never mutated after load.
type Classifier struct {
	tokenizer *tokenizers.Tokenizer
	session   *ort.DynamicAdvancedSession

	// The ONNX session is not safe for concurrent Run calls.
	mu sync.Mutex
}

// Config holds configuration for the classifier.
type Config struct {
	ModelPath     string
	TokenizerPath string
	OnnxLibPath   string // Optional override for the onnxruntime shared library
}

// New loads the tokenizer and model. Errors here are fatal for any mode
// that classifies, so callers should fail fast at startup.
func New(cfg Config) (*Classifier, error) {
	if cfg.OnnxLibPath != "" {
		ort.SetSharedLibraryPath(cfg.OnnxLibPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	tk, err := tokenizers.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		tk.Close()
		return nil, fmt.Errorf("load model: %w", err)
	}

	slog.Info("classifier loaded", "model", cfg.ModelPath, "tokenizer", cfg.TokenizerPath)

	return &Classifier{
		tokenizer: tk,
		session:   session,
	}, nil
}

// Classify assigns a label to the given text. It always returns one of the
// four known labels on success; there is no confidence threshold.
func (c *Classifier) Classify(ctx context.Context, text string) (Label, error) {
	select {
	case <-ctx.Done():
		return LabelUnrecognized, ctx.Err()
	default:
	}

	ids, _ := c.tokenizer.Encode(text, true)
	ids = truncateTokens(ids, maxSequenceLength)
	if len(ids) == 0 {
		return LabelUnrecognized, fmt.Errorf("tokenizer produced no tokens")
	}

	inputIDs := make([]int64, len(ids))
	attentionMask := make([]int64, len(ids))
	for i, id := range ids {
		inputIDs[i] = int64(id)
		attentionMask[i] = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	shape := ort.NewShape(1, int64(len(ids)))
	idTensor, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return LabelUnrecognized, fmt.Errorf("create input tensor: %w", err)
	}
	defer idTensor.Destroy()

	maskTensor, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return LabelUnrecognized, fmt.Errorf("create mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := c.session.Run([]ort.Value{idTensor, maskTensor}, outputs); err != nil {
		return LabelUnrecognized, fmt.Errorf("run inference: %w", err)
	}
	defer outputs[0].Destroy()

	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return LabelUnrecognized, fmt.Errorf("unexpected logits tensor type %T", outputs[0])
	}

	logits := logitsTensor.GetData()
	label := labelFromIndex(argmax(logits))
	slog.Debug("classified prompt", "label", label, "tokens", len(ids))

	return label, nil
}

// Close releases the model session and tokenizer.
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.session != nil {
		err = c.session.Destroy()
		c.session = nil
	}
	if c.tokenizer != nil {
		c.tokenizer.Close()
		c.tokenizer = nil
	}
	return err
}

// truncateTokens limits a token sequence to the model's input window.
func truncateTokens(ids []uint32, limit int) []uint32 {
	if len(ids) <= limit {
		return ids
	}
	return ids[:limit]
}
