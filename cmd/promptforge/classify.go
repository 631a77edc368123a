package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishika0704/promptforge/internal/classifier"
	"github.com/rishika0704/promptforge/internal/config"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [prompt]",
	Short: "Classify a prompt",
	Long: `Run only the classification stage and print the predicted label.

Example:
  promptforge classify "Explain how photosynthesis works"`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForClassification(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	cls, err := classifier.New(classifier.Config{
		ModelPath:     cfg.ModelPath,
		TokenizerPath: cfg.TokenizerPath,
		OnnxLibPath:   cfg.OnnxLibPath,
	})
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}
	defer cls.Close()

	label, err := cls.Classify(ctx, args[0])
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	fmt.Println(label)
	return nil
}
