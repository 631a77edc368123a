package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishika0704/promptforge/internal/app"
	"github.com/rishika0704/promptforge/internal/config"
)

var refineCmd = &cobra.Command{
	Use:   "refine [prompt]",
	Short: "Refine a prompt",
	Long: `Run the full refinement pipeline on a prompt and print both refined
versions.

Example:
  promptforge refine "Explain how photosynthesis works"`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

func init() {
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	prompt := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForClassification(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if err := cfg.ValidateForRefinement(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	result, err := a.Pipeline.Process(ctx, prompt)
	if err != nil {
		return fmt.Errorf("refine: %w", err)
	}

	fmt.Println()
	fmt.Println("=== Refined prompt 1 (manual) ===")
	fmt.Println(result.Manual)
	fmt.Println()
	fmt.Println("=== Refined prompt 2 (Gemini) ===")
	fmt.Println(result.External)

	return nil
}
