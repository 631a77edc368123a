package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishika0704/promptforge/internal/config"
	"github.com/rishika0704/promptforge/internal/keywords"
	"github.com/rishika0704/promptforge/internal/wiki"
)

var keywordsEnrich bool

var keywordsCmd = &cobra.Command{
	Use:   "keywords [prompt]",
	Short: "Extract keywords from a prompt",
	Long: `Run only the keyword extraction stage and print the ranked phrases.
With --enrich, also look up related terms on Wikipedia.

Example:
  promptforge keywords --enrich "Explain how photosynthesis works"`,
	Args: cobra.ExactArgs(1),
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().BoolVar(&keywordsEnrich, "enrich", false, "also fetch related terms from Wikipedia")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	extractor := keywords.NewExtractor()
	kws := extractor.Extract(args[0])

	if len(kws) == 0 {
		fmt.Println("No keywords extracted.")
		return nil
	}

	fmt.Println("Keywords:")
	for _, kw := range kws {
		fmt.Printf("  %s\n", kw)
	}

	if !keywordsEnrich {
		return nil
	}

	enricher := wiki.NewEnricher(wiki.NewClient(wiki.ClientConfig{
		BaseURL: cfg.WikipediaBaseURL,
	}))

	terms, err := enricher.Enrich(ctx, kws)
	if err != nil {
		return fmt.Errorf("enrich: %w", err)
	}

	if len(terms) == 0 {
		fmt.Println("\nNo related terms found.")
		return nil
	}

	fmt.Println("\nRelated terms:")
	for _, term := range terms {
		fmt.Printf("  %s\n", term)
	}

	return nil
}
