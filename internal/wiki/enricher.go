package wiki

import (
	"context"
	"log/slog"
)

// Enricher discovers related terms for keywords from Wikipedia pages.
type Enricher struct {
	client *Client
}

// NewEnricher creates a new enricher backed by the given client.
func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client}
}

// Enrich aggregates related terms across all keywords, deduplicating exact
// matches. A lookup or fetch failure for one keyword contributes nothing and
// does not abort the remaining keywords; only context cancellation does.
// Term order is not part of the contract.
func (e *Enricher) Enrich(ctx context.Context, kws []string) ([]string, error) {
	seen := make(map[string]struct{})
	terms := make([]string, 0)

	for _, keyword := range kws {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		related, err := e.relatedForKeyword(ctx, keyword)
		if err != nil {
			slog.Warn("related-term lookup failed", "keyword", keyword, "error", err)
			continue
		}

		for _, term := range related {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}

	slog.Debug("enriched keywords", "keywords", len(kws), "related_terms", len(terms))
	return terms, nil
}

func (e *Enricher) relatedForKeyword(ctx context.Context, keyword string) ([]string, error) {
	_, exists, err := e.client.ResolvePage(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if !exists {
		// No page for this keyword is a normal empty result.
		return nil, nil
	}

	return e.client.Headings(ctx, keyword)
}
