package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultBaseURL = "https://en.wikipedia.org"
	summaryPath    = "/api/rest_v1/page/summary/%s"
	htmlPath       = "/api/rest_v1/page/html/%s"

	// Wikimedia asks API clients to identify themselves.
	userAgent = "promptforge/1.0 (https://github.com/rishika0704/promptforge)"
)

// boilerplateHeadings are structural section headings, not topical ones.
var boilerplateHeadings = map[string]struct{}{
	"Overview":        {},
	"Contents":        {},
	"See also":        {},
	"References":      {},
	"External links":  {},
	"Further reading": {},
}

// Client is a client for the Wikipedia REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientConfig holds configuration for the Wikipedia client.
type ClientConfig struct {
	BaseURL string
}

// NewClient creates a new Wikipedia client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// pageSummary is the REST page summary response.
type pageSummary struct {
	Title       string `json:"title"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// ResolvePage checks whether a page exists for the keyword and returns its
// canonical URL. A missing page is a normal empty result, not an error.
func (c *Client) ResolvePage(ctx context.Context, keyword string) (string, bool, error) {
	reqURL := c.baseURL + fmt.Sprintf(summaryPath, pageTitle(keyword))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	var summary pageSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", false, fmt.Errorf("decode summary: %w", err)
	}

	pageURL := summary.ContentURLs.Desktop.Page
	if pageURL == "" {
		pageURL = c.baseURL + "/wiki/" + pageTitle(keyword)
	}

	return pageURL, true, nil
}

// Headings fetches the rendered page for the keyword and extracts its
// second-level section headings, dropping structural boilerplate.
func (c *Client) Headings(ctx context.Context, keyword string) ([]string, error) {
	reqURL := c.baseURL + fmt.Sprintf(htmlPath, pageTitle(keyword))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var headings []string
	doc.Find("h2").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if _, boilerplate := boilerplateHeadings[text]; boilerplate {
			return
		}
		headings = append(headings, text)
	})

	return headings, nil
}

// pageTitle converts a keyword into a Wikipedia page title path segment.
func pageTitle(keyword string) string {
	title := strings.ReplaceAll(strings.TrimSpace(keyword), " ", "_")
	return url.PathEscape(title)
}
