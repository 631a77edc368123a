package wiki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photosynthesisHTML = `<!DOCTYPE html>
<html><body>
<section><h2>Light-dependent reactions</h2><p>...</p></section>
<section><h2>Calvin cycle</h2><p>...</p></section>
<section><h2>See also</h2><ul></ul></section>
<section><h2>References</h2><ul></ul></section>
<section><h2>External links</h2><ul></ul></section>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/rest_v1/page/summary/Photosynthesis", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"title": "Photosynthesis",
			"content_urls": map[string]any{
				"desktop": map[string]any{
					"page": "https://en.wikipedia.org/wiki/Photosynthesis",
				},
			},
		})
	})
	mux.HandleFunc("/api/rest_v1/page/html/Photosynthesis", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(photosynthesisHTML))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_ResolvePage(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(ClientConfig{BaseURL: server.URL})

	t.Run("existing page resolves", func(t *testing.T) {
		pageURL, exists, err := client.ResolvePage(context.Background(), "Photosynthesis")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Photosynthesis", pageURL)
	})

	t.Run("keyword with spaces maps to underscored title", func(t *testing.T) {
		_, exists, err := client.ResolvePage(context.Background(), "no such page")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing page is not an error", func(t *testing.T) {
		_, exists, err := client.ResolvePage(context.Background(), "Zxqwv")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestClient_Headings(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(ClientConfig{BaseURL: server.URL})

	t.Run("extracts topical h2 headings", func(t *testing.T) {
		headings, err := client.Headings(context.Background(), "Photosynthesis")
		require.NoError(t, err)
		assert.Equal(t, []string{"Light-dependent reactions", "Calvin cycle"}, headings)
	})

	t.Run("boilerplate headings are dropped", func(t *testing.T) {
		headings, err := client.Headings(context.Background(), "Photosynthesis")
		require.NoError(t, err)
		for _, boilerplate := range []string{"See also", "References", "External links", "Overview", "Contents", "Further reading"} {
			assert.NotContains(t, headings, boilerplate)
		}
	})

	t.Run("server error propagates", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failing.Close()

		c := NewClient(ClientConfig{BaseURL: failing.URL})
		_, err := c.Headings(context.Background(), "Photosynthesis")
		assert.Error(t, err)
	})
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		keyword  string
		expected string
	}{
		{"Photosynthesis", "Photosynthesis"},
		{"light dependent reactions", "light_dependent_reactions"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pageTitle(tt.keyword))
	}
}
