// Package news assembles the finance news feed from a primary source with a
// fallback supplement, de-duplicated by article URL.
package news

import (
	"strings"

	"github.com/neofinance/neofin/pkg/api"
)

// DefaultLimit is how many articles the feed shows
const DefaultLimit = 9

// WithImages drops articles without a usable image URL
func WithImages(articles []api.Article) []api.Article {
	filtered := make([]api.Article, 0, len(articles))
	for _, art := range articles {
		if strings.TrimSpace(art.Image) != "" {
			filtered = append(filtered, art)
		}
	}
	return filtered
}

// Merge supplements primary with fallback articles, skipping URLs already
// seen, capped at limit. Order is primary first, then fallback in order.
func Merge(primary, fallback []api.Article, limit int) []api.Article {
	combined := make([]api.Article, 0, limit)
	seen := make(map[string]bool, limit)

	for _, art := range primary {
		if len(combined) >= limit {
			break
		}
		if seen[art.URL] {
			continue
		}
		combined = append(combined, art)
		seen[art.URL] = true
	}

	for _, art := range fallback {
		if len(combined) >= limit {
			break
		}
		if seen[art.URL] {
			continue
		}
		combined = append(combined, art)
		seen[art.URL] = true
	}

	return combined
}
