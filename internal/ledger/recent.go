package ledger

import (
	"strings"

	"github.com/pageza/mixmaster/backend/internal/model"
)

const (
	MaxRecentViews    = 10
	MaxRecentSearches = 8
)

// RecentViews holds recipe snapshots, most recently opened first.
type RecentViews []model.Recipe

// Record moves r to the front, dropping any older view of the same id.
func (v RecentViews) Record(r model.Recipe) RecentViews {
	out := make(RecentViews, 0, MaxRecentViews)
	out = append(out, r)
	for _, prev := range v {
		if len(out) == MaxRecentViews {
			break
		}
		if prev.ID != r.ID {
			out = append(out, prev)
		}
	}
	return out
}

// RecentSearches holds search text, most recent first.
type RecentSearches []string

// Record moves text to the front. Blank text leaves the list as is.
func (s RecentSearches) Record(text string) RecentSearches {
	if strings.TrimSpace(text) == "" {
		return s
	}
	out := make(RecentSearches, 0, MaxRecentSearches)
	out = append(out, text)
	for _, prev := range s {
		if len(out) == MaxRecentSearches {
			break
		}
		if prev != text {
			out = append(out, prev)
		}
	}
	return out
}
