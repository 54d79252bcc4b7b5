package operation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// 🔍 ignoreSet matches slash separated relative paths against glob patterns
type ignoreSet struct {
	patterns []string
}

func newIgnoreSet(patterns []string) (*ignoreSet, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, invalid("ignore pattern", fmt.Sprintf("bad glob %q", p))
		}
	}
	return &ignoreSet{patterns: patterns}, nil
}

// match checks both the whole relative path and its base name, so "*.tmp"
// catches files at any depth
func (s *ignoreSet) match(ctx context.Context, rel string) bool {
	if s == nil || len(s.patterns) == 0 {
		return false
	}

	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pattern := range s.patterns {
		if doublestar.MatchUnvalidated(pattern, rel) || doublestar.MatchUnvalidated(pattern, base) {
			zerolog.Ctx(ctx).Debug().Str("path", rel).Str("pattern", pattern).Msg("path ignored by pattern")
			return true
		}
	}
	return false
}
