// Package directory provides window directories that do not depend on a
// running compositor.
package directory

import (
	"context"
	"strings"

	"github.com/rbright/windowcaster/internal/config"
	"github.com/rbright/windowcaster/internal/wire"
)

// Static serves a fixed window list from configuration. Untitled entries are
// treated like invisible windows: never listed, never valid.
type Static struct {
	entries []wire.WindowEntry
}

// NewStatic builds a directory from configured windows, preserving order.
func NewStatic(windows []config.StaticWindow) *Static {
	entries := make([]wire.WindowEntry, 0, len(windows))
	for _, window := range windows {
		title := strings.TrimSpace(window.Title)
		if title == "" {
			continue
		}
		entries = append(entries, wire.WindowEntry{
			Handle:    window.Handle,
			Title:     title,
			ClassName: strings.TrimSpace(window.ClassName),
		})
	}
	return &Static{entries: entries}
}

// Enumerate returns a copy of the configured windows.
func (s *Static) Enumerate(context.Context) ([]wire.WindowEntry, error) {
	out := make([]wire.WindowEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// IsValid reports whether handle is one of the configured windows.
func (s *Static) IsValid(_ context.Context, handle uint64) bool {
	for _, entry := range s.entries {
		if entry.Handle == handle {
			return true
		}
	}
	return false
}
