package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rbright/windowcaster/internal/wire"
)

// FilterWindows keeps entries whose title contains filter, ignoring case. An
// empty filter keeps everything.
func FilterWindows(entries []wire.WindowEntry, filter string) []wire.WindowEntry {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return entries
	}
	out := make([]wire.WindowEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), filter) {
			out = append(out, entry)
		}
	}
	return out
}

// FormatWindow renders one line: handle, class, title.
func FormatWindow(entry wire.WindowEntry) string {
	return fmt.Sprintf("0x%X [%s] - %s", entry.Handle, entry.ClassName, entry.Title)
}

// FormatWindowVerbose renders one labeled block per field.
func FormatWindowVerbose(entry wire.WindowEntry) string {
	return fmt.Sprintf("handle: 0x%X\ntitle:  %s\nclass:  %s\n", entry.Handle, entry.Title, entry.ClassName)
}

// ParseHandle accepts hex ("0x5a1d3e0") or decimal window handles.
func ParseHandle(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("window handle is empty")
	}
	handle, err := strconv.ParseUint(raw, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", raw)
	}
	return handle, nil
}
