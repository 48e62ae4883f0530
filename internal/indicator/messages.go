package indicator

import (
	"fmt"
	"os"
	"strings"
)

type locale string

const (
	localeEnglish locale = "en"
)

type messages struct {
	connectedFormat string
	evictedFormat   string
}

func (m messages) connected(remote string) string {
	return fmt.Sprintf(m.connectedFormat, remote)
}

func (m messages) evicted(remote string) string {
	return fmt.Sprintf(m.evictedFormat, remote)
}

func indicatorMessagesFromEnv() messages {
	return indicatorMessages(resolveLocale(os.Getenv("LANG")))
}

func resolveLocale(raw string) locale {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(raw, "en") {
		return localeEnglish
	}
	return localeEnglish
}

func indicatorMessages(tag locale) messages {
	switch tag {
	case localeEnglish:
		fallthrough
	default:
		return messages{
			connectedFormat: "Client connected: %s",
			evictedFormat:   "Client evicted: %s",
		}
	}
}
