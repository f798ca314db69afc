// Package i18n holds the display text of the passport in Japanese, English
// and Portuguese. Records never store labels: views look them up here by
// category id and stable option key at render time.
package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/ospassport/internal/common"
	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	Japanese   Lang = "ja"
	English    Lang = "en"
	Portuguese Lang = "pt"
)

// Languages lists the display languages in menu order.
var Languages = []Lang{Japanese, English, Portuguese}

var matcher = language.NewMatcher([]language.Tag{
	language.Japanese,
	language.English,
	language.Portuguese,
})

// ParseLanguage maps a language tag or POSIX locale ("pt-BR", "en_US.UTF-8",
// "ja") to a supported display language.
func ParseLanguage(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownLanguage, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownLanguage, s)
	}
	return Languages[idx], nil
}

// SpeechLocale is the recognition locale used for dictation in language l.
func SpeechLocale(l Lang) string {
	switch l {
	case English:
		return "en-US"
	case Portuguese:
		return "pt-BR"
	default:
		return "ja-JP"
	}
}

// FormatDate renders t the way a browser formats a short local date in l.
func FormatDate(l Lang, t time.Time) string {
	switch l {
	case English:
		return t.Format("1/2/2006")
	case Portuguese:
		return t.Format("02/01/2006")
	default:
		return t.Format("2006/1/2")
	}
}
