package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/anatolykoptev/go-kit/strutil"
)

var (
	htmlTagRe   = regexp.MustCompile(`<[^>]+>`)
	htmlBlockRe = regexp.MustCompile(`(?i)<(?:p|div|li|br|h[1-6]|tr)\b[^>]*>`)
	htmlHintRe  = regexp.MustCompile(`(?i)<(?:html|body|div|p|ul|ol|li|br|span|h[1-6]|strong|em|b|table)\b[^>]*>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// LooksLikeHTML reports whether s carries markup worth converting.
func LooksLikeHTML(s string) bool {
	return htmlHintRe.MatchString(s)
}

// CleanHTML strips HTML tags and trims whitespace. Block tags become line breaks
// so list items and paragraphs stay apart.
func CleanHTML(s string) string {
	s = htmlBlockRe.ReplaceAllString(s, "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// LimitInput applies Cfg.MaxInputChars to s and reports whether it was cut.
func LimitInput(s string) (string, bool) {
	limit := Cfg.MaxInputChars
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	return TruncateRunes(s, limit, ""), true
}
