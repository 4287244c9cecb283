// Package toolutil prepares raw tool input for analysis. It is shared by the
// MCP server and the command-line tool.
package toolutil

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
)

// Prepared is an input text ready for the signal engine.
type Prepared struct {
	Text          string
	HTML          bool // input was markup and has been converted
	JobPosting    bool // text came from an embedded schema.org JobPosting
	Truncated     bool
	OriginalChars int
}

// PrepareText converts HTML input to markdown and applies the input size limit.
// Plain text passes through unchanged apart from truncation.
func PrepareText(raw string) Prepared {
	p := Prepared{Text: raw, OriginalChars: utf8.RuneCountInString(raw)}
	if engine.LooksLikeHTML(raw) {
		p.Text, p.JobPosting = htmlToText(raw)
		p.HTML = true
		engine.IncrHTMLConverted()
	}
	p.Text, p.Truncated = engine.LimitInput(p.Text)
	if p.Truncated {
		engine.IncrInputsTruncated()
		slog.Debug("input truncated", slog.Int("chars", p.OriginalChars), slog.Int("limit", engine.Cfg.MaxInputChars))
	}
	return p
}

// htmlToText prefers the JobPosting JSON-LD block of a full job page, then the
// visible page body.
func htmlToText(raw string) (string, bool) {
	if jp, ok := extractJobPosting(raw); ok {
		var parts []string
		if jp.Title != "" {
			parts = append(parts, jp.Title)
		}
		if jp.Description != "" {
			parts = append(parts, convertHTML(jp.Description))
		}
		if jp.Salary != "" {
			parts = append(parts, jp.Salary)
		}
		return strings.Join(parts, "\n\n"), true
	}
	return convertHTML(visibleHTML(raw)), false
}

func convertHTML(html string) string {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil || strings.TrimSpace(md) == "" {
		if err != nil {
			slog.Debug("html-to-markdown failed, stripping tags", slog.Any("error", err))
		}
		return engine.CleanHTML(html)
	}
	return strings.TrimSpace(md)
}

// ResolveSelector maps a catalog name to a selector. Empty means def.
func ResolveSelector(name string, def catalog.Selector) (catalog.Selector, error) {
	if strings.TrimSpace(name) == "" {
		return def, nil
	}
	return catalog.ParseSelector(name)
}
