package toolutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
)

// jobPosting is the subset of schema.org/JobPosting the analyser uses.
type jobPosting struct {
	Title       string
	Description string // HTML
	Salary      string
}

// extractJobPosting finds a JobPosting JSON-LD block in a full job page.
func extractJobPosting(html string) (jobPosting, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return jobPosting{}, false
	}
	var (
		found jobPosting
		ok    bool
	)
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, node := range decodeLD(s.Text()) {
			if isJobPosting(node["@type"]) {
				found, ok = toJobPosting(node), true
				return false
			}
		}
		return true
	})
	return found, ok
}

// decodeLD accepts a single object, an array of objects, or an @graph wrapper.
func decodeLD(raw string) []map[string]any {
	raw = strings.TrimSpace(raw)
	var one map[string]any
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		if graph, ok := one["@graph"].([]any); ok {
			return objects(graph)
		}
		return []map[string]any{one}
	}
	var many []any
	if err := json.Unmarshal([]byte(raw), &many); err == nil {
		return objects(many)
	}
	return nil
}

func objects(items []any) []map[string]any {
	var out []map[string]any
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func isJobPosting(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "JobPosting"
	case []any:
		for _, x := range v {
			if s, ok := x.(string); ok && s == "JobPosting" {
				return true
			}
		}
	}
	return false
}

func toJobPosting(m map[string]any) jobPosting {
	jp := jobPosting{}
	jp.Title, _ = m["title"].(string)
	jp.Description, _ = m["description"].(string)
	if sal, ok := m["baseSalary"].(map[string]any); ok {
		jp.Salary = formatSalary(sal)
	}
	return jp
}

// formatSalary renders a MonetaryAmount as "Salary: 100,000 - 150,000 USD per year".
func formatSalary(m map[string]any) string {
	currency, _ := m["currency"].(string)
	val, ok := m["value"].(map[string]any)
	if !ok {
		if n, ok := m["value"].(float64); ok {
			return strings.TrimSpace(fmt.Sprintf("Salary: %s %s", humanize.Comma(int64(n)), currency))
		}
		return ""
	}
	unit, _ := val["unitText"].(string)
	lo, hasLo := val["minValue"].(float64)
	hi, hasHi := val["maxValue"].(float64)
	single, hasSingle := val["value"].(float64)

	var amount string
	switch {
	case hasLo && hasHi:
		amount = humanize.Comma(int64(lo)) + " - " + humanize.Comma(int64(hi))
	case hasSingle:
		amount = humanize.Comma(int64(single))
	case hasLo:
		amount = humanize.Comma(int64(lo))
	case hasHi:
		amount = humanize.Comma(int64(hi))
	default:
		return ""
	}
	s := "Salary: " + amount
	if currency != "" {
		s += " " + currency
	}
	if unit != "" {
		s += " per " + strings.ToLower(unit)
	}
	return s
}

// visibleHTML drops non-content elements and returns the body markup.
func visibleHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style, noscript, template, svg, nav, footer").Remove()
	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	out, err := sel.Html()
	if err != nil {
		return html
	}
	return out
}
