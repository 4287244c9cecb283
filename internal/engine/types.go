package engine

import "github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"

// --- Output types (JSON responses) ---

// CategoryInfo describes one category of a table.
type CategoryInfo struct {
	Name    string   `json:"name"`
	Count   int      `json:"count"`
	Entries []string `json:"entries,omitempty"`
}

// TableInfo describes one compiled catalog table.
type TableInfo struct {
	Name       string         `json:"name"`
	Version    int            `json:"version"`
	Entries    int            `json:"entries"`
	Categories []CategoryInfo `json:"categories"`
}

type CatalogInfoOutput struct {
	Tables    []TableInfo              `json:"tables"`
	Selectors []catalog.Selector       `json:"selectors"`
	Skipped   []catalog.SkippedPattern `json:"skipped"`
}

// DescribeTable summarizes c. Entry names are listed only when withEntries is set.
func DescribeTable(c *catalog.Catalog, withEntries bool) TableInfo {
	info := TableInfo{Name: c.Table(), Version: c.Version(), Entries: c.Len()}
	idx := make(map[string]int)
	for _, name := range c.Categories() {
		idx[name] = len(info.Categories)
		info.Categories = append(info.Categories, CategoryInfo{Name: name})
	}
	for _, e := range c.Entries() {
		ci := &info.Categories[idx[e.Category]]
		ci.Count++
		if withEntries {
			ci.Entries = append(ci.Entries, e.Name)
		}
	}
	return info
}

// DescribeCatalogs summarizes the named embedded tables and collects their skipped patterns.
func DescribeCatalogs(names []string, withEntries bool) CatalogInfoOutput {
	out := CatalogInfoOutput{
		Selectors: catalog.Selectors(),
		Skipped:   []catalog.SkippedPattern{},
	}
	for _, n := range names {
		c := catalog.Table(n)
		out.Tables = append(out.Tables, DescribeTable(c, withEntries))
		out.Skipped = append(out.Skipped, c.Skipped()...)
	}
	return out
}
