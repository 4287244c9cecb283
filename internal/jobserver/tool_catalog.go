package jobserver

import (
	"context"
	"fmt"
	"slices"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerCatalogInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_info",
		Description: "Describe the built-in term catalogs: table versions, entry counts per category, optional entry names, valid catalog selectors for job_decode/skill_gap, and any patterns skipped at load time.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.CatalogInfoInput) (*mcp.CallToolResult, *engine.CatalogInfoOutput, error) {
		result, err := describeCatalogs(input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func describeCatalogs(input engine.CatalogInfoInput) (*engine.CatalogInfoOutput, error) {
	names := catalog.TableNames()
	if input.Catalog != "" {
		name := input.Catalog
		if sel, err := catalog.ParseSelector(name); err == nil {
			name = sel.SkillTable()
		}
		if !slices.Contains(names, name) {
			return nil, fmt.Errorf("unknown catalog %q (valid: %v)", input.Catalog, names)
		}
		names = []string{name}
	}

	out := engine.DescribeCatalogs(names, input.Entries)
	return &out, nil
}
