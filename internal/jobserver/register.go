package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolNames lists the tools RegisterTools adds, in registration order.
var ToolNames = []string{"job_decode", "skill_gap", "analysis_history", "catalog_info"}

// RegisterTools registers the signal-analysis tools on the given MCP server:
// job_decode, skill_gap, analysis_history, catalog_info.
func RegisterTools(server *mcp.Server) {
	registerJobDecode(server)
	registerSkillGap(server)
	registerAnalysisHistory(server)
	registerCatalogInfo(server)
}
