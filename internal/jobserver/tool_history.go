package jobserver

import (
	"context"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/journal"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAnalysisHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List recent job_decode and skill_gap results from the local journal (SQLite), newest first. Only scores, counts and an input hash are stored, never the texts. Requires JOURNAL_PATH.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.AnalysisHistoryInput) (*mcp.CallToolResult, *journal.ListResult, error) {
		result, err := listHistory(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func listHistory(ctx context.Context, input engine.AnalysisHistoryInput) (*journal.ListResult, error) {
	if journalDB == nil {
		return nil, journal.ErrDisabled
	}
	return journalDB.List(ctx, journal.ListInput{Mode: input.Mode, Limit: input.Limit})
}
