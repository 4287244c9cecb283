package jobserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
	"github.com/anatolykoptev/go_jobsignal/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobDecode(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_decode",
		Description: "Decode a job posting without an LLM. Detects required vs nice-to-have skills, experience level, salary transparency, red flags (e.g. rockstar, unpaid trial, commission only) and benefits, then returns a 0-100 transparency score with ordered recommendations. Accepts plain text or the HTML of a job page (schema.org JobPosting data is used when present).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobDecodeInput) (*mcp.CallToolResult, *signals.AnalysisResult, error) {
		result, err := decodeJob(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func decodeJob(ctx context.Context, input engine.JobDecodeInput) (*signals.AnalysisResult, error) {
	if strings.TrimSpace(input.JobText) == "" {
		return nil, errors.New("job_text is required")
	}
	sel, err := toolutil.ResolveSelector(input.Catalog, engine.Cfg.DefaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("job_decode: %w", err)
	}
	text := toolutil.PrepareText(input.JobText)

	res := run(ctx, "job_decode", signals.ModeJobPosting, sel, func() signals.AnalysisResult {
		return signals.AnalyzeSingleText(text.Text, sel)
	}, text.Text)
	return &res, nil
}
