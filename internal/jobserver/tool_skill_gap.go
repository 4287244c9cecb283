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

func registerSkillGap(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gap",
		Description: "Compare a resume against a job description. Returns matched skills, missing skills with priority (high/medium/low), learning time estimates and resources, extra skills, per-category coverage, a 0-100 match score and ordered recommendations. Deterministic; no LLM involved.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SkillGapInput) (*mcp.CallToolResult, *signals.AnalysisResult, error) {
		result, err := analyzeSkillGap(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

func analyzeSkillGap(ctx context.Context, input engine.SkillGapInput) (*signals.AnalysisResult, error) {
	if strings.TrimSpace(input.Resume) == "" {
		return nil, errors.New("resume is required")
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		return nil, errors.New("job_description is required")
	}
	sel, err := toolutil.ResolveSelector(input.Catalog, engine.Cfg.GapCatalog)
	if err != nil {
		return nil, fmt.Errorf("skill_gap: %w", err)
	}
	resume := toolutil.PrepareText(input.Resume)
	job := toolutil.PrepareText(input.JobDescription)

	res := run(ctx, "skill_gap", signals.ModeSkillsGap, sel, func() signals.AnalysisResult {
		return signals.AnalyzeTwoTexts(resume.Text, job.Text, sel)
	}, resume.Text, job.Text)
	return &res, nil
}
