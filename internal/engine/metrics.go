package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
)

// Metrics tracks operational counters across the server.
var metrics struct {
	JobDecodeRequests atomic.Int64
	SkillGapRequests  atomic.Int64
	FindingsEmitted   atomic.Int64
	RedFlags          atomic.Int64
	Gaps              atomic.Int64
	EmptyInputs       atomic.Int64
	HTMLConverted     atomic.Int64
	InputsTruncated   atomic.Int64
	PatternsSkipped   atomic.Int64
	JournalWrites     atomic.Int64
	JournalErrors     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"cache_hits":          hits,
		"cache_misses":        misses,
		"job_decode_requests": metrics.JobDecodeRequests.Load(),
		"skill_gap_requests":  metrics.SkillGapRequests.Load(),
		"findings_emitted":    metrics.FindingsEmitted.Load(),
		"red_flags":           metrics.RedFlags.Load(),
		"gaps":                metrics.Gaps.Load(),
		"empty_inputs":        metrics.EmptyInputs.Load(),
		"html_converted":      metrics.HTMLConverted.Load(),
		"inputs_truncated":    metrics.InputsTruncated.Load(),
		"patterns_skipped":    metrics.PatternsSkipped.Load(),
		"journal_writes":      metrics.JournalWrites.Load(),
		"journal_errors":      metrics.JournalErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"job_decode_requests", "skill_gap_requests",
		"findings_emitted", "red_flags", "gaps", "empty_inputs",
		"html_converted", "inputs_truncated",
		"patterns_skipped",
		"cache_hits", "cache_misses",
		"journal_writes", "journal_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// RecordAnalysis counts one finished analysis.
func RecordAnalysis(res signals.AnalysisResult) {
	switch res.Mode {
	case signals.ModeJobPosting:
		metrics.JobDecodeRequests.Add(1)
	case signals.ModeSkillsGap:
		metrics.SkillGapRequests.Add(1)
	}
	n := res.FindingCount()
	if n == 0 {
		metrics.EmptyInputs.Add(1)
	}
	metrics.FindingsEmitted.Add(int64(n))
	metrics.RedFlags.Add(int64(len(res.RedFlags)))
	metrics.Gaps.Add(int64(len(res.Gaps)))
}

// Incrementors for toolutil and the journal.
func IncrHTMLConverted() { metrics.HTMLConverted.Add(1) }
func IncrInputsTruncated() { metrics.InputsTruncated.Add(1) }
func IncrJournalWrites() { metrics.JournalWrites.Add(1) }
func IncrJournalErrors() { metrics.JournalErrors.Add(1) }
func SetPatternsSkipped(n int) { metrics.PatternsSkipped.Store(int64(n)) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 2*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
