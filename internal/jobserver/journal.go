package jobserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/journal"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
)

// Package-level journal, set from main.go. nil = journaling disabled.
var journalDB *journal.Journal

// SetJournal sets the package-level journal instance.
func SetJournal(j *journal.Journal) { journalDB = j }

// GetJournal returns the package-level journal instance (may be nil).
func GetJournal() *journal.Journal { return journalDB }

// finish counts res and writes it to the journal when one is configured.
// Journal failures are logged, never returned to the caller.
func finish(ctx context.Context, res signals.AnalysisResult, texts ...string) {
	engine.RecordAnalysis(res)
	slog.Debug("analysis done",
		slog.String("mode", string(res.Mode)),
		slog.String("catalog", string(res.Catalog)),
		slog.Int("score", res.Score),
		slog.Int("findings", res.FindingCount()),
	)
	if journalDB == nil {
		return
	}
	if _, err := journalDB.Record(ctx, res, texts...); err != nil {
		engine.IncrJournalErrors()
		slog.Warn("journal write failed", slog.Any("error", err))
		return
	}
	engine.IncrJournalWrites()
}
