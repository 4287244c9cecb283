package jobserver

import (
	"context"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/journal"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/signals"
)

// run returns the cached result for texts when present, otherwise runs fn and
// caches its result. Either way the result is counted and journaled.
func run(ctx context.Context, op string, mode signals.Mode, sel catalog.Selector, fn func() signals.AnalysisResult, texts ...string) signals.AnalysisResult {
	key := engine.CacheKey(string(mode), string(sel), catalogVersions(), journal.HashInput(texts...))

	res, hit := engine.CacheLoad[signals.AnalysisResult](ctx, key)
	if !hit {
		_ = engine.TrackOperation(ctx, op, func(context.Context) error {
			res = fn()
			return nil
		})
		engine.CacheStore(ctx, key, res)
	}
	finish(ctx, res, texts...)
	return res
}

// catalogVersions lists name=version for every embedded table. Experience, salary and
// red-flag detection read tables other than the skill one, so all of them key the cache.
func catalogVersions() string {
	names := catalog.TableNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "=" + strconv.Itoa(catalog.Table(n).Version())
	}
	return strings.Join(parts, ",")
}
