// go_jobsignal: job posting and skills gap analysis MCP server.
//
// Exposes four MCP tools: job_decode, skill_gap, analysis_history, catalog_info.
// All analysis is deterministic keyword and context matching; no LLM involved.
package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_jobsignal/internal/engine"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"
	"github.com/anatolykoptev/go_jobsignal/internal/engine/journal"
	"github.com/anatolykoptev/go_jobsignal/internal/jobserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", engine.DefaultPort)
)

func main() {
	initEngine()
	defer engine.CloseCache()

	if j := jobserver.GetJournal(); j != nil {
		defer j.Close()
	}

	slog.Info("starting go_jobsignal",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_jobsignal",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", len(jobserver.ToolNames)))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_jobsignal",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		MaxInputChars:  env.Int("MAX_INPUT_CHARS", engine.DefaultMaxInputChars),
		JournalPath:    env.Str("JOURNAL_PATH", ""),
		DefaultCatalog: selector("DEFAULT_CATALOG", catalog.JobSignals),
		GapCatalog:     selector("GAP_CATALOG", catalog.SkillTaxonomy),
		LogLevel:       env.Str("LOG_LEVEL", "info"),
	}
	if strings.EqualFold(c.LogLevel, "debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	engine.Init(c)

	// Compile all tables up front so bad patterns show in the startup log.
	for _, name := range catalog.TableNames() {
		cat := catalog.Table(name)
		slog.Debug("catalog loaded", slog.String("table", name), slog.Int("version", cat.Version()), slog.Int("entries", cat.Len()))
	}
	// Each skipped pattern is already logged by the catalog loader.
	skipped := catalog.AllSkipped()
	if len(skipped) > 0 {
		slog.Info("catalogs loaded with skipped patterns", slog.Int("skipped", len(skipped)))
	}
	engine.SetPatternsSkipped(len(skipped))

	engine.InitCache(engine.CacheConfig{
		RedisURL:        env.Str("REDIS_URL", ""),
		TTL:             env.Duration("CACHE_TTL", 30*time.Minute),
		MaxEntries:      env.Int("CACHE_MAX_ENTRIES", 500),
		CleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
	})

	// Analysis journal (SQLite). Optional.
	if c.JournalPath != "" {
		j, err := journal.Open(c.JournalPath)
		if err != nil {
			slog.Warn("journal init failed, history disabled", slog.Any("error", err))
		} else {
			jobserver.SetJournal(j)
			slog.Info("journal initialized", slog.String("path", j.Path()))
		}
	}
}

func selector(key string, def catalog.Selector) catalog.Selector {
	name := env.Str(key, "")
	if name == "" {
		return def
	}
	sel, err := catalog.ParseSelector(name)
	if err != nil {
		slog.Warn("invalid catalog setting, using default", slog.String("env", key), slog.Any("error", err))
		return def
	}
	return sel
}
