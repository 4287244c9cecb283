package engine

import "github.com/anatolykoptev/go_jobsignal/internal/engine/catalog"

// Config holds all engine configuration, injected from main.
type Config struct {
	MaxInputChars  int              // runes kept from each input text; 0 = unlimited
	JournalPath    string           // SQLite file for the analysis journal; empty = disabled
	DefaultCatalog catalog.Selector // skill table for job_decode when the caller names none
	GapCatalog     catalog.Selector // skill table for skill_gap when the caller names none
	LogLevel       string
}

// Default limits.
const (
	DefaultMaxInputChars = 20000
	DefaultPort          = "8892"
)

var cfg = Config{
	MaxInputChars:  DefaultMaxInputChars,
	DefaultCatalog: catalog.JobSignals,
	GapCatalog:     catalog.SkillTaxonomy,
}

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Unset catalog selectors keep their defaults.
func Init(c Config) {
	if !c.DefaultCatalog.Valid() {
		c.DefaultCatalog = catalog.JobSignals
	}
	if !c.GapCatalog.Valid() {
		c.GapCatalog = catalog.SkillTaxonomy
	}
	if c.MaxInputChars < 0 {
		c.MaxInputChars = 0
	}
	cfg = c
	Cfg = &cfg
}
