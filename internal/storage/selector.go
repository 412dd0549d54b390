package storage

import (
	"fmt"
	"log"
)

// Options configures the ranked tier probe. A tier is skipped when its
// settings are absent (e.g. no Redis address means no Redis tier).
type Options struct {
	// Tier forces a single tier ("sqlite", "mysql", "file", "redis",
	// "memory") instead of probing. Empty means auto-select.
	Tier string

	SQLitePath string
	MySQLDSN   string
	DataDir    string
	Redis      RedisConfig
}

// ProbeResult records the outcome of probing one tier.
type ProbeResult struct {
	Tier  string `json:"tier"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Selection is the result of backend selection: the chosen backend plus the
// probe trail, kept for the admin diagnostics endpoint.
type Selection struct {
	Backend Backend
	Tier    string
	Probed  []ProbeResult
}

// Select probes the ranked tier list once and returns the first backend that
// initializes. Probe failures are logged and recorded, never fatal: the
// memory tier always succeeds, so selection degrades instead of erroring.
func Select(opts Options) (*Selection, error) {
	sel := &Selection{}

	for _, tier := range rankedTiers(opts) {
		backend, err := openTier(tier, opts)
		if err != nil {
			log.Printf("Warning: %s tier unavailable: %v", tier, err)
			sel.Probed = append(sel.Probed, ProbeResult{Tier: tier, Error: err.Error()})
			continue
		}
		if backend == nil {
			// Tier not configured, skip silently.
			continue
		}

		sel.Probed = append(sel.Probed, ProbeResult{Tier: tier, OK: true})
		sel.Backend = backend
		sel.Tier = tier
		return sel, nil
	}

	// Unreachable in practice: the memory tier cannot fail.
	return nil, fmt.Errorf("no storage tier available")
}

// rankedTiers returns the probe order. A forced tier collapses the list to
// that tier alone; memory is kept as the implicit last resort either way.
func rankedTiers(opts Options) []string {
	if opts.Tier != "" && opts.Tier != "auto" {
		return []string{opts.Tier, "memory"}
	}

	tiers := []string{"sqlite"}
	if opts.MySQLDSN != "" {
		tiers = []string{"mysql", "sqlite"}
	}
	return append(tiers, "file", "redis", "memory")
}

func openTier(tier string, opts Options) (Backend, error) {
	switch tier {
	case "sqlite":
		if opts.SQLitePath == "" {
			return nil, nil
		}
		return NewSQLiteBackend(opts.SQLitePath)
	case "mysql":
		if opts.MySQLDSN == "" {
			return nil, nil
		}
		return NewMySQLBackend(opts.MySQLDSN)
	case "file":
		if opts.DataDir == "" {
			return nil, nil
		}
		return NewFileBackend(opts.DataDir)
	case "redis":
		if opts.Redis.Addr == "" {
			return nil, nil
		}
		return NewRedisBackend(opts.Redis)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage tier: %s", tier)
	}
}
