package config

import "time"

// Default values applied by [StructuredConfig.validate] when the merged
// configuration leaves a sync tunable unset. The roster page size default is
// conservative: it keeps a full page well inside the smallest known terminal
// response buffer.
const (
	DefaultHTTPAddress     = ":8080"
	DefaultRosterPageSize  = int64(10)
	DefaultVisitFetchLimit = int64(50)
	DefaultVisitInterval   = 10 * time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying defaults for
// unset sync tunables.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Sync.RosterPageSize == 0 {
		cfg.Sync.RosterPageSize = DefaultRosterPageSize
	}
	if cfg.Sync.VisitFetchLimit == 0 {
		cfg.Sync.VisitFetchLimit = DefaultVisitFetchLimit
	}
	if cfg.Sync.VisitInterval == 0 {
		cfg.Sync.VisitInterval = DefaultVisitInterval
	}

	if cfg.Sync.RosterPageSize < 0 || cfg.Sync.VisitFetchLimit < 0 || cfg.Sync.VisitInterval < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
