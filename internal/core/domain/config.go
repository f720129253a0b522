package domain

import (
	"path/filepath"
	"time"
)

const (
	// ExplorerDirName is the name of the local metadata directory.
	ExplorerDirName = ".explorer"

	// StateFileName is the name of the store snapshot file.
	StateFileName = "state.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "explorer.yaml"

	// DefaultAPIURL is the public Stacks mainnet API.
	DefaultAPIURL = "https://api.mainnet.hiro.so"

	// DefaultAPITimeout bounds a single API request.
	DefaultAPITimeout = 30 * time.Second

	// DefaultCacheSize is the number of entities the fetch cache keeps.
	DefaultCacheSize = 512

	// DefaultPageSize is the account transaction page size.
	DefaultPageSize = 30

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Config is the resolved explorer configuration.
type Config struct {
	APIURL     string
	APITimeout time.Duration
	CacheSize  int
	PageSize   int
	StatePath  string
	JSONLogs   bool
}

// DefaultStatePath returns the default path of the store snapshot.
// It joins .explorer and state.json.
func DefaultStatePath() string {
	return filepath.Join(ExplorerDirName, StateFileName)
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		APIURL:     DefaultAPIURL,
		APITimeout: DefaultAPITimeout,
		CacheSize:  DefaultCacheSize,
		PageSize:   DefaultPageSize,
		StatePath:  DefaultStatePath(),
	}
}
