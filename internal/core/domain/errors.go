package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownViewKind is returned when a view kind is not one of the known kinds.
	ErrUnknownViewKind = zerr.New("unknown view kind")

	// ErrCycleDetected is returned when a derived node reads itself while computing.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidABI is returned when a contract's abi field is not valid JSON.
	ErrInvalidABI = zerr.New("invalid contract abi")

	// ErrInvalidPrincipal is returned when a contract principal is not of the form ADDRESS.name.
	ErrInvalidPrincipal = zerr.New("invalid contract principal")

	// ErrEntityNotFound is returned when the API has no record for the requested key.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrAPIRequestFailed is returned when a request to the chain API fails.
	ErrAPIRequestFailed = zerr.New("chain api request failed")

	// ErrAPIParseFailed is returned when a chain API response cannot be decoded.
	ErrAPIParseFailed = zerr.New("failed to parse chain api response")

	// ErrCacheClosed is returned when a fetch is requested on a closed cache.
	ErrCacheClosed = zerr.New("fetch cache closed")

	// ErrInvalidPageSize is returned when a transaction page size is not positive.
	ErrInvalidPageSize = zerr.New("page size must be positive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrSnapshotReadFailed is returned when the store snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read store snapshot")

	// ErrSnapshotWriteFailed is returned when the store snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write store snapshot")

	// ErrSnapshotCorrupt is returned when the snapshot checksum does not match its content.
	ErrSnapshotCorrupt = zerr.New("store snapshot checksum mismatch")

	// ErrMissingTransactionID is returned when a viewed transaction has no id.
	ErrMissingTransactionID = zerr.New("missing transaction id")

	// ErrMissingAddress is returned when an account action has no address.
	ErrMissingAddress = zerr.New("missing account address")

	// ErrNoView is returned when a command needs a view and none was given.
	ErrNoView = zerr.New("no view specified")
)
