package tui

// MsgSettled is sent when a fetch behind the inspected view settled.
type MsgSettled struct {
	Kind string
	Key  string
	Err  error
}

// MsgChanged is sent when a displayed node may have a new value.
type MsgChanged struct{}

// MsgRefreshed is sent when a refresh requested with "r" finished.
type MsgRefreshed struct {
	Err error
}

// MsgPageLoaded is sent when a next page requested with "n" finished.
type MsgPageLoaded struct {
	Err error
}
