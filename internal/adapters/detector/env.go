// Package detector picks how a view is presented from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Mode is how a view is presented.
type Mode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto Mode = iota
	// ModeInteractive forces the interactive inspector.
	ModeInteractive
	// ModeText prints the settled report once.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeText:
		return "text"
	case ModeAuto:
		return "auto"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode based on the environment.
// The inspector needs a terminal on both stdin and stdout and is never used in CI.
func DetectEnvironment() Mode {
	isTTY := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeText
	}
	return ModeInteractive
}

// ResolveMode applies the user override flag to auto-detection.
// userFlag should be one of: "auto", "tui", "interactive", "text", or empty.
func ResolveMode(autoDetected Mode, userFlag string) Mode {
	switch userFlag {
	case "tui", "interactive":
		return ModeInteractive
	case "text":
		return ModeText
	case "auto", "":
		return autoDetected
	default:
		return autoDetected
	}
}
