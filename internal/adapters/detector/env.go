// Package detector selects the output mode from the environment and user flags.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how results are written.
type OutputMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto OutputMode = iota
	// ModeStyled writes colored, annotated results for interactive terminals.
	ModeStyled
	// ModePlain writes the bare "Output #N: value" lines.
	ModePlain
	// ModeJSON writes a single JSON document.
	ModeJSON
)

// String returns the flag value that selects the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeStyled:
		return "styled"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode.
// Styled output needs stdout to be a terminal outside of CI.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms

	if !isTTY || isCI() {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies the --output flag to the detected mode.
// userFlag should be one of "auto", "styled", "plain", "ci", "json" or empty;
// unknown values fall back to autoDetected.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "styled":
		return ModeStyled
	case "plain", "ci":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
