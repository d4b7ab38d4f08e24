// Package detector decides whether report output is coloured.
package detector

import (
	"os"

	"golang.org/x/term"
)

// ColorMode represents the colour handling of the report.
type ColorMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto ColorMode = iota
	// ModeColor renders with colours.
	ModeColor
	// ModePlain renders without escape sequences.
	ModePlain
)

// DetectEnvironment returns the recommended colour mode for stdout.
// Output that is not a terminal, or runs under CI, is plain.
func DetectEnvironment() ColorMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) ColorMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user's --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
