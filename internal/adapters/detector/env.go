// Package detector picks the log format from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat is the rendering of log output.
type LogFormat int

const (
	// FormatAuto defers to environment detection.
	FormatAuto LogFormat = iota
	// FormatPretty renders colored lines for humans.
	FormatPretty
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

// DetectEnvironment returns the format suited to the current process.
// Interactive terminals get pretty output; CI and redirected stderr get JSON.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies the --log-format flag to the detected format.
// userFlag should be one of "auto", "pretty", "text", "json" or empty.
func ResolveFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}
