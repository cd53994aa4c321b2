package domain

import "fmt"

// Verbosity controls how much of a report is shown. Levels are numeric
// thresholds where lower means more output: a message is shown iff its
// importance threshold is >= the active level.
type Verbosity int

const (
	// VerbosityVerbose shows everything, including successful checks.
	VerbosityVerbose Verbosity = 0
	// VerbosityDetails keeps intermediate information.
	VerbosityDetails Verbosity = 5
	// VerbosityMinimal shows only failures and essential info.
	VerbosityMinimal Verbosity = 10
)

// ValidVerbosities enumerates the accepted verbosity names, terse to full.
var ValidVerbosities = []string{"minimal", "details", "verbose"}

// ParseVerbosity maps a verbosity name to its level. Unknown names are an
// invalid-configuration error and are rejected before any rendering happens.
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "minimal":
		return VerbosityMinimal, nil
	case "details":
		return VerbosityDetails, nil
	case "verbose":
		return VerbosityVerbose, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q (valid: minimal, details, verbose)", s)
	}
}

func (v Verbosity) String() string {
	switch v {
	case VerbosityVerbose:
		return "verbose"
	case VerbosityDetails:
		return "details"
	default:
		return "minimal"
	}
}

// Allows reports whether a message of the given importance passes the gate
// at this active level.
func (v Verbosity) Allows(importance Verbosity) bool {
	return importance >= v
}
