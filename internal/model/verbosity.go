package model

type Verbosity string

const (
	VerbosityCompact = Verbosity("compact")
	VerbosityVerbose = Verbosity("verbose")
)

func ParseVerbosity(s string) (Verbosity, bool) {
	switch Verbosity(s) {
	case VerbosityCompact:
		return VerbosityCompact, true
	case VerbosityVerbose:
		return VerbosityVerbose, true
	default:
		return "", false
	}
}
