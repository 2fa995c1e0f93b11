package model

import (
	"fmt"
	"time"
)

// TestOutcome is the verdict of running a test command against a mutant.
type TestOutcome int

const (
	// Survived means the test command exited 0: the mutant went undetected.
	Survived TestOutcome = iota
	// Killed means the test command failed with a non-zero exit status.
	Killed
	// Incompetent means the run could not be evaluated (launch failure,
	// timeout, cancellation or an internal fault).
	Incompetent
)

func (o TestOutcome) String() string {
	switch o {
	case Survived:
		return "survived"
	case Killed:
		return "killed"
	case Incompetent:
		return "incompetent"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o TestOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *TestOutcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "survived":
		*o = Survived
	case "killed":
		*o = Killed
	case "incompetent":
		*o = Incompetent
	default:
		return fmt.Errorf("unknown test outcome %q", text)
	}

	return nil
}

// IncompetenceCause refines an Incompetent outcome for diagnostics. It never
// changes the outcome itself.
type IncompetenceCause string

// Incompetence causes.
const (
	CauseNone     IncompetenceCause = ""
	CauseLaunch   IncompetenceCause = "launch"
	CauseTimeout  IncompetenceCause = "timeout"
	CauseCanceled IncompetenceCause = "canceled"
	CauseInternal IncompetenceCause = "internal"
)

// TestResult is what the test oracle returns for one command invocation.
type TestResult struct {
	Outcome  TestOutcome
	Output   string // merged stdout/stderr, or a failure description
	Cause    IncompetenceCause
	ExitCode int // -1 when the process did not exit normally
	Duration time.Duration
}
