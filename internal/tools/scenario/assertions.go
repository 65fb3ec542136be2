package scenario

import (
	"fmt"
	"log"
	"strings"
)

// AssertionMode decides what a failed expectation does.
type AssertionMode int

const (
	// AssertionStrict stops the scenario at the first failed expectation.
	AssertionStrict AssertionMode = iota
	// AssertionLogOnly logs failed expectations and keeps going.
	AssertionLogOnly
)

// ParseAssertionMode reads "strict" or "log".
func ParseAssertionMode(value string) (AssertionMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "strict":
		return AssertionStrict, nil
	case "log", "log-only", "logonly":
		return AssertionLogOnly, nil
	default:
		return AssertionStrict, fmt.Errorf("unknown assertion mode %q", value)
	}
}

func (m AssertionMode) String() string {
	if m == AssertionLogOnly {
		return "log"
	}
	return "strict"
}

// Assertions applies an AssertionMode.
type Assertions struct {
	Mode   AssertionMode
	Logger *log.Logger
	// Failures counts expectations that failed in log-only mode.
	Failures int
}

// Failf always fails; it is for broken scenarios, not broken rules.
func (a *Assertions) Failf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Assertf reports a failed expectation according to Mode.
func (a *Assertions) Assertf(format string, args ...any) error {
	if a.Mode == AssertionStrict {
		return fmt.Errorf(format, args...)
	}
	a.Failures++
	if a.Logger != nil {
		a.Logger.Printf("assertion failed: "+format, args...)
	}
	return nil
}
