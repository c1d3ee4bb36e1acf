// Package scenario runs YAML suites of operations against Variables.
//
// A suite looks like this:
//
//	name: lossy
//	cases:
//	  - name: non-numeric string is lost
//	    steps:
//	      - set_string: hello
//	      - get_value: 0
//	      - kind: number
//	      - get_string: "0"
//
// Each case starts with a zero Variable.
package scenario

import (
	"fmt"
	"math"

	"src.gdvar.dev/pkg/logutil"
	"src.gdvar.dev/pkg/variable"
)

var logger = logutil.GetLogger("[scenario] ")

// Result is the outcome of running a case.
type Result struct {
	Suite      string
	Case       string
	Skipped    bool
	SkipReason string
	Err        error
}

// Passed returns whether the case ran and all its steps succeeded.
func (r Result) Passed() bool { return !r.Skipped && r.Err == nil }

// MismatchError is returned when a step's result differs from the expected
// one.
type MismatchError struct {
	Index int
	Op    Op
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("step %d (%s): want %s, got %s", e.Index, e.Op, e.Want, e.Got)
}

// StepError is returned for a step that cannot be run.
type StepError struct {
	Index int
	Msg   string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Index, e.Msg)
}

// Run runs all the cases of a suite.
func Run(suite *Suite) []Result {
	results := make([]Result, len(suite.Cases))
	for i := range suite.Cases {
		results[i] = RunCase(suite.Name, &suite.Cases[i])
	}
	return results
}

// RunCase runs one case, stopping at the first failing step.
func RunCase(suiteName string, c *Case) Result {
	r := Result{Suite: suiteName, Case: c.Name}
	if skip, reason := c.IsSkipped(); skip {
		logger.Printf("%s/%s: %s", suiteName, c.Name, reason)
		r.Skipped, r.SkipReason = true, reason
		return r
	}
	var v variable.Variable
	for i, step := range c.Steps {
		if err := runStep(&v, i, step); err != nil {
			logger.Printf("%s/%s: %v; variable is %s", suiteName, c.Name, err, v.Repr())
			r.Err = err
			return r
		}
	}
	logger.Printf("%s/%s: passed %d steps", suiteName, c.Name, len(c.Steps))
	return r
}

func runStep(v *variable.Variable, i int, step Step) error {
	switch step.Op {
	case SetValue:
		v.SetValue(step.Num)
	case SetString:
		v.SetString(step.Str)
	case GetValue:
		if got := v.GetValue(); !sameNumber(got, step.Num) {
			return &MismatchError{i, step.Op,
				variable.FormatNumber(step.Num), variable.FormatNumber(got)}
		}
	case GetString:
		if got := v.GetString(); got != step.Str {
			return &MismatchError{i, step.Op, fmt.Sprintf("%q", step.Str), fmt.Sprintf("%q", got)}
		}
	case Kind:
		if got := v.Kind(); got != step.Kind {
			return &MismatchError{i, step.Op, step.Kind.String(), got.String()}
		}
	default:
		return &StepError{i, fmt.Sprintf("unknown operation %q", step.Op)}
	}
	return nil
}

// sameNumber is like ==, except that NaN is the same as NaN.
func sameNumber(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
