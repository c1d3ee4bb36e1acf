// Package check implements the main subprogram of gdvar, which runs scenario
// suites and reports the results.
package check

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"src.gdvar.dev/pkg/logutil"
	"src.gdvar.dev/pkg/prog"
	"src.gdvar.dev/pkg/scenario"
)

var logger = logutil.GetLogger("[check] ")

// Program is the check subprogram.
type Program struct{}

// Run loads the suites named by args, runs them and writes a report to
// stdout. It returns prog.Exit(1) if any case failed.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("need at least one suite file or directory")
	}
	color, err := useColor(f.Color, fds[1])
	if err != nil {
		return err
	}

	suites, err := scenario.LoadPaths(args)
	if err != nil {
		return err
	}
	var results []scenario.Result
	for _, suite := range suites {
		logger.Printf("running suite %s (%d cases)", suite.Name, len(suite.Cases))
		results = append(results, scenario.Run(suite)...)
	}

	if f.JSON {
		err = writeJSON(fds[1], results)
	} else {
		writeText(fds[1], results, f.Verbose, color)
	}
	if err != nil {
		return err
	}
	if countOf(results).failed > 0 {
		return prog.Exit(1)
	}
	return nil
}

func useColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		fd := out.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, prog.BadUsage(fmt.Sprintf("invalid -color value %q", mode))
	}
}

type counts struct{ passed, failed, skipped int }

func countOf(results []scenario.Result) counts {
	var c counts
	for _, r := range results {
		switch {
		case r.Skipped:
			c.skipped++
		case r.Err != nil:
			c.failed++
		default:
			c.passed++
		}
	}
	return c
}

const (
	sgrGreen  = "32"
	sgrRed    = "31"
	sgrYellow = "33"
)

func styled(s, sgr string, color bool) string {
	if !color {
		return s
	}
	return "\033[" + sgr + "m" + s + "\033[m"
}

func writeText(w io.Writer, results []scenario.Result, verbose, color bool) {
	for _, r := range results {
		name := r.Suite + "/" + r.Case
		switch {
		case r.Skipped:
			fmt.Fprintf(w, "%s %s: %s\n", styled("SKIP", sgrYellow, color), name, r.SkipReason)
		case r.Err != nil:
			fmt.Fprintf(w, "%s %s: %v\n", styled("FAIL", sgrRed, color), name, r.Err)
		case verbose:
			fmt.Fprintf(w, "%s %s\n", styled("PASS", sgrGreen, color), name)
		}
	}
	c := countOf(results)
	fmt.Fprintf(w, "%d passed, %d failed, %d skipped\n", c.passed, c.failed, c.skipped)
}

type resultJSON struct {
	Suite   string `json:"suite"`
	Case    string `json:"case"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type reportJSON struct {
	Results []resultJSON `json:"results"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Skipped int          `json:"skipped"`
}

func writeJSON(w io.Writer, results []scenario.Result) error {
	c := countOf(results)
	report := reportJSON{
		Results: make([]resultJSON, len(results)),
		Passed:  c.passed,
		Failed:  c.failed,
		Skipped: c.skipped,
	}
	for i, r := range results {
		rj := resultJSON{Suite: r.Suite, Case: r.Case, Status: "pass"}
		switch {
		case r.Skipped:
			rj.Status, rj.Message = "skip", r.SkipReason
		case r.Err != nil:
			rj.Status, rj.Message = "fail", r.Err.Error()
		}
		report.Results[i] = rj
	}
	return json.NewEncoder(w).Encode(report)
}
