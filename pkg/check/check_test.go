package check_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.gdvar.dev/pkg/check"
	"src.gdvar.dev/pkg/must"
	"src.gdvar.dev/pkg/prog/progtest"
	"src.gdvar.dev/pkg/testutil"
)

var (
	Test      = progtest.Test
	ThatGdvar = progtest.ThatGdvar
)

const (
	passingSuite = `
name: ok
cases:
  - name: round trip
    steps:
      - set_value: 3.5
      - get_string: "3.5"
  - name: later
    skip: not yet
    steps: []
`
	failingSuite = `
name: bad
cases:
  - name: string is kept
    steps:
      - set_string: hello
      - get_value: 0
      - get_string: hello
`
)

func setup(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("ok.yaml", passingSuite)
	must.WriteFile("suites/bad.yaml", failingSuite)
}

func TestProgram_Text(t *testing.T) {
	setup(t)

	Test(t, Program{},
		ThatGdvar("ok.yaml").
			WritesStdout("SKIP ok/later: not yet\n1 passed, 0 failed, 1 skipped\n"),
		ThatGdvar("-v", "ok.yaml").
			WritesStdout("PASS ok/round trip\nSKIP ok/later: not yet\n" +
				"1 passed, 0 failed, 1 skipped\n"),
		ThatGdvar("ok.yaml", "suites").
			ExitsWith(1).
			WritesStdout("SKIP ok/later: not yet\n" +
				`FAIL bad/string is kept: step 2 (get_string): want "hello", got "0"` + "\n" +
				"1 passed, 1 failed, 1 skipped\n"),
	)
}

func TestProgram_Color(t *testing.T) {
	setup(t)

	Test(t, Program{},
		ThatGdvar("-color", "always", "-v", "ok.yaml").
			WritesStdout("\033[32mPASS\033[m ok/round trip\n\033[33mSKIP\033[m ok/later: not yet\n" +
				"1 passed, 0 failed, 1 skipped\n"),
		// Pipes are not terminals.
		ThatGdvar("-color", "auto", "-v", "ok.yaml").
			WritesStdoutContaining("PASS ok/round trip"),
		ThatGdvar("-color", "sometimes", "ok.yaml").
			ExitsWith(2).
			WritesStderrContaining("invalid -color value \"sometimes\"\nUsage:"),
	)
}

func TestProgram_Errors(t *testing.T) {
	setup(t)
	must.WriteFile("broken.yaml", "cases: [{name: x, steps: [{peek: 1}]}]")

	Test(t, Program{},
		ThatGdvar().
			ExitsWith(2).
			WritesStderrContaining("need at least one suite file or directory\nUsage:"),
		ThatGdvar("missing.yaml").
			ExitsWith(2).
			WritesStderrContaining("missing.yaml"),
		ThatGdvar("broken.yaml").
			ExitsWith(2).
			WritesStderrContaining(`unknown operation "peek"`),
	)
}

func TestProgram_JSON(t *testing.T) {
	setup(t)

	exit, stdout, stderr := progtest.Run(Program{}, nil, "gdvar", "-json", "ok.yaml", "suites")
	if exit != 1 || stderr != "" {
		t.Errorf("got exit %d and stderr %q, want 1 and empty", exit, stderr)
	}
	var got any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	want := map[string]any{
		"results": []any{
			map[string]any{"suite": "ok", "case": "round trip", "status": "pass"},
			map[string]any{"suite": "ok", "case": "later", "status": "skip", "message": "not yet"},
			map[string]any{"suite": "bad", "case": "string is kept", "status": "fail",
				"message": `step 2 (get_string): want "hello", got "0"`},
		},
		"passed":  1.0,
		"failed":  1.0,
		"skipped": 1.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON report (-want +got):\n%s", diff)
	}
}
