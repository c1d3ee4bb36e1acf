// Package progtest contains utilities for testing subprograms of gdvar.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.gdvar.dev/pkg/must"
	"src.gdvar.dev/pkg/prog"
)

// Case is a test case for Test, created by ThatGdvar.
type Case struct {
	args []string

	wantExit   int
	wantOut    *check
	wantErr    *check
	stdoutFile *os.File
}

type check struct {
	contains bool
	s        string
}

func (c *check) ok(s string) bool {
	if c == nil {
		return s == ""
	}
	if c.contains {
		return strings.Contains(s, c.s)
	}
	return s == c.s
}

// ThatGdvar returns a new Case with the given command-line arguments. By
// default, the case expects the program to exit with 0 and write nothing.
func ThatGdvar(args ...string) *Case {
	return &Case{args: append([]string{"gdvar"}, args...)}
}

// WithStdout makes the program write its stdout to the given file instead of
// a pipe; the test then doesn't check stdout.
func (c *Case) WithStdout(f *os.File) *Case {
	c.stdoutFile = f
	return c
}

// ExitsWith requires the program to exit with the given code.
func (c *Case) ExitsWith(code int) *Case {
	c.wantExit = code
	return c
}

// DoesNothing requires the program to exit with 0 and write nothing. It is a
// no-op that documents intent.
func (c *Case) DoesNothing() *Case { return c }

// WritesStdout requires the program to write exactly s to stdout.
func (c *Case) WritesStdout(s string) *Case {
	c.wantOut = &check{false, s}
	return c
}

// WritesStdoutContaining requires the program to write something containing s
// to stdout.
func (c *Case) WritesStdoutContaining(s string) *Case {
	c.wantOut = &check{true, s}
	return c
}

// WritesStderr requires the program to write exactly s to stderr.
func (c *Case) WritesStderr(s string) *Case {
	c.wantErr = &check{false, s}
	return c
}

// WritesStderrContaining requires the program to write something containing s
// to stderr.
func (c *Case) WritesStderrContaining(s string) *Case {
	c.wantErr = &check{true, s}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdoutFile, c.args...)
			if exit != c.wantExit {
				t.Errorf("got exit %v, want %v", exit, c.wantExit)
			}
			if c.stdoutFile == nil && !c.wantOut.ok(stdout) {
				t.Errorf("got stdout:\n%s\nwant %s", stdout, describe(c.wantOut))
			}
			if !c.wantErr.ok(stderr) {
				t.Errorf("got stderr:\n%s\nwant %s", stderr, describe(c.wantErr))
			}
		})
	}
}

func describe(c *check) string {
	switch {
	case c == nil:
		return "empty"
	case c.contains:
		return "containing:\n" + c.s
	default:
		return "exactly:\n" + c.s
	}
}

// Run runs a program with the given arguments, and returns its exit status
// and output. If stdoutFile is not nil, it is used as stdout and the returned
// stdout is empty.
func Run(p prog.Program, stdoutFile *os.File, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.OK2(os.Pipe())
	w0.Close()
	defer r0.Close()

	outCh := make(chan string, 1)
	w1 := stdoutFile
	if w1 == nil {
		var r1 *os.File
		r1, w1 = must.OK2(os.Pipe())
		go readAll(r1, outCh)
	} else {
		outCh <- ""
	}
	r2, w2 := must.OK2(os.Pipe())
	errCh := make(chan string, 1)
	go readAll(r2, errCh)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	if stdoutFile == nil {
		w1.Close()
	}
	w2.Close()
	return exit, <-outCh, <-errCh
}

// Reading concurrently with the program keeps it from blocking on a full pipe.
func readAll(r *os.File, ch chan<- string) {
	ch <- string(must.OK1(io.ReadAll(r)))
	r.Close()
}
