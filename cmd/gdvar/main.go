// Gdvar runs YAML scenario suites against script variables, which hold a
// number or a string and convert between the two when read.
package main

import (
	"os"

	"src.gdvar.dev/pkg/buildinfo"
	"src.gdvar.dev/pkg/check"
	"src.gdvar.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, check.Program{})))
}
