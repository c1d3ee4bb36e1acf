// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.gdvar.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.gdvar.dev/pkg/prog"
)

// Version identifies the version of gdvar. On development commits, it
// identifies the next release.
const Version = "v0.3.0"

// VersionSuffix is appended to Version in the output of "gdvar -version" and
// "gdvar -buildinfo" to build the full version string.
var VersionSuffix = "-dev.unknown"

// Reproducible identifies whether the build is reproducible.
var Reproducible = "false"

// Program is the buildinfo subprogram. It runs when -version or -buildinfo is
// given, and returns prog.ErrNotSuitable otherwise.
type Program struct{}

type info struct {
	Version      string `json:"version"`
	GoVersion    string `json:"goversion"`
	Reproducible bool   `json:"reproducible"`
}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version && !f.BuildInfo {
		return prog.ErrNotSuitable
	}
	fullVersion := Version + VersionSuffix
	if f.Version {
		fmt.Fprintln(fds[1], fullVersion)
		return nil
	}
	if f.JSON {
		return json.NewEncoder(fds[1]).Encode(
			info{fullVersion, runtime.Version(), Reproducible == "true"})
	}
	fmt.Fprintln(fds[1], "Version:", fullVersion)
	fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	fmt.Fprintln(fds[1], "Reproducible build:", Reproducible)
	return nil
}
