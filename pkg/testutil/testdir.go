package testutil

import (
	"os"
	"path/filepath"

	"src.gdvar.dev/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It returns the path of the directory, with all
// symlinks resolved.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "gdvartest"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		must.OK(os.RemoveAll(dir))
	})
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() {
		must.OK(os.Chdir(oldWd))
	})
	return dir
}

// InTempDir is equivalent to Chdir(c, TempDir(c)).
func InTempDir(c Cleanuper) string {
	return Chdir(c, TempDir(c))
}
