package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"src.gdvar.dev/pkg/must"
)

func TestTempDir_DirIsValid(t *testing.T) {
	dir := TempDir(t)

	stat, err := os.Stat(dir)
	if err != nil {
		t.Errorf("TempDir returns %q which cannot be stated", dir)
	}
	if !stat.IsDir() {
		t.Errorf("TempDir returns %q which is not a dir", dir)
	}
}

func TestTempDir_DirHasSymlinksResolved(t *testing.T) {
	dir := TempDir(t)

	resolved := must.OK1(filepath.EvalSymlinks(dir))
	if dir != resolved {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
}

func TestTempDir_CleanupRemovesDirRecursively(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	must.WriteFile(filepath.Join(dir, "a"), "test")

	c.runCleanups()
	if _, err := os.Stat(dir); err == nil {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestInTempDir(t *testing.T) {
	original := must.OK1(os.Getwd())

	c := &cleanuper{}
	dir := InTempDir(c)
	if wd := must.OK1(os.Getwd()); wd != dir {
		t.Errorf("InTempDir changed working directory to %q, want %q", wd, dir)
	}

	c.runCleanups()
	if wd := must.OK1(os.Getwd()); wd != original {
		t.Errorf("working directory after cleanup is %q, want %q", wd, original)
	}
}

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}
