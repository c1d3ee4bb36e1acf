package errutil

import (
	"errors"
	"io/fs"
	"testing"

	. "src.gdvar.dev/pkg/tt"
)

var (
	err1 = errors.New("error 1")
	err2 = errors.New("error 2")
	err3 = errors.New("error 3")
)

func TestMulti(t *testing.T) {
	Test(t, Fn("Multi", Multi), Table{
		Args().Rets(nil),
		Args(nil, nil).Rets(nil),
		Args(err1).Rets(err1),
		Args(nil, err1, nil).Rets(err1),
		Args(err1, err2).Rets(multiError{err1, err2}),
		Args(Multi(err1, err2), err3).Rets(multiError{err1, err2, err3}),
	})
}

func TestMulti_Error(t *testing.T) {
	err := Multi(err1, err2)
	if msg := err.Error(); msg != "multiple errors: error 1; error 2" {
		t.Errorf("Error() -> %q", msg)
	}
}

func TestMulti_Unwrap(t *testing.T) {
	err := Multi(err1, &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist})
	if !errors.Is(err, err1) {
		t.Errorf("errors.Is(err, err1) = false")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != "x" {
		t.Errorf("errors.As didn't find *fs.PathError")
	}
}
