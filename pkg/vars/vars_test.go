package vars

import (
	"testing"

	. "src.gdvar.dev/pkg/tt"
	"src.gdvar.dev/pkg/variable"
)

func TestFromVariable(t *testing.T) {
	v := variable.FromValue(10)
	vv := FromVariable(v)
	if g := vv.Get(); g != 10.0 {
		t.Errorf("Get -> %v, want 10", g)
	}
	if err := vv.Set("20"); err != nil {
		t.Errorf(`Set("20") returns error %v`, err)
	}
	if k := v.Kind(); k != variable.String {
		t.Errorf("Set didn't change underlying Variable, kind %v", k)
	}
	if g := vv.Get(); g != "20" {
		t.Errorf(`Get -> %v, want "20"`, g)
	}
	if vv.Variable() != v {
		t.Errorf("Variable() doesn't return the backing Variable")
	}
}

func TestVariableVar_GetDoesNotConvert(t *testing.T) {
	vv := FromInit("12")
	vv.Get()
	vv.Get()
	if k := vv.Variable().Kind(); k != variable.String {
		t.Errorf("Get converted the Variable to %v", k)
	}
}

func TestVariableVar_Set(t *testing.T) {
	set := func(val any) (any, error) {
		vv := FromInit("initial")
		err := vv.Set(val)
		return vv.Get(), err
	}
	Test(t, Fn("Set", set), Table{
		Args("x").Rets("x", nil),
		Args(1.5).Rets(1.5, nil),
		Args(3).Rets(3.0, nil),
		Args(int64(-4)).Rets(-4.0, nil),
		Args(uint8(255)).Rets(255.0, nil),
		Args(float32(0.5)).Rets(0.5, nil),
		Args(variable.FromString("copied")).Rets("copied", nil),
		Args(variable.FromValue(9)).Rets(9.0, nil),

		Args(true).Rets("initial", WrongType{"bool"}),
		Args(nil).Rets("initial", WrongType{"nil"}),
		Args((*variable.Variable)(nil)).Rets("initial", WrongType{"nil"}),
		Args([]int{1}).Rets("initial", WrongType{"!![]int"}),
	})
}

func TestWrongType_Error(t *testing.T) {
	err := WrongType{"bool"}
	if msg := err.Error(); msg != "wrong type: need number or string, got bool" {
		t.Errorf("Error() -> %q", msg)
	}
}

func TestFromInit_PanicsOnWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromInit(true) didn't panic")
		}
	}()
	FromInit(true)
}

func TestScanNumber(t *testing.T) {
	Test(t, Fn("ScanNumber", ScanNumber), Table{
		Args(FromInit("42abc")).Rets(42.0),
		Args(FromInit(2.5)).Rets(2.5),
		Args(NewReadOnly("7")).Rets(7.0),
		Args(NewReadOnly(3)).Rets(3.0),
		Args(NewReadOnly(true)).Rets(0.0),
	})
}

func TestScanNumber_ConvertsVariable(t *testing.T) {
	vv := FromInit("hello")
	if f := ScanNumber(vv); f != 0 {
		t.Errorf("ScanNumber -> %v, want 0", f)
	}
	if g := vv.Get(); g != 0.0 {
		t.Errorf("Get after ScanNumber -> %v, want 0", g)
	}
}

func TestScanString(t *testing.T) {
	Test(t, Fn("ScanString", ScanString), Table{
		Args(FromInit(3.5)).Rets("3.5"),
		Args(FromInit("x")).Rets("x"),
		Args(NewReadOnly(1e14)).Rets("1e+14"),
		Args(NewReadOnly("s")).Rets("s"),
		Args(NewReadOnly(true)).Rets("true"),
	})
}

func TestScanString_ConvertsVariable(t *testing.T) {
	vv := FromInit(3.5)
	ScanString(vv)
	if g := vv.Get(); g != "3.5" {
		t.Errorf(`Get after ScanString -> %v, want "3.5"`, g)
	}
}

func TestVariableVar_ZeroValue(t *testing.T) {
	var vv VariableVar
	if g := vv.Get(); g != 0.0 {
		t.Errorf("Get on zero VariableVar -> %v, want 0", g)
	}
	if err := vv.Set("x"); err != ErrNoVariable {
		t.Errorf("Set on zero VariableVar returns %v, want ErrNoVariable", err)
	}
}
