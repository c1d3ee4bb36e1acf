// Package vars binds Variable values to the variable interface used by script
// evaluators.
package vars

import (
	"errors"
	"fmt"

	"src.gdvar.dev/pkg/variable"
)

// Var represents a script variable.
type Var interface {
	Set(v any) error
	Get() any
}

// WrongType is returned by Set when the value is neither a number nor a
// string.
type WrongType struct {
	GotKind string
}

func (err WrongType) Error() string {
	return "wrong type: need number or string, got " + err.GotKind
}

// ErrNoVariable is returned by Set on a VariableVar not backed by a Variable,
// such as the zero value.
var ErrNoVariable = errors.New("variable is not bound")

// VariableVar is a Var backed by a *variable.Variable. The zero value has no
// backing Variable: Get returns the number 0 and Set returns ErrNoVariable.
type VariableVar struct {
	v *variable.Variable
}

// FromVariable returns a Var backed by v. Calls to Set on the returned Var
// are visible through v and vice versa.
func FromVariable(v *variable.Variable) VariableVar {
	return VariableVar{v}
}

// FromInit returns a Var backed by a new Variable initialized with val. It
// panics if val is not a number or a string.
func FromInit(val any) VariableVar {
	vv := FromVariable(&variable.Variable{})
	if err := vv.Set(val); err != nil {
		panic(err)
	}
	return vv
}

// Variable returns the underlying Variable.
func (vv VariableVar) Variable() *variable.Variable { return vv.v }

// Get returns the value the Variable currently holds, as a float64 or a
// string, without converting it.
func (vv VariableVar) Get() any {
	if vv.v == nil {
		return 0.0
	}
	if vv.v.Kind() == variable.String {
		return vv.v.GetString()
	}
	return vv.v.GetValue()
}

// Set makes the Variable hold val. Numbers of any built-in integer or float
// type are stored as numbers, strings as strings. Another *variable.Variable
// is copied by the representation it currently holds. For other types, Set
// returns a WrongType error and leaves the Variable unchanged; a nil
// *variable.Variable counts as nil.
func (vv VariableVar) Set(val any) error {
	if vv.v == nil {
		return ErrNoVariable
	}
	switch val := val.(type) {
	case string:
		vv.v.SetString(val)
	case *variable.Variable:
		if val == nil {
			return WrongType{"nil"}
		}
		if val.Kind() == variable.String {
			vv.v.SetString(val.GetString())
		} else {
			vv.v.SetValue(val.GetValue())
		}
	default:
		f, ok := toFloat(val)
		if !ok {
			return WrongType{kind(val)}
		}
		vv.v.SetValue(f)
	}
	return nil
}

// ScanNumber returns the value of a Var as a number. For a VariableVar this is
// GetValue, which converts the Variable to a number if it holds a string.
// Other Vars have their value converted without being modified.
func ScanNumber(v Var) float64 {
	if vv, ok := v.(VariableVar); ok {
		return vv.v.GetValue()
	}
	switch val := v.Get().(type) {
	case string:
		return variable.ParseNumber(val)
	default:
		f, _ := toFloat(val)
		return f
	}
}

// ScanString returns the value of a Var as a string. For a VariableVar this is
// GetString, which converts the Variable to a string if it holds a number.
// Other Vars have their value converted without being modified.
func ScanString(v Var) string {
	if vv, ok := v.(VariableVar); ok {
		return vv.v.GetString()
	}
	switch val := v.Get().(type) {
	case string:
		return val
	default:
		if f, ok := toFloat(val); ok {
			return variable.FormatNumber(f)
		}
		return fmt.Sprint(val)
	}
}

func toFloat(val any) (float64, bool) {
	switch val := val.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

func kind(val any) string {
	switch val.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("!!%T", val)
	}
}
