// Package variable implements the value held by a script variable.
//
// A Variable holds either a number or a string. Reading it as the other type
// converts the value and makes the converted form authoritative, so a
// Variable read alternately as a number and a string may lose information:
//
//	var v variable.Variable
//	v.SetString("hello")
//	v.GetValue()  // 0; the variable now holds the number 0
//	v.GetString() // "0"
//
// Both accessors mutate the Variable, so a Variable shared between goroutines
// must be guarded for reads as well as writes.
package variable

import "strconv"

// Kind identifies which representation of a Variable is authoritative.
type Kind uint8

// Possible values of Kind. The zero value is Number.
const (
	Number Kind = iota
	String
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Variable is a number or a string. The zero value is the number 0.
type Variable struct {
	num  float64
	str  string
	kind Kind
}

// FromValue returns a new Variable holding the number f.
func FromValue(f float64) *Variable {
	v := &Variable{}
	v.SetValue(f)
	return v
}

// FromString returns a new Variable holding the string s.
func FromString(s string) *Variable {
	v := &Variable{}
	v.SetString(s)
	return v
}

// SetValue makes v hold the number f.
func (v *Variable) SetValue(f float64) {
	v.num = f
	v.kind = Number
}

// SetString makes v hold the string s.
func (v *Variable) SetString(s string) {
	v.str = s
	v.kind = String
}

// GetValue returns the value of v as a number. If v holds a string, it is
// parsed with ParseNumber and v then holds the parsed number.
func (v *Variable) GetValue() float64 {
	if v.kind != Number {
		v.num = ParseNumber(v.str)
		v.kind = Number
	}
	return v.num
}

// GetString returns the value of v as a string. If v holds a number, it is
// formatted with FormatNumber and v then holds the formatted string.
func (v *Variable) GetString() string {
	if v.kind != String {
		v.str = FormatNumber(v.num)
		v.kind = String
	}
	return v.str
}

// Kind returns the representation v currently holds. It never converts.
func (v *Variable) Kind() Kind {
	return v.kind
}

// Repr returns a representation of v for debugging, such as (num 3.5) or
// (str "abc"). It never converts.
func (v *Variable) Repr() string {
	if v.kind == String {
		return "(str " + strconv.Quote(v.str) + ")"
	}
	return "(num " + FormatNumber(v.num) + ")"
}
