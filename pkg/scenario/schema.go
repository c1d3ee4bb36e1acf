package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"src.gdvar.dev/pkg/variable"
)

// Suite is a YAML file of cases.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`

	// File is the path the suite was loaded from, if any.
	File string `yaml:"-"`
}

// Case is a sequence of steps run against a fresh Variable.
type Case struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Skip        any    `yaml:"skip,omitempty"` // bool or string
	Steps       []Step `yaml:"steps"`
}

func (c *Case) checkSkip() error {
	switch c.Skip.(type) {
	case nil, bool, string:
		return nil
	default:
		return fmt.Errorf("case %q: skip must be a bool or a string, got %v", c.Name, c.Skip)
	}
}

// IsSkipped returns whether the case should be skipped, and why.
func (c *Case) IsSkipped() (bool, string) {
	switch v := c.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
	case string:
		return true, v
	}
	return false, ""
}

// Op is the operation of a step.
type Op string

// Possible values of Op.
const (
	SetValue  Op = "set_value"
	SetString Op = "set_string"
	GetValue  Op = "get_value"
	GetString Op = "get_string"
	Kind      Op = "kind"
)

// Step is one operation on a Variable. For SetValue and GetValue, Num is the
// argument or the expected result; for SetString and GetString, Str is. For
// Kind, Kind is the expected representation.
type Step struct {
	Op   Op
	Num  float64
	Str  string
	Kind variable.Kind
}

// UnmarshalYAML implements yaml.Unmarshaler. A step is a mapping with exactly
// one key, the name of the operation.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: step must be a mapping with exactly one key", node.Line)
	}
	key, value := node.Content[0], node.Content[1]
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: argument of %s must be a scalar", value.Line, key.Value)
	}
	s.Op = Op(key.Value)
	if value.ShortTag() == "!!null" {
		return fmt.Errorf("line %d: argument of %s must not be null", value.Line, key.Value)
	}
	switch s.Op {
	case SetValue, GetValue:
		f, err := decodeNumber(value)
		if err != nil {
			return err
		}
		s.Num = f
	case SetString, GetString:
		s.Str = value.Value
	case Kind:
		switch value.Value {
		case "number":
			s.Kind = variable.Number
		case "string":
			s.Kind = variable.String
		default:
			return fmt.Errorf("line %d: kind must be number or string, got %q", value.Line, value.Value)
		}
	default:
		return fmt.Errorf("line %d: unknown operation %q", key.Line, key.Value)
	}
	return nil
}

// decodeNumber decodes a YAML number. Besides YAML's own .inf and .nan, the
// strings inf, -inf and nan are accepted, so that results of GetString can be
// reused verbatim.
func decodeNumber(node *yaml.Node) (float64, error) {
	if node.ShortTag() == "!!str" {
		switch strings.ToLower(node.Value) {
		case "inf", "+inf", "-inf", "nan":
			return variable.ParseNumber(node.Value), nil
		}
		return 0, fmt.Errorf("line %d: need number, got %q", node.Line, node.Value)
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return f, nil
}

// String returns the step in the same form as in YAML.
func (s Step) String() string {
	switch s.Op {
	case SetValue, GetValue:
		return fmt.Sprintf("%s: %s", s.Op, variable.FormatNumber(s.Num))
	case SetString, GetString:
		return fmt.Sprintf("%s: %q", s.Op, s.Str)
	case Kind:
		return fmt.Sprintf("%s: %s", s.Op, s.Kind)
	default:
		return string(s.Op)
	}
}
