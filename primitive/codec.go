package primitive

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Value.
// Accepts !!int, !!float, !!bool and !!str scalars.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar value, got %v", node.Kind)
	}

	switch node.ShortTag() {
	case "!!null":
		*v = Value{}
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}

		*v = Int(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}

		*v = Float(f)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}

		*v = Bool(b)
	case "!!str":
		*v = String(node.Value)
	default:
		return fmt.Errorf("unsupported value tag %s", node.ShortTag())
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Value.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Value.
// Integer literals become RawInt, any other number becomes RawFloat.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty value")
	}

	switch data[0] {
	case 'n':
		if string(data) != "null" {
			return fmt.Errorf("invalid value %s", data)
		}

		*v = Value{}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}

		*v = Bool(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*v = String(s)
	case '{', '[':
		return fmt.Errorf("expected scalar value, got %s", data)
	default:
		return v.unmarshalNumber(string(data))
	}

	return nil
}

func (v *Value) unmarshalNumber(lit string) error {
	if !bytes.ContainsAny([]byte(lit), ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			*v = Int(i)
			return nil
		}
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", lit)
	}

	*v = Float(f)

	return nil
}

// MarshalJSON implements custom JSON marshaling for Value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
