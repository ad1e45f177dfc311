package shareset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// flexInt accepts both 10 and "10".
type flexInt int

func parseFlexInt(s string) (flexInt, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return flexInt(v), nil
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	v, err := parseFlexInt(s)
	if err != nil {
		return err
	}

	*f = v
	return nil
}

func (f *flexInt) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrInvalidNumber, node.Line)
	}

	v, err := parseFlexInt(node.Value)
	if err != nil {
		return err
	}

	*f = v
	return nil
}

// flexString keeps the literal text of a scalar, quoted or not, so that
// unquoted YAML digit strings such as 0111 keep their leading zeros.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}

	*f = flexString(s)
	return nil
}

func (f *flexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("shareset: value must be a scalar at line %d", node.Line)
	}

	*f = flexString(node.Value)
	return nil
}

type keysBlock struct {
	N flexInt `json:"n" yaml:"n"`
	K flexInt `json:"k" yaml:"k"`
}

type entryBlock struct {
	Base  flexInt    `json:"base" yaml:"base"`
	Value flexString `json:"value" yaml:"value"`
}
