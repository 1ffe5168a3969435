package heat

import (
	"errors"
	"fmt"

	"github.com/vexxhost/magnum/internal/cluster"
)

// ErrOutputType is returned when an output value cannot be converted to an
// address list.
var ErrOutputType = errors.New("unexpected output value type")

// Stack exposes the outputs of a provisioned stack.
type Stack interface {
	// OutputValue returns the value of the output named key and whether the
	// stack reports it.
	OutputValue(key string) (any, bool)
}

// Output is a single stack output as reported by the orchestration API.
type Output struct {
	Key   string `json:"output_key"`
	Value any    `json:"output_value"`
}

// Outputs is a static Stack built from a list of outputs.
type Outputs []Output

// OutputValue implements Stack. When a key appears more than once the last
// value wins.
func (o Outputs) OutputValue(key string) (any, bool) {
	var (
		value any
		found bool
	)
	for _, out := range o {
		if out.Key == key {
			value, found = out.Value, true
		}
	}
	return value, found
}

// AttachOutput copies the value of the output named key onto the node
// group's addresses. A missing or null output leaves the node group untouched
// and returns false.
func AttachOutput(stack Stack, key string, ng *cluster.NodeGroup) (bool, error) {
	if stack == nil || ng == nil {
		return false, nil
	}

	raw, ok := stack.OutputValue(key)
	if !ok || raw == nil {
		return false, nil
	}

	addrs, err := toStrings(raw)
	if err != nil {
		return false, fmt.Errorf("output %s: %w", key, err)
	}

	ng.NodeAddresses = addrs
	return true, nil
}

func toStrings(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), nil
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", ErrOutputType, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrOutputType, v)
	}
}
