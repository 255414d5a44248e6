package solver

import (
	"encoding/json"
	"fmt"
	"strconv"
)

func init() {
	Register("json", JSONSum{})
}

// JSONSum solves "json" tasks: the question is a JSON object and the answer
// is the sum of every value in it, descending into nested objects. Values
// are integers or strings holding integers.
type JSONSum struct{}

func (JSONSum) Solve(question string) (string, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(question), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse question as a JSON object: %w", err)
	}

	total, err := sumValues(parsed)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(total, 10), nil
}

func sumValues(obj map[string]any) (int64, error) {
	var total int64
	for key, value := range obj {
		switch v := value.(type) {
		case map[string]any:
			sub, err := sumValues(v)
			if err != nil {
				return 0, err
			}
			total += sub
		case float64:
			total += int64(v)
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("value %q of key %q is not an integer", v, key)
			}
			total += n
		default:
			return 0, fmt.Errorf("unsupported value %v of key %q", value, key)
		}
	}
	return total, nil
}
