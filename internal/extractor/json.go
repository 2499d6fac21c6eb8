package extractor

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// JSONStrategy accepts a JSON object literal. Arrays and scalars are ignored.
type JSONStrategy struct{}

func (JSONStrategy) Name() string { return StrategyJSON }

// Recognizes reports whether query is a JSON object, even one with no usable values.
func (JSONStrategy) Recognizes(query string) bool {
	_, ok := decodeObject(query)
	return ok
}

func (JSONStrategy) Parse(query string) map[string]string {
	raw, ok := decodeObject(query)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := stringify(v); ok && s != "" && k != "" {
			out[k] = s
		}
	}
	return out
}

func decodeObject(query string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}
	var raw map[string]any
	if err := sonic.UnmarshalString(trimmed, &raw); err != nil {
		return nil, false
	}
	return raw, true
}

func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		s, err := sonic.MarshalString(val)
		if err != nil {
			return "", false
		}
		return s, true
	}
}
