package flow

import (
	"strings"

	"hr-assistant/internal/extractor"
	"hr-assistant/internal/form"
	"hr-assistant/internal/model"
)

func isStructured(strategy string) bool {
	return strategy == extractor.StrategyPipe || strategy == extractor.StrategyJSON
}

// resolveAwaited fills the field the user was just asked for when the
// extractor could not name it. Keys the extractor produced are never replaced,
// and free-text answers are only considered when the input was not a
// structured widget submission.
func (e *Engine) resolveAwaited(field form.Field, fields map[string]string, query string, structured bool) map[string]string {
	if fields[field.Key] != "" {
		return fields
	}
	answer := strings.TrimSpace(query)
	if answer == "" {
		return fields
	}

	out := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}

	switch field.Kind {
	case model.ComponentDatePicker:
		if d := fields["date"]; d != "" {
			out[field.Key] = d
		} else if !structured && e.dates != nil {
			if d, ok := e.dates.Resolve(answer, e.now()); ok {
				out[field.Key] = d
			}
		}
	case model.ComponentDropdown:
		if structured {
			break
		}
		if v, ok := matchOption(field.Options, answer); ok {
			out[field.Key] = v
		}
	case model.ComponentTextInput:
		if !structured {
			out[field.Key] = answer
		}
	}
	return out
}

func matchOption(options []model.Option, answer string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o.Value, answer) || strings.EqualFold(o.Label, answer) {
			return o.Value, true
		}
	}
	return "", false
}
