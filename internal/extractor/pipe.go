package extractor

import (
	"regexp"
	"strings"

	"hr-assistant/internal/form"
)

// singlePair matches a whole one-line query of the form "identifier: value".
var singlePair = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*:[^\n]*$`)

// fieldKeys maps lowercased form field keys to their canonical spelling.
var fieldKeys = func() map[string]string {
	keys := []string{
		form.FieldDate,
		form.FieldReason,
		form.FieldCustomReason,
		form.FieldLeaveType,
		form.FieldFromDate,
		form.FieldToDate,
	}
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = k
	}
	return m
}()

// PipeStrategy parses "key:value|key:value" as sent by form widgets. A single
// pair without a pipe is accepted only when its key names a form field.
type PipeStrategy struct{}

func (PipeStrategy) Name() string { return StrategyPipe }

// Recognizes reports whether query is pipe input, even if no pair survives.
func (PipeStrategy) Recognizes(query string) bool {
	if strings.Contains(query, "|") {
		return true
	}
	m := singlePair.FindStringSubmatch(query)
	if m == nil {
		return false
	}
	_, ok := fieldKeys[strings.ToLower(m[1])]
	return ok
}

func (p PipeStrategy) Parse(query string) map[string]string {
	if !p.Recognizes(query) {
		return nil
	}

	out := map[string]string{}
	for _, pair := range strings.Split(query, "|") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := canonicalKey(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

func canonicalKey(key string) string {
	if k, ok := fieldKeys[strings.ToLower(key)]; ok {
		return k
	}
	return key
}

// EncodePipe renders fields in the format PipeStrategy reads.
func EncodePipe(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for k, v := range fields {
		parts = append(parts, k+":"+v)
	}
	return strings.Join(parts, "|")
}
