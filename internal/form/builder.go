package form

import (
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/model"
)

// ReadyText is returned alongside the ready signal.
const ReadyText = "All information collected. Processing..."

// NextPrompt picks the first active field missing from known. It is a pure
// function of its inputs.
func NextPrompt(flow conversation.Flow, known map[string]string) (Prompt, error) {
	spec, err := SpecFor(flow)
	if err != nil {
		return Prompt{}, err
	}
	return spec.Next(known), nil
}

// Next is NextPrompt for an already resolved spec.
func (s Spec) Next(known map[string]string) Prompt {
	i, ok := s.Missing(known)
	if !ok {
		return Prompt{Index: -1, Text: ReadyText, Ready: true}
	}
	f := s.Fields[i]
	return Prompt{
		Index: i,
		Field: f.Key,
		Text:  f.Message(known),
		UI:    model.NewUI(f.Component()),
	}
}

// Missing returns the index of the first active field without a value.
func (s Spec) Missing(known map[string]string) (int, bool) {
	for i, f := range s.Fields {
		if !f.Active(known) {
			continue
		}
		if known[f.Key] == "" {
			return i, true
		}
	}
	return 0, false
}

// Field returns the field named key.
func (s Spec) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
