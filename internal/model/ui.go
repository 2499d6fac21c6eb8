package model

import "encoding/json"

// ComponentKind is the widget a client renders to collect a field.
type ComponentKind string

const (
	ComponentDatePicker ComponentKind = "datePicker"
	ComponentDropdown   ComponentKind = "dropdown"
	ComponentTextInput  ComponentKind = "textInput"
)

// DateFormat is the format date pickers emit.
const DateFormat = "YYYY-MM-DD"

// Option is one choice of a dropdown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UIComponent describes a single input widget the client should render.
type UIComponent struct {
	Kind        ComponentKind `json:"type"`
	Label       string        `json:"label"`
	Field       string        `json:"field"`
	Placeholder string        `json:"placeholder,omitempty"`
	Required    bool          `json:"required"`
	Format      string        `json:"format,omitempty"`
	Options     []Option      `json:"options,omitempty"`
}

// UI carries the widgets attached to a response, keyed by field.
type UI struct {
	HasComponents bool
	Components    map[string]UIComponent
}

// NewUI builds a UI from components, keeping HasComponents consistent.
func NewUI(components ...UIComponent) UI {
	if len(components) == 0 {
		return UI{}
	}
	m := make(map[string]UIComponent, len(components))
	for _, c := range components {
		m[c.Field] = c
	}
	return UI{HasComponents: true, Components: m}
}

// MarshalJSON flattens components next to hasComponents:
// {"hasComponents":true,"date":{...}}.
func (u UI) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Components)+1)
	for k, c := range u.Components {
		out[k] = c
	}
	out["hasComponents"] = u.HasComponents
	return json.Marshal(out)
}

// AgentResponse is the single result type every agent produces.
type AgentResponse struct {
	Text      string
	UI        UI
	Completed bool
}

// TextResponse is a plain answer without widgets.
func TextResponse(text string) AgentResponse {
	return AgentResponse{Text: text}
}

// CompletedResponse marks a flow as finished.
func CompletedResponse(text string) AgentResponse {
	return AgentResponse{Text: text, Completed: true}
}
