package form

import (
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/model"
)

// Field is one input a flow collects.
type Field struct {
	Key         string
	Label       string
	Kind        model.ComponentKind
	Placeholder string
	// Required is what the widget advertises; the flow asks for the field either way.
	Required bool
	Options  []model.Option
	// When gates conditional fields. Nil means always asked.
	When func(known map[string]string) bool
	// Message is the progress text shown while this field is awaited.
	Message func(known map[string]string) string
}

// Active reports whether the field applies given what is known.
func (f Field) Active(known map[string]string) bool {
	return f.When == nil || f.When(known)
}

// Component is the widget descriptor for the field.
func (f Field) Component() model.UIComponent {
	c := model.UIComponent{
		Kind:        f.Kind,
		Label:       f.Label,
		Field:       f.Key,
		Placeholder: f.Placeholder,
		Required:    f.Required,
		Options:     f.Options,
	}
	if f.Kind == model.ComponentDatePicker {
		c.Format = model.DateFormat
	}
	return c
}

// Spec is the ordered, immutable field list of a flow.
type Spec struct {
	Flow   conversation.Flow
	Fields []Field
}

// Prompt is what the builder decided for the current turn.
type Prompt struct {
	// Index is the position of Field in Spec.Fields, -1 when Ready.
	Index int
	Field string
	Text  string
	UI    model.UI
	Ready bool
}
