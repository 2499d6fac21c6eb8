package model

import (
	"encoding/json"
	"testing"
)

func TestUIMarshalJSON(t *testing.T) {
	t.Run("flattens components", func(t *testing.T) {
		ui := NewUI(UIComponent{Kind: ComponentDatePicker, Label: "Select Date", Field: "date", Required: true, Format: DateFormat})

		b, err := json.Marshal(ui)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var got map[string]json.RawMessage
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if string(got["hasComponents"]) != "true" {
			t.Errorf("hasComponents = %s", got["hasComponents"])
		}
		var date UIComponent
		if err := json.Unmarshal(got["date"], &date); err != nil {
			t.Fatalf("date component: %v", err)
		}
		if date.Kind != ComponentDatePicker || date.Format != DateFormat {
			t.Errorf("unexpected component: %+v", date)
		}
	})

	t.Run("empty ui", func(t *testing.T) {
		b, _ := json.Marshal(NewUI())
		if string(b) != `{"hasComponents":false}` {
			t.Errorf("got %s", b)
		}
	})
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleModel, RoleSystem} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("assistant").Valid() {
		t.Error("assistant is not an accepted wire role")
	}
}
