package teams

import "time"

// Regularization is the record announced to the approver channel.
type Regularization struct {
	ID          string
	UserID      string
	Date        string
	Reason      string
	Status      string
	SubmittedAt time.Time
}

// MessageCard is the legacy Office 365 connector card accepted by incoming webhooks.
type MessageCard struct {
	Type            string          `json:"@type"`
	Context         string          `json:"@context"`
	Summary         string          `json:"summary"`
	ThemeColor      string          `json:"themeColor"`
	Title           string          `json:"title"`
	Sections        []Section       `json:"sections"`
	PotentialAction []OpenURIAction `json:"potentialAction,omitempty"`
}

// Section is one block of a MessageCard.
type Section struct {
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle"`
	Facts            []Fact `json:"facts"`
	Markdown         bool   `json:"markdown"`
}

// Fact is a name/value row.
type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OpenURIAction is a button opening a link.
type OpenURIAction struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}
