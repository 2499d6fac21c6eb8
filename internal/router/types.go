package router

// Intent is the domain a query belongs to.
type Intent string

const (
	IntentLeave      Intent = "leave"
	IntentHoliday    Intent = "holiday"
	IntentAttendance Intent = "attendance"
	IntentGeneral    Intent = "general"
)

// Source records which stage produced an intent.
type Source string

const (
	SourceKeyword  Source = "keyword"
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"

	// SourceFlow marks a turn routed to the owner of the user's open flow.
	SourceFlow Source = "flow"
)

// RouterOutput is the classification result.
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
	Source     Source `json:"source"`
}
