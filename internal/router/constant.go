package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// PromptClassify asks the model for a single label.
const PromptClassify = `Analyze this query and respond with only one word: "leave", "holiday", or "attendance". Query: %s`

// Router configuration
const (
	RouterTemperature        = 0.1
	RouterMaxTokens          = 10
	RouterFallbackIntent     = IntentGeneral
	RouterFallbackConfidence = 50
	KeywordConfidence        = 100
	LLMConfidence            = 80
)

// Fallback reasons
const (
	ReasonKeyword        = "matched keyword %q"
	ReasonLLM            = "classified by model"
	ReasonNoGenerator    = "no keyword match and no model configured"
	ReasonLLMFailed      = "model call failed"
	ReasonUnexpectedText = "model answered outside the label set"
	ReasonActiveFlow     = "continuing %s flow"
)

type keywordGroup struct {
	intent   Intent
	keywords []string
}

// keywordTable is checked in order; the first group with a hit wins.
var keywordTable = []keywordGroup{
	{IntentLeave, []string{"leave", "pending leave", "leave balance", "casual leave", "sick leave", "privilege leave"}},
	{IntentHoliday, []string{"holiday", "holidays", "public holiday", "company holiday"}},
	{IntentAttendance, []string{"attendance", "regularize", "regularization", "mark attendance", "attendance status"}},
}
