package agent

import "regexp"

const (
	systemPrompt = "You are an HR assistant helping with holiday-related queries. Here is the holiday information in a formatted way:\n\n%s\n\n" +
		"When the user asks about holidays, upcoming holidays, or specific months, use this data to provide accurate, helpful responses. " +
		"Be conversational and friendly. If they ask to see data, you can reference this formatted information."

	dataSeparator = "\n\n---\n\n"
	logPrefix     = "holiday.agent"

	nextLimit    = 5
	defaultLimit = 10
)

var (
	upcomingKeywords = []string{"upcoming", "next"}
	allKeywords      = []string{"all", "list", "calendar"}
	showDataKeywords = []string{"show", "list", "what", "when", "holiday", "calendar"}

	monthPattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
)
