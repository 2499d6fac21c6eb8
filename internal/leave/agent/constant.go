package agent

const (
	systemPrompt = "You are an HR assistant helping with leave-related queries. Here is the current leave information in a formatted way:\n\n%s\n\n" +
		"When the user asks about their leaves, balance, or pending applications, use this data to provide accurate, helpful responses. " +
		"Be conversational and friendly. If they ask to see data, you can reference this formatted information."

	dataSeparator = "\n\n---\n\n"
	logPrefix     = "leave.agent"
)

// showDataKeywords make the formatted data follow the model's answer.
var showDataKeywords = []string{"balance", "pending", "leave", "show", "list", "what", "how many"}
