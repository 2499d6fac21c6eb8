package agent

const (
	statusPrompt = "You are an HR assistant helping with attendance-related queries. Here is the user's attendance information:\n\n%s\n\n" +
		"When the user asks about their attendance, provide a friendly, conversational response that naturally incorporates this information. " +
		"Present the data in a clear, easy-to-read format within your response. Be helpful and professional. " +
		"Do NOT just repeat the raw data - explain it in a conversational way and format it nicely."

	confirmationPrompt = "You are an HR assistant. The user just completed an attendance regularization request. Provide a friendly confirmation."

	dataSeparator = "\n\n---\n\n"
	logPrefix     = "attendance.agent"
)
