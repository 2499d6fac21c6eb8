package orchestrator

// Log prefixes
const (
	LogPrefixRoute = "internal.agent.orchestrator.Route"
)

// SystemPromptGeneral is the preamble for queries outside the HR domains.
const SystemPromptGeneral = `You are a helpful HR assistant chatbot. You help employees with:
- Leave management (balance, applications, policies)
- Holiday information (calendar, upcoming holidays)
- Attendance tracking and regularization

Be friendly, conversational, and helpful. If the user asks about something outside these topics, politely guide them back to HR-related queries.`

// HelpText is returned when no model can answer a general query.
const HelpText = "I'm here to help you with:\n\n" +
	"📋 **Leaves** - Check your leave balance, pending leaves, and apply for leaves\n" +
	"📅 **Holidays** - View company holidays, upcoming holidays, and holiday calendar\n" +
	"⏰ **Attendance** - Check attendance status and regularize attendance\n\n" +
	"Please ask me about leaves, holidays, or attendance. For example:\n" +
	"- 'What are my pending leaves?'\n" +
	"- 'Show me upcoming holidays'\n" +
	"- 'Regularize attendance for 2024-01-15'"

// ApologyText is the last resort answer.
const ApologyText = "I apologize, but I encountered an error processing your request. Please try rephrasing your question or contact support if the issue persists."
