package flow

import "hr-assistant/internal/conversation"

const (
	ApologyRegularization   = "Sorry, I encountered an error while processing your attendance regularization request. Please try again or contact HR support."
	ApologyLeaveApplication = "Sorry, I encountered an error while processing your leave application. Please try again or contact HR support."
	apologyGeneric          = "Sorry, I encountered an error while processing your request. Please try again or contact HR support."
)

const logPrefix = "flow.Engine"

// Apology is the fixed text returned when flow errors out.
func Apology(f conversation.Flow) string {
	switch f {
	case conversation.FlowRegularization:
		return ApologyRegularization
	case conversation.FlowLeaveApplication:
		return ApologyLeaveApplication
	default:
		return apologyGeneric
	}
}
