package usecase

import (
	"fmt"
	"math"
	"strings"

	"hr-assistant/internal/leave"
)

// Tips is appended to the data when no model is available.
const Tips = "\n\n💡 **Tip:** You can ask me about:\n" +
	"- \"What are my pending leaves?\"\n" +
	"- \"Show my leave balance\"\n" +
	"- \"How to apply for leave?\""

// FormatSummary renders balance and pending applications.
func FormatSummary(s leave.Summary) string {
	if len(s.Balances) == 0 {
		return "No leave information available."
	}

	var sb strings.Builder
	sb.WriteString("📋 **Leave Information:**\n\n")
	sb.WriteString("**Leave Balance:**\n")
	for _, b := range s.Balances {
		fmt.Fprintf(&sb, "• **%s**: %d days available out of %d days (%d%% remaining)\n",
			b.Type, b.Available, b.Total, remainingPercent(b))
	}

	if len(s.Pending) == 0 {
		sb.WriteString("\n✅ **No pending leave applications.**\n")
		return sb.String()
	}

	sb.WriteString("\n⏳ **Pending Leave Applications:**\n")
	for i, app := range s.Pending {
		fmt.Fprintf(&sb, "\n%d. **%s**\n", i+1, app.Type)
		fmt.Fprintf(&sb, "   📅 Dates: %s to %s\n", app.FromDate, app.ToDate)
		fmt.Fprintf(&sb, "   📝 Reason: %s\n", orDefault(app.Reason, "Not specified"))
		fmt.Fprintf(&sb, "   📊 Status: %s\n", app.Status)
		fmt.Fprintf(&sb, "   📆 Applied: %s\n", orDefault(app.AppliedDate, "N/A"))
	}
	return sb.String()
}

// FormatApplication is the confirmation of a submitted application.
func FormatApplication(app leave.Application) string {
	var sb strings.Builder
	sb.WriteString("✅ **Leave Application Submitted Successfully!**\n\n")
	sb.WriteString("📋 **Application Details:**\n")
	fmt.Fprintf(&sb, "• Leave Type: %s\n", app.Type)
	fmt.Fprintf(&sb, "• From Date: %s\n", app.FromDate)
	fmt.Fprintf(&sb, "• To Date: %s\n", app.ToDate)
	if app.Reason != "" {
		fmt.Fprintf(&sb, "• Reason: %s\n", app.Reason)
	}
	sb.WriteString("• Status: Pending Approval\n\n")
	sb.WriteString("📧 You will receive a notification once your manager reviews the request.")
	return sb.String()
}

func remainingPercent(b leave.Balance) int {
	if b.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(b.Available) / float64(b.Total) * 100))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
