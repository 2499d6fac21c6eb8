package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hr-assistant/internal/attendance"
	"hr-assistant/pkg/datemath"
)

// Tips is appended to the data when no model is available.
const Tips = "\n\n💡 **Tip:** You can ask me:\n" +
	"- \"Check my attendance status\"\n" +
	"- \"Regularize attendance for [date], reason: [reason]\"\n" +
	"- \"Show attendance records\""

const recentRecords = 5

// FormatStatus renders the attendance summary.
func FormatStatus(s attendance.Summary) string {
	if s.Empty() {
		return "📊 No attendance information available."
	}

	var sb strings.Builder
	sb.WriteString("📊 **Attendance Summary:**\n\n")
	sb.WriteString("**Overall Statistics:**\n")
	fmt.Fprintf(&sb, "• Total Working Days: %d\n", s.TotalDays)
	fmt.Fprintf(&sb, "• Present Days: %d\n", s.PresentDays)
	fmt.Fprintf(&sb, "• Absent Days: %d\n", s.AbsentDays)
	fmt.Fprintf(&sb, "• Leave Days: %d\n", s.LeaveDays)
	fmt.Fprintf(&sb, "• Attendance Percentage: %s%%\n", strconv.FormatFloat(s.Percentage, 'f', -1, 64))
	sb.WriteString(rating(s.Percentage))

	if len(s.Irregularities) > 0 {
		sb.WriteString("\n⚠️ **Irregularities:**\n")
		for i, irr := range s.Irregularities {
			fmt.Fprintf(&sb, "\n%d. Date: %s\n", i+1, irr.Date)
			fmt.Fprintf(&sb, "   Reason: %s\n", orDefault(irr.Reason, "Not specified"))
			fmt.Fprintf(&sb, "   Status: %s\n", orDefault(irr.Status, "Pending"))
		}
	} else {
		sb.WriteString("\n✅ **No irregularities found.**\n")
	}

	if len(s.Records) > 0 {
		sb.WriteString("\n📅 **Recent Activity:**\n")
		records := s.Records
		if len(records) > recentRecords {
			records = records[len(records)-recentRecords:]
		}
		for _, r := range records {
			fmt.Fprintf(&sb, "• %s: %s", shortDate(r.Date), r.Status)
			if r.CheckIn != "" && r.CheckOut != "" {
				fmt.Fprintf(&sb, " (%s - %s)", r.CheckIn, r.CheckOut)
			}
			if r.Note != "" {
				fmt.Fprintf(&sb, " - %s", r.Note)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FormatRegularization is the confirmation of a submitted regularization.
func FormatRegularization(out attendance.RegularizeOutput) string {
	var sb strings.Builder
	sb.WriteString("✅ **Attendance Regularization Submitted Successfully!**\n\n")
	sb.WriteString("📋 **Request Details:**\n")
	fmt.Fprintf(&sb, "• Request ID: %s\n", orDefault(out.Regularization.ID, "N/A"))
	sb.WriteString("• Status: Under review with L1 Manager, Anamika\n")
	sb.WriteString("\n📧 You will receive a notification on Teams once your manager reviews the request.\n")
	if out.Message != "" {
		sb.WriteString("\n")
		sb.WriteString(out.Message)
	}
	return sb.String()
}

func rating(pct float64) string {
	switch {
	case pct >= 95:
		return "   ✅ Excellent attendance!\n"
	case pct >= 85:
		return "   👍 Good attendance\n"
	case pct >= 75:
		return "   ⚠️ Needs improvement\n"
	default:
		return "   ❌ Low attendance - please contact HR\n"
	}
}

// shortDate renders 2024-01-05 as "Jan 5".
func shortDate(iso string) string {
	t, err := time.Parse(datemath.ISOLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
