package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/attendance"
	"hr-assistant/internal/attendance/repository/memory"
)

func TestFormatStatus(t *testing.T) {
	s, err := memory.New().Status(context.Background(), "user123")
	require.NoError(t, err)

	want := "📊 **Attendance Summary:**\n\n" +
		"**Overall Statistics:**\n" +
		"• Total Working Days: 22\n" +
		"• Present Days: 20\n" +
		"• Absent Days: 1\n" +
		"• Leave Days: 1\n" +
		"• Attendance Percentage: 90.9%\n" +
		"   👍 Good attendance\n" +
		"\n⚠️ **Irregularities:**\n" +
		"\n1. Date: 2024-01-15\n" +
		"   Reason: Forgot to mark attendance\n" +
		"   Status: pending_regularization\n" +
		"\n📅 **Recent Activity:**\n" +
		"• Jan 1: Present (09:15 AM - 06:30 PM)\n" +
		"• Jan 2: Present (09:00 AM - 06:45 PM)\n" +
		"• Jan 15: Irregular - Forgot to mark attendance\n"
	assert.Equal(t, want, FormatStatus(s))
}

func TestFormatStatus_Variants(t *testing.T) {
	assert.Equal(t, "📊 No attendance information available.", FormatStatus(attendance.Summary{}))

	tests := []struct {
		pct  float64
		want string
	}{
		{100, "• Attendance Percentage: 100%\n   ✅ Excellent attendance!\n"},
		{95, "   ✅ Excellent attendance!\n"},
		{85, "   👍 Good attendance\n"},
		{80.5, "• Attendance Percentage: 80.5%\n   ⚠️ Needs improvement\n"},
		{40, "   ❌ Low attendance - please contact HR\n"},
	}
	for _, tt := range tests {
		out := FormatStatus(attendance.Summary{TotalDays: 20, Percentage: tt.pct})
		assert.Contains(t, out, tt.want)
		assert.Contains(t, out, "\n✅ **No irregularities found.**\n")
		assert.NotContains(t, out, "Recent Activity")
	}

	out := FormatStatus(attendance.Summary{
		TotalDays:      1,
		Irregularities: []attendance.Irregularity{{Date: "2024-01-03"}},
		Records: []attendance.Record{
			{Date: "2024-01-01", Status: "A"}, {Date: "2024-01-02", Status: "B"}, {Date: "2024-01-03", Status: "C"},
			{Date: "2024-01-04", Status: "D"}, {Date: "2024-01-05", Status: "E"}, {Date: "bad", Status: "F", CheckIn: "09:00 AM"},
		},
	})
	assert.Contains(t, out, "   Reason: Not specified\n   Status: Pending\n")
	assert.NotContains(t, out, "Jan 1:")
	assert.Contains(t, out, "• Jan 2: B\n")
	assert.Contains(t, out, "• bad: F\n")
}

func TestFormatRegularization(t *testing.T) {
	out := FormatRegularization(attendance.RegularizeOutput{
		Regularization: attendance.Regularization{ID: "reg_1"},
		Message:        "done",
	})
	want := "✅ **Attendance Regularization Submitted Successfully!**\n\n" +
		"📋 **Request Details:**\n" +
		"• Request ID: reg_1\n" +
		"• Status: Under review with L1 Manager, Anamika\n" +
		"\n📧 You will receive a notification on Teams once your manager reviews the request.\n" +
		"\ndone"
	assert.Equal(t, want, out)

	assert.Contains(t, FormatRegularization(attendance.RegularizeOutput{}), "• Request ID: N/A\n")
}
