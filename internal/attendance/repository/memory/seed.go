package memory

import "hr-assistant/internal/attendance"

var seedSummary = attendance.Summary{
	Month:       "January",
	Year:        2024,
	TotalDays:   22,
	PresentDays: 20,
	AbsentDays:  1,
	LeaveDays:   1,
	Percentage:  90.9,
	Irregularities: []attendance.Irregularity{
		{Date: "2024-01-15", Reason: "Forgot to mark attendance", Status: "pending_regularization"},
	},
	Records: []attendance.Record{
		{Date: "2024-01-01", Status: "Present", CheckIn: "09:15 AM", CheckOut: "06:30 PM"},
		{Date: "2024-01-02", Status: "Present", CheckIn: "09:00 AM", CheckOut: "06:45 PM"},
		{Date: "2024-01-15", Status: "Irregular", Note: "Forgot to mark attendance"},
	},
}
