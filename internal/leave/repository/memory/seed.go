package memory

import "hr-assistant/internal/leave"

// Every user starts from the same demo data until a real HR system is wired in.
var seedBalances = []leave.Balance{
	{Type: "Casual Leave (CL)", Total: 12, Used: 3, Available: 9},
	{Type: "Sick Leave (SL)", Total: 10, Used: 2, Available: 8},
	{Type: "Privilege Leave (PL)", Total: 15, Used: 5, Available: 10},
	{Type: "Compensatory Off", Total: 5, Used: 1, Available: 4},
}

var seedPending = []leave.Application{
	{
		ID:          "leave_001",
		Type:        "Casual Leave",
		FromDate:    "2024-02-15",
		ToDate:      "2024-02-16",
		Reason:      "Personal work",
		Status:      leave.StatusPendingApproval,
		AppliedDate: "2024-02-10",
	},
	{
		ID:          "leave_002",
		Type:        "Sick Leave",
		FromDate:    "2024-02-20",
		ToDate:      "2024-02-20",
		Reason:      "Medical appointment",
		Status:      leave.StatusPendingApproval,
		AppliedDate: "2024-02-12",
	},
}
