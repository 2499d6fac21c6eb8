package leave

// StatusPendingApproval is the status of a freshly submitted application.
const StatusPendingApproval = "Pending Approval"

// Balance is the allowance of one leave type.
type Balance struct {
	Type      string
	Total     int
	Used      int
	Available int
}

// Application is a leave request awaiting or past approval.
type Application struct {
	ID          string
	Type        string
	FromDate    string
	ToDate      string
	Reason      string
	Status      string
	AppliedDate string
}

// Summary is what a balance query shows.
type Summary struct {
	Balances []Balance
	Pending  []Application
}

// ApplyInput holds the fields collected by the leave application flow.
type ApplyInput struct {
	LeaveType string
	FromDate  string
	ToDate    string
	Reason    string
}
