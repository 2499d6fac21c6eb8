package attendance

import "time"

// StatusPending is the status of a freshly submitted regularization.
const StatusPending = "pending"

// Record is one day of the attendance log.
type Record struct {
	Date     string
	Status   string
	CheckIn  string
	CheckOut string
	Note     string
}

// Irregularity is a day that needs the employee's attention.
type Irregularity struct {
	Date   string
	Reason string
	Status string
}

// Summary is the monthly attendance status of a user.
type Summary struct {
	UserID         string
	Month          string
	Year           int
	TotalDays      int
	PresentDays    int
	AbsentDays     int
	LeaveDays      int
	Percentage     float64
	Irregularities []Irregularity
	Records        []Record
}

// RegularizeInput holds the fields collected by the regularization flow.
type RegularizeInput struct {
	Date         string
	Reason       string
	CustomReason string
}

// Regularization is a submitted correction request.
type Regularization struct {
	ID          string
	UserID      string
	Date        string
	Reason      string
	Status      string
	SubmittedAt time.Time
}

// RegularizeOutput is the outcome shown to the user.
type RegularizeOutput struct {
	Regularization Regularization
	Message        string
}

// Empty reports whether s carries no attendance information at all.
func (s Summary) Empty() bool {
	return s.TotalDays == 0 && len(s.Irregularities) == 0 && len(s.Records) == 0
}
