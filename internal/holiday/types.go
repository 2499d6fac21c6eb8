package holiday

// Holiday is one company holiday.
type Holiday struct {
	ID          string
	Date        string // YYYY-MM-DD
	Name        string
	Type        string
	Description string
}

// Upcoming is a holiday on or after today.
type Upcoming struct {
	Holiday
	DaysUntil int
}
