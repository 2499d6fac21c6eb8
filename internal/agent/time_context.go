package agent

import (
	"fmt"
	"time"
)

const (
	DateFormatISO = "2006-01-02"

	timeContextTemplate = "\n\nCurrent date: %s (%s). This week runs from %s to %s. Tomorrow is %s. Use YYYY-MM-DD for dates."
)

// buildTimeContext anchors relative dates ("tomorrow", "this week") for the model.
func buildTimeContext(now time.Time) string {
	// Calculate week boundaries (Monday-Sunday)
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
	)
}
