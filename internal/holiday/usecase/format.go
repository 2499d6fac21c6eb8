package usecase

import (
	"fmt"
	"strings"
	"time"

	"hr-assistant/internal/holiday"
	"hr-assistant/pkg/datemath"
)

// Tips is appended to the data when no model is available.
const Tips = "\n\n💡 **Tip:** You can ask me:\n" +
	"- \"Show me all holidays\"\n" +
	"- \"What holidays are in December?\"\n" +
	"- \"Upcoming holidays\""

// FormatList renders holidays under title.
func FormatList(holidays []holiday.Holiday, title string) string {
	if len(holidays) == 0 {
		return fmt.Sprintf("📅 No %s found.", strings.ToLower(title))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 **%s:**\n\n", title)
	for i, h := range holidays {
		fmt.Fprintf(&sb, "%d. **%s**\n", i+1, h.Name)
		if d, err := time.Parse(datemath.ISOLayout, h.Date); err == nil {
			fmt.Fprintf(&sb, "   📅 Date: %s (%s)\n", d.Format("January 2, 2006"), d.Weekday())
		} else {
			fmt.Fprintf(&sb, "   📅 Date: %s\n", h.Date)
		}
		if h.Type != "" {
			fmt.Fprintf(&sb, "   🏷️ Type: %s\n", h.Type)
		}
		if h.Description != "" {
			fmt.Fprintf(&sb, "   📝 %s\n", h.Description)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatUpcoming renders upcoming holidays with a countdown.
func FormatUpcoming(holidays []holiday.Upcoming) string {
	if len(holidays) == 0 {
		return "📅 No upcoming holidays found."
	}

	var sb strings.Builder
	sb.WriteString("📅 **Upcoming Holidays:**\n\n")
	for i, h := range holidays {
		fmt.Fprintf(&sb, "%d. **%s**\n", i+1, h.Name)
		if d, err := time.Parse(datemath.ISOLayout, h.Date); err == nil {
			fmt.Fprintf(&sb, "   📅 %s\n", d.Format("Monday, January 2, 2006"))
		} else {
			fmt.Fprintf(&sb, "   📅 %s\n", h.Date)
		}
		switch {
		case h.DaysUntil == 1:
			sb.WriteString("   ⏰ 1 day from now\n")
		case h.DaysUntil > 1:
			fmt.Fprintf(&sb, "   ⏰ %d days from now\n", h.DaysUntil)
		case h.DaysUntil == 0:
			sb.WriteString("   🎉 Today!\n")
		}
		if h.Type != "" {
			fmt.Fprintf(&sb, "   🏷️ %s\n", h.Type)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
