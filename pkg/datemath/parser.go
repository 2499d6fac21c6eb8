package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the YYYY-MM-DD layout used for every date the service stores.
const ISOLayout = "2006-01-02"

var (
	isoPattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	durationPattern = regexp.MustCompile(`^(in )?(\d+) (day|days|week|weeks|month|months)( ago)?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// Parser converts relative and ISO date strings to absolute dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of that day.
// Supported: today, tomorrow, yesterday, "in N days|weeks|months",
// "N days ago", "next <weekday>", "last <weekday>" and ISO dates.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if isoPattern.MatchString(relative) {
		return p.ParseISODate(relative)
	}
	if durationPattern.MatchString(relative) {
		return p.parseDuration(relative, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, 1)
	}
	if strings.HasPrefix(relative, "last ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "last "), baseTime, -1)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// Resolve turns expr into an ISO date string, or reports false.
func (p *Parser) Resolve(expr string, baseTime time.Time) (string, bool) {
	t, err := p.Parse(expr, baseTime)
	if err != nil {
		return "", false
	}
	return t.Format(ISOLayout), true
}

// ParseISODate parses YYYY-MM-DD and rejects impossible dates like 2024-02-30.
func (p *Parser) ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, strings.TrimSpace(s), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// parseDuration handles "in 3 days", "2 weeks", "5 days ago".
func (p *Parser) parseDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationPattern.FindStringSubmatch(relative)
	if len(matches) != 5 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[2])
	if matches[4] != "" {
		if matches[1] != "" {
			return baseTime, fmt.Errorf("invalid duration format: %q", relative)
		}
		amount = -amount
	}

	switch unit := matches[3]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday finds the next (dir=1) or previous (dir=-1) occurrence of a
// weekday, never the base day itself.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, dir int) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	current := baseTime.In(p.location).Weekday()
	days := int(target - current)
	if dir > 0 {
		if days <= 0 {
			days += 7
		}
	} else {
		if days >= 0 {
			days -= 7
		}
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, days)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// DaysUntil counts calendar days from base to target, negative when target is past.
func (p *Parser) DaysUntil(target, base time.Time) int {
	from := p.StartOfDay(base)
	to := p.StartOfDay(target)
	// Round to absorb DST shifts.
	return int(to.Sub(from).Round(24*time.Hour).Hours() / 24)
}

// ParseMonth maps an English month name to time.Month.
func ParseMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
