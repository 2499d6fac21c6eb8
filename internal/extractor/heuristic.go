package extractor

import (
	"regexp"
	"strings"
)

var (
	isoDatePattern   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	reasonPattern    = regexp.MustCompile(`(?i)reason[:\s]+(.+?)(?:\n|$)`)
	leaveTypePattern = regexp.MustCompile(`(?i)(casual|sick|privilege|compensatory|maternity|paternity|emergency)\s*leave`)
)

var leaveTypes = map[string]string{
	"casual":       "casual_leave",
	"sick":         "sick_leave",
	"privilege":    "privilege_leave",
	"compensatory": "compensatory_off",
	"maternity":    "maternity_leave",
	"paternity":    "paternity_leave",
	"emergency":    "emergency_leave",
}

// HeuristicStrategy pulls dates, a reason and a leave type out of prose.
type HeuristicStrategy struct{}

func (HeuristicStrategy) Name() string { return StrategyHeuristic }

func (HeuristicStrategy) Parse(query string) map[string]string {
	out := map[string]string{}

	dates := isoDatePattern.FindAllString(query, -1)
	if len(dates) > 0 {
		out["date"] = dates[0]
	}
	// A range needs two dates; a single date stays ambiguous.
	if len(dates) >= 2 {
		out["fromDate"] = dates[0]
		out["toDate"] = dates[1]
	}

	if m := reasonPattern.FindStringSubmatch(query); m != nil {
		if reason := strings.TrimSpace(m[1]); reason != "" {
			out["reason"] = reason
		}
	}

	if m := leaveTypePattern.FindStringSubmatch(query); m != nil {
		out["leaveType"] = leaveTypes[strings.ToLower(m[1])]
	}

	return out
}
