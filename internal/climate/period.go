package climate

import (
	"fmt"
	"strings"
)

// Period selects which of the two fixed datasets is active.
type Period string

const (
	PeriodRecent Period = "recent"
	PeriodNormal Period = "normal"
)

func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recent":
		return PeriodRecent, nil
	case "normal":
		return PeriodNormal, nil
	default:
		return "", fmt.Errorf("invalid period %q (allowed: recent, normal)", s)
	}
}

// Label is the human readable description of the period.
func (p Period) Label() string {
	if p == PeriodNormal {
		return "30-Year Climate Normal (1991-2020)"
	}
	return "Recent 5-Year Data (2020-2024)"
}

// Toggle returns the other period.
func (p Period) Toggle() Period {
	if p == PeriodNormal {
		return PeriodRecent
	}
	return PeriodNormal
}
