// Package prefs holds the dashboard preference store: the selected company,
// view, time range and theme, persisted to a durable key-value slot.
package prefs

import (
	"fmt"
	"strings"
)

// Company selects which dataset and dashboard group is shown.
type Company string

const (
	CompanyWellBefore  Company = "wellbefore"
	CompanyD2CBuilders Company = "d2cbuilders"
	CompanyPortfolio   Company = "portfolio"
)

// Companies returns the companies in shortcut order (1, 2, 3).
func Companies() []Company {
	return []Company{CompanyWellBefore, CompanyD2CBuilders, CompanyPortfolio}
}

// View selects the executive or operator perspective.
type View string

const (
	ViewExecutive View = "executive"
	ViewOperator  View = "operator"
)

// Views returns the supported views.
func Views() []View {
	return []View{ViewExecutive, ViewOperator}
}

// TimeRange selects which metric window is displayed.
type TimeRange string

const (
	RangeToday     TimeRange = "today"
	RangeYesterday TimeRange = "yesterday"
	RangeWeek      TimeRange = "week"
	RangeMonth     TimeRange = "month"
	RangeQuarter   TimeRange = "quarter"
	RangeYear      TimeRange = "year"
)

// TimeRanges returns the time ranges in display order.
func TimeRanges() []TimeRange {
	return []TimeRange{RangeToday, RangeYesterday, RangeWeek, RangeMonth, RangeQuarter, RangeYear}
}

// Label returns the human label used in headers and exports.
func (r TimeRange) Label() string {
	switch r {
	case RangeToday:
		return "Today"
	case RangeYesterday:
		return "Yesterday"
	case RangeWeek:
		return "This Week"
	case RangeMonth:
		return "This Month"
	case RangeQuarter:
		return "This Quarter"
	case RangeYear:
		return "This Year"
	default:
		return string(r)
	}
}

// State is a complete preference snapshot.
type State struct {
	Company   Company   `json:"company"`
	View      View      `json:"view"`
	TimeRange TimeRange `json:"timeRange"`
	DarkMode  bool      `json:"darkMode"`
}

// DefaultState returns the snapshot used when nothing valid is persisted.
func DefaultState(darkMode bool) State {
	return State{
		Company:   CompanyWellBefore,
		View:      ViewExecutive,
		TimeRange: RangeMonth,
		DarkMode:  darkMode,
	}
}

// ParseCompany parses a company identifier.
func ParseCompany(value string) (Company, error) {
	c := Company(normalize(value))
	for _, known := range Companies() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown company %q (expected wellbefore, d2cbuilders or portfolio)", value)
}

// ParseView parses a view identifier.
func ParseView(value string) (View, error) {
	v := View(normalize(value))
	for _, known := range Views() {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q (expected executive or operator)", value)
}

// ParseTimeRange parses a time range identifier.
func ParseTimeRange(value string) (TimeRange, error) {
	r := TimeRange(normalize(value))
	for _, known := range TimeRanges() {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown time range %q (expected one of today, yesterday, week, month, quarter, year)", value)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
