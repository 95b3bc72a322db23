package kpi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a dollar amount. Compact output abbreviates
// thousands and millions ($812.4K, $8.4M).
func FormatCurrency(v float64, compact bool) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case compact && v >= 1_000_000:
		return sign + "$" + trimZero(v/1_000_000, 1) + "M"
	case compact && v >= 1_000:
		return sign + "$" + trimZero(v/1_000, 1) + "K"
	case v >= 1_000:
		return sign + "$" + humanize.Comma(int64(math.Round(v)))
	default:
		return sign + "$" + humanize.FormatFloat("#,###.##", v)
	}
}

// FormatPercentChange renders a signed change such as +3.2% or -1.8%.
func FormatPercentChange(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatPercentPlain renders an unsigned percentage such as 62.1%.
func FormatPercentPlain(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders an integer count with thousands separators.
func FormatCount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Format renders v according to unit.
func Format(unit Unit, v float64) string {
	switch unit {
	case UnitCurrency:
		return FormatCurrency(v, false)
	case UnitPercent:
		if math.Abs(v) < 1 && v != 0 {
			return fmt.Sprintf("%.2f%%", v)
		}
		return FormatPercentPlain(v)
	case UnitCount:
		return FormatCount(v)
	case UnitRatio:
		return fmt.Sprintf("%.1f:1", v)
	case UnitDays:
		if v == 1 {
			return "1 day"
		}
		return trimZero(v, 1) + " days"
	default:
		return trimZero(v, 2)
	}
}

// FormatCompact renders v for narrow cards; currency is abbreviated.
func FormatCompact(unit Unit, v float64) string {
	if unit == UnitCurrency && math.Abs(v) >= 10_000 {
		return FormatCurrency(v, true)
	}
	return Format(unit, v)
}

func trimZero(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
