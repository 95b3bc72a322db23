// Package kpi holds the static sample KPI datasets and the formatting and
// roll-up helpers used by the dashboards.
package kpi

import (
	"github.com/emagineer/kpiboard/internal/prefs"
)

// Unit describes how a KPI value is formatted.
type Unit int

const (
	UnitCurrency Unit = iota
	UnitPercent
	UnitCount
	UnitRatio
	UnitDays
)

// Audience controls which view shows a KPI.
type Audience int

const (
	AudienceBoth Audience = iota
	AudienceExecutive
	AudienceOperator
)

// Shows reports whether a KPI with this audience appears in view.
func (a Audience) Shows(view prefs.View) bool {
	switch a {
	case AudienceExecutive:
		return view == prefs.ViewExecutive
	case AudienceOperator:
		return view == prefs.ViewOperator
	default:
		return true
	}
}

// Metric is a value for one window together with the prior window.
type Metric struct {
	Current  float64
	Previous float64
}

// ChangePercent returns the change against the previous window.
func (m Metric) ChangePercent() float64 {
	if m.Previous == 0 {
		return 0
	}
	return (m.Current - m.Previous) / m.Previous * 100
}

// KPI is one tracked indicator with a value per time range.
type KPI struct {
	Key      string
	Label    string
	Unit     Unit
	Audience Audience
	// LowerIsBetter flips the good/bad reading of a change.
	LowerIsBetter bool
	Windows       map[prefs.TimeRange]Metric
}

// At returns the metric for r. Unknown ranges fall back to the month window.
func (k KPI) At(r prefs.TimeRange) Metric {
	if m, ok := k.Windows[r]; ok {
		return m
	}
	return k.Windows[prefs.RangeMonth]
}

// Improving reports whether the change for r moves in the desired direction.
func (k KPI) Improving(r prefs.TimeRange) bool {
	change := k.At(r).ChangePercent()
	if k.LowerIsBetter {
		return change <= 0
	}
	return change >= 0
}

// Target tracks month-to-date progress toward a goal.
type Target struct {
	Key     string
	Label   string
	Unit    Unit
	Current float64
	Goal    float64
	// LowerIsBetter targets are complete when Current is at or below Goal.
	LowerIsBetter bool
}

// PercentComplete returns progress toward the goal.
func (t Target) PercentComplete() float64 {
	if t.LowerIsBetter {
		if t.Current == 0 {
			return 100
		}
		return t.Goal / t.Current * 100
	}
	if t.Goal == 0 {
		return 0
	}
	return t.Current / t.Goal * 100
}

// InsightType classifies an insight by severity.
type InsightType string

const (
	InsightCritical InsightType = "critical"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
	InsightSuccess  InsightType = "success"
)

// Insight is a short finding attached to a company or the portfolio.
type Insight struct {
	Type    InsightType
	Title   string
	Detail  string
	Company prefs.Company
}

// InsightCounts tallies insights by type.
type InsightCounts struct {
	Critical int
	Warning  int
	Info     int
	Success  int
}

// CountInsights tallies insights by type.
func CountInsights(insights []Insight) InsightCounts {
	var c InsightCounts
	for _, in := range insights {
		switch in.Type {
		case InsightCritical:
			c.Critical++
		case InsightWarning:
			c.Warning++
		case InsightInfo:
			c.Info++
		case InsightSuccess:
			c.Success++
		}
	}
	return c
}

// Company is the dataset for one business.
type Company struct {
	ID       prefs.Company
	Name     string
	Tagline  string
	Short    string
	KPIs     []KPI
	Targets  []Target
	Trend    []float64
	Insights []Insight
	// CashPosition is the current cash balance.
	CashPosition float64
}

// KPI returns the KPI with key.
func (c *Company) KPI(key string) (KPI, bool) {
	for _, k := range c.KPIs {
		if k.Key == key {
			return k, true
		}
	}
	return KPI{}, false
}

// Target returns the target with key.
func (c *Company) Target(key string) (Target, bool) {
	for _, t := range c.Targets {
		if t.Key == key {
			return t, true
		}
	}
	return Target{}, false
}

// Visible returns the KPIs shown in view, in declaration order.
func (c *Company) Visible(view prefs.View) []KPI {
	out := make([]KPI, 0, len(c.KPIs))
	for _, k := range c.KPIs {
		if k.Audience.Shows(view) {
			out = append(out, k)
		}
	}
	return out
}

// Dataset bundles both companies plus portfolio-level insights.
type Dataset struct {
	WellBefore        *Company
	D2CBuilders       *Company
	PortfolioInsights []Insight
}

// Company returns the dataset for id, or nil for the portfolio or unknown ids.
func (d Dataset) Company(id prefs.Company) *Company {
	switch id {
	case prefs.CompanyWellBefore:
		return d.WellBefore
	case prefs.CompanyD2CBuilders:
		return d.D2CBuilders
	default:
		return nil
	}
}

// DisplayName returns the header name for a company selection.
func DisplayName(id prefs.Company) string {
	switch id {
	case prefs.CompanyWellBefore:
		return "WellBefore"
	case prefs.CompanyD2CBuilders:
		return "D2C Builders"
	case prefs.CompanyPortfolio:
		return "Portfolio"
	default:
		return string(id)
	}
}

// HeaderTagline returns the short revenue label shown next to the name.
func HeaderTagline(id prefs.Company) string {
	switch id {
	case prefs.CompanyWellBefore:
		return "$10M DTC"
	case prefs.CompanyD2CBuilders:
		return "$2M 3PL"
	case prefs.CompanyPortfolio:
		return "Combined"
	default:
		return ""
	}
}
