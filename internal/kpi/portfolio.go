package kpi

import (
	"math"

	"github.com/emagineer/kpiboard/internal/prefs"
)

// D2CCashEstimate is added to WellBefore's cash for the combined position.
const D2CCashEstimate = 350_000

// maxWarnings caps the warnings surfaced on the portfolio view.
const maxWarnings = 4

// Portfolio is the combined view of both companies.
type Portfolio struct {
	// Revenue is the combined revenue per time range.
	Revenue map[prefs.TimeRange]float64
	// NetProfit is the combined net profit for the month.
	NetProfit    float64
	Cash         float64
	RunwayMonths int

	WellBeforeHealth int
	D2CHealth        int
	Health           int

	Critical []Insight
	Warnings []Insight
	Counts   InsightCounts
}

// Summarize rolls both companies up into the portfolio view.
func Summarize(d Dataset) Portfolio {
	wb, d2c := d.WellBefore, d.D2CBuilders

	p := Portfolio{Revenue: make(map[prefs.TimeRange]float64)}
	wbRev, _ := wb.KPI("revenue")
	d2cRev, _ := d2c.KPI("revenue")
	for _, r := range prefs.TimeRanges() {
		p.Revenue[r] = wbRev.At(r).Current + d2cRev.At(r).Current
	}

	wbProfit, _ := wb.KPI("net_profit")
	d2cProfit, _ := d2c.KPI("net_profit")
	p.NetProfit = wbProfit.At(prefs.RangeMonth).Current + d2cProfit.At(prefs.RangeMonth).Current
	p.Cash = wb.CashPosition + D2CCashEstimate
	p.RunwayMonths = Runway(p.Cash, p.NetProfit)

	p.WellBeforeHealth = WellBeforeHealth(wb)
	p.D2CHealth = D2CHealth(d2c)
	p.Health = PortfolioHealth(p.WellBeforeHealth, p.D2CHealth)

	all := make([]Insight, 0, len(wb.Insights)+len(d2c.Insights)+len(d.PortfolioInsights))
	all = append(all, wb.Insights...)
	all = append(all, d2c.Insights...)
	all = append(all, d.PortfolioInsights...)
	for _, in := range all {
		switch in.Type {
		case InsightCritical:
			p.Critical = append(p.Critical, in)
		case InsightWarning:
			if len(p.Warnings) < maxWarnings {
				p.Warnings = append(p.Warnings, in)
			}
		}
	}
	p.Counts = CountInsights(all)
	return p
}

// Runway estimates months of cash assuming half of monthly profit is burned.
func Runway(cash, monthlyProfit float64) int {
	burn := monthlyProfit * 0.5
	if burn <= 0 {
		return 0
	}
	return int(math.Round(cash / burn))
}

// WellBeforeHealth weights revenue and margin progress, a fixed full
// customer score and the on-time shipping rate.
func WellBeforeHealth(c *Company) int {
	rev, _ := c.Target("revenue")
	gm, _ := c.Target("gross_margin")
	onTime, _ := c.KPI("on_time_rate")
	score := rev.PercentComplete()*0.3 +
		gm.PercentComplete()*0.25 +
		100*0.25 +
		onTime.At(prefs.RangeMonth).Current*0.2
	return clampScore(math.Round(score))
}

// D2CHealth weights revenue, on-time, margin and error-rate progress.
func D2CHealth(c *Company) int {
	rev, _ := c.Target("revenue")
	onTime, _ := c.Target("on_time_rate")
	gm, _ := c.Target("gross_margin")
	errRate, _ := c.Target("error_rate")
	score := rev.PercentComplete()*0.3 +
		onTime.PercentComplete()*0.25 +
		gm.PercentComplete()*0.25 +
		errRate.PercentComplete()*0.2
	return clampScore(math.Round(score))
}

// PortfolioHealth weights each company by its share of revenue (70/30).
func PortfolioHealth(wellBefore, d2c int) int {
	return clampScore(math.Round(float64(wellBefore)*0.7 + float64(d2c)*0.3))
}

func clampScore(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}
