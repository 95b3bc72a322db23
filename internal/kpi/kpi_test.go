package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/emagineer/kpiboard/internal/prefs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSample_EveryKPIHasEveryWindow(t *testing.T) {
	d := Sample()
	for _, c := range []*Company{d.WellBefore, d.D2CBuilders} {
		for _, k := range c.KPIs {
			for _, r := range prefs.TimeRanges() {
				_, ok := k.Windows[r]
				assert.True(t, ok, "%s/%s missing window %s", c.ID, k.Key, r)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	p := Summarize(Sample())

	assert.Equal(t, 980_600.0, p.Revenue[prefs.RangeMonth])
	assert.Equal(t, 140_300.0, p.NetProfit)
	assert.Equal(t, 1_590_000.0, p.Cash)
	assert.Equal(t, 23, p.RunwayMonths)

	assert.Equal(t, 95, p.WellBeforeHealth)
	assert.Equal(t, 95, p.D2CHealth)
	assert.Equal(t, 95, p.Health)

	assert.Equal(t, InsightCounts{Critical: 2, Warning: 5, Info: 3, Success: 2}, p.Counts)
	assert.Len(t, p.Critical, 2)
	assert.Len(t, p.Warnings, 4)
}

func TestPortfolioHealthWeighting(t *testing.T) {
	assert.Equal(t, 78, PortfolioHealth(90, 50))
	assert.Equal(t, 100, PortfolioHealth(140, 100))
}

func TestRunway(t *testing.T) {
	assert.Equal(t, 0, Runway(100, 0))
	assert.Equal(t, 4, Runway(100, 50))
}

func TestTargetPercentComplete(t *testing.T) {
	assert.InDelta(t, 50.0, Target{Current: 50, Goal: 100}.PercentComplete(), 0.001)
	assert.InDelta(t, 80.0, Target{Current: 0.5, Goal: 0.4, LowerIsBetter: true}.PercentComplete(), 0.001)
}

func TestVisibleByAudience(t *testing.T) {
	wb := Sample().WellBefore

	exec := keys(wb.Visible(prefs.ViewExecutive))
	ops := keys(wb.Visible(prefs.ViewOperator))

	assert.Contains(t, exec, "ltv_cac")
	assert.NotContains(t, exec, "cac")
	assert.Contains(t, ops, "cac")
	assert.NotContains(t, ops, "ltv_cac")
	assert.Contains(t, exec, "revenue")
	assert.Contains(t, ops, "revenue")
}

func TestKPIImproving(t *testing.T) {
	wb := Sample().WellBefore
	ret, ok := wb.KPI("return_rate")
	require.True(t, ok)
	assert.False(t, ret.Improving(prefs.RangeMonth))

	cac, ok := wb.KPI("cac")
	require.True(t, ok)
	assert.True(t, cac.Improving(prefs.RangeMonth))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$812,400", FormatCurrency(812_400, false))
	assert.Equal(t, "$812.4K", FormatCurrency(812_400, true))
	assert.Equal(t, "$1.2M", FormatCurrency(1_240_000, true))
	assert.Equal(t, "$78.27", FormatCurrency(78.27, false))
	assert.Equal(t, "-$1,500", FormatCurrency(-1_500, false))
	assert.Equal(t, "+9.0%", FormatPercentChange(9))
	assert.Equal(t, "-1.8%", FormatPercentChange(-1.8))
	assert.Equal(t, "62.1%", FormatPercentPlain(62.1))
	assert.Equal(t, "3.6:1", Format(UnitRatio, 3.6))
	assert.Equal(t, "10,380", Format(UnitCount, 10_380))
	assert.Equal(t, "1.4 days", Format(UnitDays, 1.4))
	assert.Equal(t, "48 days", Format(UnitDays, 48))
	assert.Equal(t, "0.42%", Format(UnitPercent, 0.42))
}

func keys(ks []KPI) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.Key
	}
	return out
}
