package dashboard

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		company prefs.Company
		view    prefs.View
		want    Kind
	}{
		{prefs.CompanyWellBefore, prefs.ViewExecutive, KindWellBeforeExecutive},
		{prefs.CompanyWellBefore, prefs.ViewOperator, KindWellBeforeOperator},
		{prefs.CompanyD2CBuilders, prefs.ViewExecutive, KindD2CExecutive},
		{prefs.CompanyD2CBuilders, prefs.ViewOperator, KindD2COperator},
		{prefs.CompanyPortfolio, prefs.ViewExecutive, KindPortfolio},
		{prefs.CompanyPortfolio, prefs.ViewOperator, KindPortfolio},
		{prefs.CompanyPortfolio, prefs.View("bogus"), KindPortfolio},
		{prefs.Company("acme"), prefs.ViewExecutive, KindNone},
		{prefs.CompanyWellBefore, prefs.View("bogus"), KindNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Select(tc.company, tc.view), "%s/%s", tc.company, tc.view)
	}
}

func TestViewLabel(t *testing.T) {
	assert.Equal(t, "Executive", ViewLabel(prefs.ViewExecutive))
	assert.Equal(t, "Operator", ViewLabel(prefs.ViewOperator))
}

func TestRender_ShowsSelectedWindow(t *testing.T) {
	data := kpi.Sample()
	st := prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewOperator, TimeRange: prefs.RangeWeek}

	out := ansi.Strip(Render(Select(st.Company, st.View), st, data, 120))

	assert.Contains(t, out, "WellBefore · Operator View")
	assert.Contains(t, out, "This Week")
	assert.Contains(t, out, "$198,500")
	assert.Contains(t, out, "Return rate above 4% threshold")
}

func TestRender_Portfolio(t *testing.T) {
	st := prefs.State{Company: prefs.CompanyPortfolio, View: prefs.ViewOperator, TimeRange: prefs.RangeMonth}

	out := ansi.Strip(Render(KindPortfolio, st, kpi.Sample(), 140))

	assert.Contains(t, out, "Emagineer Portfolio Overview")
	assert.Contains(t, out, "2 Critical Issues")
	assert.Contains(t, out, "~23 months runway")
	assert.Contains(t, out, "D2C Builders")
}

func TestRender_UnknownCompany(t *testing.T) {
	st := prefs.State{Company: "acme", View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}

	out := ansi.Strip(Render(KindNone, st, kpi.Sample(), 80))

	assert.Contains(t, out, `No dashboard for company "acme"`)
}

func TestRows(t *testing.T) {
	data := kpi.Sample()

	rows := Rows(prefs.State{Company: prefs.CompanyD2CBuilders, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}, data)
	require.NotEmpty(t, rows)
	assert.Equal(t, Row{Metric: "Revenue", Current: "$168,200", Previous: "$159,800", Change: "+5.3%"}, rows[0])

	portfolio := Rows(prefs.State{Company: prefs.CompanyPortfolio, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}, data)
	assert.Equal(t, "$980,600", portfolio[0].Current)

	assert.Nil(t, Rows(prefs.State{Company: "acme", View: prefs.ViewExecutive}, data))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁▅█", Sparkline([]float64{0, 50, 100}))
	assert.Equal(t, "██", Sparkline([]float64{3, 3}))
	assert.Empty(t, Sparkline(nil))
}
