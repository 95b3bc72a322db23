// Package dashboard maps the preference snapshot to a dashboard and renders
// it as terminal text.
package dashboard

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emagineer/kpiboard/internal/prefs"
)

// Kind identifies one of the rendered dashboards.
type Kind int

const (
	KindNone Kind = iota
	KindWellBeforeExecutive
	KindWellBeforeOperator
	KindD2CExecutive
	KindD2COperator
	KindPortfolio
)

func (k Kind) String() string {
	switch k {
	case KindWellBeforeExecutive:
		return "wellbefore-executive"
	case KindWellBeforeOperator:
		return "wellbefore-operator"
	case KindD2CExecutive:
		return "d2cbuilders-executive"
	case KindD2COperator:
		return "d2cbuilders-operator"
	case KindPortfolio:
		return "portfolio"
	default:
		return "none"
	}
}

type selection struct {
	company prefs.Company
	view    prefs.View
}

var kinds = map[selection]Kind{
	{prefs.CompanyWellBefore, prefs.ViewExecutive}:  KindWellBeforeExecutive,
	{prefs.CompanyWellBefore, prefs.ViewOperator}:   KindWellBeforeOperator,
	{prefs.CompanyD2CBuilders, prefs.ViewExecutive}: KindD2CExecutive,
	{prefs.CompanyD2CBuilders, prefs.ViewOperator}:  KindD2COperator,
}

// Select returns the dashboard for a company and view. The portfolio
// ignores the view; unknown combinations select KindNone.
func Select(company prefs.Company, view prefs.View) Kind {
	if company == prefs.CompanyPortfolio {
		return KindPortfolio
	}
	return kinds[selection{company, view}]
}

// ViewLabel returns the display name of a view.
func ViewLabel(v prefs.View) string {
	return cases.Title(language.English).String(string(v))
}
