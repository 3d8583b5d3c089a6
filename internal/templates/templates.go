// Package templates renders the calculator pages and their htmx fragments.
//
// Every page and fragment is exposed as a templ.Component so handlers can
// render full pages and partial swaps the same way.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
)

//go:embed html/*.html
var files embed.FS

var base = template.Must(template.New("").Funcs(funcs).ParseFS(files, "html/layout.html"))

// parse clones the layout and adds one page file, so each page can define
// its own "content" block.
func parse(name string) *template.Template {
	return template.Must(template.Must(base.Clone()).ParseFS(files, "html/"+name+".html"))
}

var (
	indexTmpl     = parse("index")
	salaryTmpl    = parse("salary")
	hourlyTmpl    = parse("hourly")
	payrollTmpl   = parse("payroll")
	freelanceTmpl = parse("freelance")
	compareTmpl   = parse("compare")
	burdenTmpl    = parse("burden")
	rostersTmpl   = parse("rosters")
)

func component(t *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, name, data)
	})
}

// Page carries what the layout needs.
type Page struct {
	Title   string
	Path    string
	TaxYear int
}

type IndexView struct {
	Page
	Rosters []domain.Roster
}

type SalaryView struct {
	Page
	Form      forms.Salary
	Gross     int64
	Result    domain.SalaryResult
	HasResult bool
	ShareURL  string
	CSVURL    string
}

type HourlyView struct {
	Page
	Form     forms.Hourly
	Result   domain.HourlyResult
	ShareURL string
}

type PayrollView struct {
	Page
	Form     forms.Payroll
	Result   domain.PayrollResult
	ShareURL string
	CSVURL   string
	PDFURL   string
	Full     bool
	// RosterID is set when the rows came from a saved roster.
	RosterID   int64
	RosterName string
}

type FreelanceView struct {
	Page
	Form     forms.Freelance
	Gross    int64
	Result   domain.FreelanceResult
	ShareURL string
}

type CompareView struct {
	Page
	Form      forms.Compare
	Result    domain.CompareResult
	Label     string
	HasResult bool
	ShareURL  string
}

type BurdenView struct {
	Page
	Form      forms.Burden
	Result    domain.BurdenResult
	HasResult bool
	ShareURL  string
}

type RostersView struct {
	Page
	Rosters []domain.Roster
}

func Index(v IndexView) templ.Component { return component(indexTmpl, "layout", v) }

func SalaryPage(v SalaryView) templ.Component   { return component(salaryTmpl, "layout", v) }
func SalaryResult(v SalaryView) templ.Component { return component(salaryTmpl, "salary-result", v) }

func HourlyPage(v HourlyView) templ.Component   { return component(hourlyTmpl, "layout", v) }
func HourlyResult(v HourlyView) templ.Component { return component(hourlyTmpl, "hourly-result", v) }

func PayrollPage(v PayrollView) templ.Component { return component(payrollTmpl, "layout", v) }

// PayrollBody is the row editor plus results, swapped when rows are added
// or removed.
func PayrollBody(v PayrollView) templ.Component { return component(payrollTmpl, "payroll-body", v) }

func PayrollResult(v PayrollView) templ.Component {
	return component(payrollTmpl, "payroll-result", v)
}

func FreelancePage(v FreelanceView) templ.Component { return component(freelanceTmpl, "layout", v) }
func FreelanceResult(v FreelanceView) templ.Component {
	return component(freelanceTmpl, "freelance-result", v)
}

func ComparePage(v CompareView) templ.Component   { return component(compareTmpl, "layout", v) }
func CompareResult(v CompareView) templ.Component { return component(compareTmpl, "compare-result", v) }

func BurdenPage(v BurdenView) templ.Component   { return component(burdenTmpl, "layout", v) }
func BurdenResult(v BurdenView) templ.Component { return component(burdenTmpl, "burden-result", v) }

func RostersPage(v RostersView) templ.Component { return component(rostersTmpl, "layout", v) }

// RosterList is the saved-roster table alone.
func RosterList(v RostersView) templ.Component { return component(rostersTmpl, "roster-list", v) }
