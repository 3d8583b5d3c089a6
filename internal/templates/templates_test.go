package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
	"github.com/csg33k/semogye/internal/templates"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestComponents(t *testing.T) {
	page := templates.Page{Title: "T", Path: "/salary", TaxYear: 2024}
	tests := []struct {
		name     string
		c        templ.Component
		wantHTML bool
	}{
		{"index", templates.Index(templates.IndexView{Page: page}), true},
		{"salary page", templates.SalaryPage(templates.SalaryView{Page: page, Form: forms.DefaultSalary()}), true},
		{"salary result", templates.SalaryResult(templates.SalaryView{}), false},
		{"hourly page", templates.HourlyPage(templates.HourlyView{Page: page, Form: forms.DefaultHourly()}), true},
		{"hourly result", templates.HourlyResult(templates.HourlyView{}), false},
		{"payroll page", templates.PayrollPage(templates.PayrollView{Page: page, Form: forms.DefaultPayroll()}), true},
		{"payroll body", templates.PayrollBody(templates.PayrollView{Form: forms.DefaultPayroll()}), false},
		{"payroll result", templates.PayrollResult(templates.PayrollView{}), false},
		{"freelance page", templates.FreelancePage(templates.FreelanceView{Page: page}), true},
		{"freelance result", templates.FreelanceResult(templates.FreelanceView{}), false},
		{"compare page", templates.ComparePage(templates.CompareView{Page: page}), true},
		{"compare result", templates.CompareResult(templates.CompareView{}), false},
		{"burden page", templates.BurdenPage(templates.BurdenView{Page: page}), true},
		{"burden result", templates.BurdenResult(templates.BurdenView{}), false},
		{"rosters page", templates.RostersPage(templates.RostersView{Page: page}), true},
		{"roster list", templates.RosterList(templates.RostersView{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderString(t, tt.c)
			if got := strings.Contains(out, "<!DOCTYPE html>"); got != tt.wantHTML {
				t.Errorf("full document = %v, want %v", got, tt.wantHTML)
			}
		})
	}
}

func TestSalaryResult_Lines(t *testing.T) {
	v := templates.SalaryView{
		Gross:     3_000_000,
		Result:    domain.SalaryResult{Pension: 135_000, TakeHome: -5},
		HasResult: true,
		ShareURL:  "https://semogye.test/salary?data=abc",
		CSVURL:    "/salary/export.csv?salary=3000000&insured=yes",
	}
	out := renderString(t, templates.SalaryResult(v))
	for _, want := range []string{
		"3,000,000",
		"135,000",
		`data-copy="https://semogye.test/salary?data=abc"`,
		`href="/salary/export.csv?salary=3000000&amp;insured=yes"`,
		"color:var(--warn)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEscapesUserText(t *testing.T) {
	p := forms.DefaultPayroll()
	p.Rows[0].Name = `<script>alert(1)</script>`
	out := renderString(t, templates.PayrollBody(templates.PayrollView{Form: p, RosterName: `"><b>`}))
	if strings.Contains(out, "<script>alert") || strings.Contains(out, `"><b>`) {
		t.Error("user text rendered unescaped")
	}
}

func TestRosterList(t *testing.T) {
	out := renderString(t, templates.RosterList(templates.RostersView{Rosters: []domain.Roster{{ID: 7, Name: "March"}}}))
	if !strings.Contains(out, `href="/rosters/7"`) || !strings.Contains(out, `hx-delete="/rosters/7"`) {
		t.Errorf("roster links missing:\n%s", out)
	}
}
