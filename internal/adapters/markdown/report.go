// Package markdown renders calculator results as Markdown reports for the
// command line.
package markdown

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

func won(n int64) string { return numfmt.FormatInt(n) + " KRW" }

func wonf(x float64) string { return numfmt.FormatKRW(x) + " KRW" }

// Salary writes the statement table and a pie chart of the deductions.
func Salary(w io.Writer, gross int64, r domain.SalaryResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Monthly take-home pay")
	doc.PlainText("")

	lines := r.Lines(gross)
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l.Label, won(l.Amount)})
	}
	last := len(rows) - 1
	rows[last] = []string{"**" + lines[last].Label + "**", "**" + won(lines[last].Amount) + "**"}
	doc.Table(md.TableSet{Header: []string{"Item", "Amount"}, Rows: rows})
	doc.PlainText("")

	if r.TotalDeductions() > 0 {
		chart := piechart.NewPieChart(io.Discard,
			piechart.WithTitle("Deductions"),
			piechart.WithShowData(true),
		)
		// Skip the gross line and the two summary lines.
		for _, l := range lines[1 : len(lines)-2] {
			if l.Amount > 0 {
				chart.LabelAndIntValue(l.Label, uint64(l.Amount))
			}
		}
		doc.CodeBlocks(md.SyntaxHighlightMermaid, chart.String())
		doc.PlainText("")
	}
	if r.TakeHome < 0 {
		doc.Warningf("Deductions exceed gross pay by %s.", won(-r.TakeHome))
		doc.PlainText("")
	}
	return doc.Build()
}

func Hourly(w io.Writer, r domain.HourlyResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Hourly wage")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Base pay", wonf(r.BasePay)},
			{"Weekly holiday pay", wonf(r.WeeklyHolidayPay)},
			{"**Monthly total**", "**" + wonf(r.TotalPay) + "**"},
		},
	})
	doc.PlainText("")
	if r.Eligible {
		doc.Note(fmt.Sprintf("Averages %.1f hours a week, which qualifies for weekly holiday pay.", r.WeeklyHours))
	} else {
		doc.Note(fmt.Sprintf("Averages %.1f hours a week, under the %d hour minimum for weekly holiday pay.", r.WeeklyHours, calc.MinWeeklyHours))
	}
	doc.PlainText("")
	return doc.Build()
}

func Payroll(w io.Writer, res domain.PayrollResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Payroll")
	doc.PlainText("")

	rows := make([][]string, 0, len(res.Items)+1)
	for _, it := range res.Items {
		kind := "employee"
		if it.IsFreelancer {
			kind = "freelancer"
		}
		rows = append(rows, []string{
			it.Name, kind, numfmt.FormatHours(it.MonthlyHours),
			wonf(it.GrossPay), wonf(it.Withholding), wonf(it.NetPay),
		})
	}
	t := res.Totals
	rows = append(rows, []string{
		"**Total**", "", numfmt.FormatHours(t.Hours),
		"**" + wonf(t.GrossPay) + "**", "**" + wonf(t.Withholding) + "**", "**" + wonf(t.NetPay) + "**",
	})
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Hours", "Gross pay", "3.3% withholding", "Net pay"},
		Rows:   rows,
	})
	doc.PlainText("")
	return doc.Build()
}

func Freelance(w io.Writer, gross int64, r domain.FreelanceResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Freelance take-home (3.3%)")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Payment", won(gross)},
			{"Income tax (3%)", won(r.IncomeTax)},
			{"Local income tax (0.3%)", won(r.LocalTax)},
			{"Total withheld", won(r.TotalTax)},
			{"**Take-home**", "**" + won(r.TakeHome) + "**"},
		},
	})
	doc.PlainText("")
	return doc.Build()
}

func Compare(w io.Writer, r domain.CompareResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Part-time vs freelance")
	doc.PlainText("")
	doc.Table(md.TableSet{
		Header: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Part-time gross", won(r.PartTimeGross)},
			{"Freelance gross", won(r.FreelanceGross)},
			{"3.3% withholding", won(r.Withholding)},
			{"Freelance net", won(r.FreelanceNet)},
		},
	})
	doc.PlainText("")
	doc.Note(calc.Label(r))
	doc.PlainText("")
	return doc.Build()
}

func Burden(w io.Writer, r domain.BurdenResult) error {
	doc := md.NewMarkdown(w)
	doc.H1("Debt repayment burden")
	doc.PlainText("")
	doc.PlainTextf("Repayments are **%.1f%%** of monthly income.", r.Ratio)
	doc.PlainText("")
	switch r.Band {
	case domain.BurdenHigh:
		doc.Cautionf("%s. %s", r.Title, r.Advice)
	case domain.BurdenWatch:
		doc.Warningf("%s. %s", r.Title, r.Advice)
	default:
		doc.Tip(r.Title + ". " + r.Advice)
	}
	doc.PlainText("")
	return doc.Build()
}
