// Package csvexport writes calculator results as spreadsheet-friendly CSV.
//
// Files start with a UTF-8 byte order mark so Excel opens Korean names
// correctly. Amounts are whole won without grouping.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

const bom = "\uFEFF"

// WriteSalary writes one row per salary statement line.
func WriteSalary(w io.Writer, gross int64, r domain.SalaryResult) error {
	records := [][]string{{"Item", "Amount (KRW)"}}
	for _, l := range r.Lines(gross) {
		records = append(records, []string{l.Label, strconv.FormatInt(l.Amount, 10)})
	}
	return write(w, records)
}

// WritePayroll writes one row per worker followed by a totals row.
func WritePayroll(w io.Writer, res domain.PayrollResult) error {
	records := [][]string{{
		"Name", "Type", "Hourly wage", "Monthly hours",
		"Base pay", "Weekly holiday pay", "Gross pay", "3.3% withholding", "Net pay",
	}}
	for _, it := range res.Items {
		kind := "employee"
		if it.IsFreelancer {
			kind = "freelancer"
		}
		records = append(records, []string{
			it.Name, kind, won(it.HourlyWage), hours(it.MonthlyHours),
			won(it.BasePay), won(it.WeeklyHolidayPay), won(it.GrossPay), won(it.Withholding), won(it.NetPay),
		})
	}
	t := res.Totals
	records = append(records, []string{
		"Total", "", "", hours(t.Hours),
		won(t.BasePay), won(t.WeeklyHolidayPay), won(t.GrossPay), won(t.Withholding), won(t.NetPay),
	})
	return write(w, records)
}

func write(w io.Writer, records [][]string) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw.WriteAll(records)
}

func won(x float64) string { return strconv.FormatInt(numfmt.Round(x), 10) }

func hours(x float64) string { return strconv.FormatFloat(x, 'f', 1, 64) }
