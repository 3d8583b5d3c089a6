package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/csg33k/semogye/internal/adapters/csvexport"
	"github.com/csg33k/semogye/internal/adapters/markdown"
	"github.com/csg33k/semogye/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/semogye/internal/adapters/sqlite"
	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
)

// NewPayrollCmd creates the payroll command.
func NewPayrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Pay for up to 20 workers",
		Long: `Payroll computes monthly pay for several hourly workers at once. Freelancers
have 3.3% withheld. Rows come either from a JSON file in the same shape the
web API accepts, or from a roster saved in the web app's database.

Example file:
  {"rows": [
    {"name": "Kim", "hourlyWageRaw": "12000", "monthlyHoursRaw": "160",
     "includeWeeklyHolidayPay": true},
    {"name": "Lee", "hourlyWageRaw": "15000", "monthlyHoursRaw": "40",
     "isFreelancer": true}
  ]}

Examples:
  semogye payroll --file staff.json
  cat staff.json | semogye payroll --file - --csv > payroll.csv
  semogye payroll --roster 3 --db semogye.db --pdf payslips.pdf`,
		Args: cobra.NoArgs,
		RunE: runPayrollCmd,
	}
	cmd.Flags().String("file", "", `JSON rows file ("-" for stdin)`)
	cmd.Flags().Int64("roster", 0, "Saved roster ID")
	cmd.Flags().String("db", "semogye.db", "SQLite database holding saved rosters")
	cmd.Flags().Bool("csv", false, "Write CSV instead of a report")
	cmd.Flags().String("pdf", "", "Write one payslip page per worker to this file")
	cmd.Flags().String("font", "", "UTF-8 TrueType font for payslips")
	cmd.MarkFlagsMutuallyExclusive("file", "roster")
	cmd.MarkFlagsOneRequired("file", "roster")
	return cmd
}

func runPayrollCmd(cmd *cobra.Command, _ []string) error {
	asCSV, err := cmd.Flags().GetBool("csv")
	if err != nil {
		return err
	}
	pdfPath, err := cmd.Flags().GetString("pdf")
	if err != nil {
		return err
	}
	font, err := cmd.Flags().GetString("font")
	if err != nil {
		return err
	}

	title, rows, err := payrollRows(cmd)
	if err != nil {
		return err
	}
	res := calc.Payroll(rows)

	out := cmd.OutOrStdout()
	switch {
	case pdfPath != "":
		f, err := os.Create(pdfPath)
		if err != nil {
			return err
		}
		if err := pdf.New(font).Render(cmd.Context(), title, res, f); err != nil {
			f.Close()
			return fmt.Errorf("render payslips: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d payslips to %s\n", len(res.Items), pdfPath)
		return nil
	case asCSV:
		return csvexport.WritePayroll(out, res)
	case markdownOutput(cmd):
		return markdown.Payroll(out, res)
	}
	return writePayrollText(out, res)
}

// payrollRows loads rows from --roster or --file.
func payrollRows(cmd *cobra.Command) (string, []domain.WorkerRow, error) {
	id, err := cmd.Flags().GetInt64("roster")
	if err != nil {
		return "", nil, err
	}
	if id != 0 {
		dsn, err := cmd.Flags().GetString("db")
		if err != nil {
			return "", nil, err
		}
		repo, err := sqliteadapter.New(dsn)
		if err != nil {
			return "", nil, fmt.Errorf("open database: %w", err)
		}
		defer repo.Close()
		ro, err := repo.GetRoster(cmd.Context(), id)
		if err != nil {
			return "", nil, fmt.Errorf("roster %d: %w", id, err)
		}
		return ro.Name, ro.Workers, nil
	}

	name, err := cmd.Flags().GetString("file")
	if err != nil {
		return "", nil, err
	}
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		r = f
	}
	var p forms.Payroll
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return "", nil, fmt.Errorf("read %s: %w", name, err)
	}
	return "Payroll", p.WorkerRows(), nil
}

func writePayrollText(w io.Writer, res domain.PayrollResult) error {
	rows := make([][2]string, 0, len(res.Items)+1)
	for _, it := range res.Items {
		label := it.Name
		if it.IsFreelancer {
			label += " (freelancer)"
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("%s gross, %s net", wonf(it.GrossPay), wonf(it.NetPay))})
	}
	t := res.Totals
	rows = append(rows, [2]string{"Total", fmt.Sprintf("%s gross, %s withheld, %s net, %.1f h", wonf(t.GrossPay), wonf(t.Withholding), wonf(t.NetPay), t.Hours)})
	return writeRows(w, rows)
}
