package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/csg33k/semogye/internal/adapters/csvexport"
	"github.com/csg33k/semogye/internal/adapters/markdown"
	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/forms"
	"github.com/csg33k/semogye/internal/numfmt"
	"github.com/csg33k/semogye/internal/sharestate"
)

// writeRows prints label/value pairs as two aligned columns.
func writeRows(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

func won(n int64) string { return numfmt.FormatInt(n) + " KRW" }

func wonf(x float64) string { return numfmt.FormatKRW(x) + " KRW" }

// NewSalaryCmd creates the salary command.
func NewSalaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary <gross>",
		Short: "Monthly take-home pay",
		Long: `Salary computes the four social insurance premiums, income tax and local
income tax withheld from a monthly salary, and the resulting take-home pay.

Examples:
  semogye salary 3,000,000
  semogye salary 4500000 --dependents 3 --children 1
  semogye salary 2800000 --uninsured --csv > salary.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runSalaryCmd,
	}
	cmd.Flags().String("dependents", "1", "Dependents including yourself")
	cmd.Flags().String("children", "0", "Children aged 20 or under")
	cmd.Flags().String("non-taxable", "200000", "Monthly non-taxable allowance")
	cmd.Flags().Bool("uninsured", false, "Not enrolled in social insurance")
	cmd.Flags().Bool("csv", false, "Write CSV instead of a report")
	return cmd
}

func runSalaryCmd(cmd *cobra.Command, args []string) error {
	dependents, err := cmd.Flags().GetString("dependents")
	if err != nil {
		return err
	}
	children, err := cmd.Flags().GetString("children")
	if err != nil {
		return err
	}
	nonTax, err := cmd.Flags().GetString("non-taxable")
	if err != nil {
		return err
	}
	uninsured, err := cmd.Flags().GetBool("uninsured")
	if err != nil {
		return err
	}
	asCSV, err := cmd.Flags().GetBool("csv")
	if err != nil {
		return err
	}
	tbl, err := withholdingTable(cmd)
	if err != nil {
		return err
	}

	insured := "yes"
	if uninsured {
		insured = "no"
	}
	f := forms.ParseSalary(url.Values{
		forms.KeySalary:     {args[0]},
		forms.KeyInsured:    {insured},
		forms.KeyDependents: {dependents},
		forms.KeyChild20:    {children},
		forms.KeyNonTax:     {nonTax},
	})
	in := f.Inputs()
	res, ok := calc.Salary(tbl, in)
	if !ok {
		return errors.New("gross salary must be greater than zero")
	}

	out := cmd.OutOrStdout()
	switch {
	case asCSV:
		return csvexport.WriteSalary(out, in.GrossSalary, res)
	case markdownOutput(cmd):
		return markdown.Salary(out, in.GrossSalary, res)
	}
	lines := res.Lines(in.GrossSalary)
	rows := make([][2]string, len(lines))
	for i, l := range lines {
		rows[i] = [2]string{l.Label, won(l.Amount)}
	}
	return writeRows(out, rows)
}

// NewHourlyCmd creates the hourly command.
func NewHourlyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Monthly pay from an hourly wage",
		Long: `Hourly computes monthly base pay and, when requested, the weekly holiday
allowance for a worker averaging 15 or more hours a week.

Examples:
  semogye hourly --wage 10030 --hours 120
  semogye hourly --wage 12000 --hours 160 --holiday --days 5`,
		Args: cobra.NoArgs,
		RunE: runHourlyCmd,
	}
	cmd.Flags().StringP("wage", "w", "", "Hourly wage")
	cmd.Flags().StringP("hours", "H", "", "Hours worked per month")
	cmd.Flags().StringP("days", "d", "5", "Average work days per week")
	cmd.Flags().Bool("holiday", false, "Include weekly holiday pay")
	return cmd
}

func runHourlyCmd(cmd *cobra.Command, _ []string) error {
	wage, err := cmd.Flags().GetString("wage")
	if err != nil {
		return err
	}
	hours, err := cmd.Flags().GetString("hours")
	if err != nil {
		return err
	}
	days, err := cmd.Flags().GetString("days")
	if err != nil {
		return err
	}
	holiday, err := cmd.Flags().GetBool("holiday")
	if err != nil {
		return err
	}

	f := forms.ParseHourly(url.Values{
		forms.KeyWage:    {wage},
		forms.KeyHours:   {hours},
		forms.KeyDays:    {days},
		forms.KeyHoliday: {sharestate.YesNo.Encode(holiday)},
	})
	res := calc.Hourly(f.Inputs())

	out := cmd.OutOrStdout()
	if markdownOutput(cmd) {
		return markdown.Hourly(out, res)
	}
	eligible := "no"
	if res.Eligible {
		eligible = "yes"
	}
	return writeRows(out, [][2]string{
		{"Base pay", wonf(res.BasePay)},
		{"Weekly holiday pay", wonf(res.WeeklyHolidayPay)},
		{"Monthly total", wonf(res.TotalPay)},
		{"Average weekly hours", fmt.Sprintf("%.1f", res.WeeklyHours)},
		{"Holiday pay eligible", eligible},
	})
}

// NewFreelanceCmd creates the freelance command.
func NewFreelanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freelance <payment>",
		Short: "3.3% freelance withholding",
		Long: `Freelance splits a freelance payment into 3% income tax, 0.3% local income
tax and the amount actually paid out.

Examples:
  semogye freelance 2,500,000`,
		Args: cobra.ExactArgs(1),
		RunE: runFreelanceCmd,
	}
}

func runFreelanceCmd(cmd *cobra.Command, args []string) error {
	f := forms.Freelance{Amount: args[0]}
	gross := f.Gross()
	res := calc.Freelance(gross)

	out := cmd.OutOrStdout()
	if markdownOutput(cmd) {
		return markdown.Freelance(out, gross, res)
	}
	return writeRows(out, [][2]string{
		{"Payment", won(gross)},
		{"Income tax (3%)", won(res.IncomeTax)},
		{"Local income tax (0.3%)", won(res.LocalTax)},
		{"Total withheld", won(res.TotalTax)},
		{"Take-home", won(res.TakeHome)},
	})
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Part-time pay versus a freelance payment",
		Long: `Compare sets a part-timer's monthly pay (wage x hours) against a freelance
payment after 3.3% withholding. Differences of 50,000 KRW or less are
reported as negligible.

Examples:
  semogye compare --wage 11000 --hours 160 --freelance 2500000
  semogye compare -w 11000 -H 160 -f 2500000 --link`,
		Args: cobra.NoArgs,
		RunE: runCompareCmd,
	}
	cmd.Flags().StringP("wage", "w", "", "Part-time hourly wage")
	cmd.Flags().StringP("hours", "H", "", "Part-time hours per month")
	cmd.Flags().StringP("freelance", "f", "", "Freelance gross payment")
	addLinkFlags(cmd)
	return cmd
}

func runCompareCmd(cmd *cobra.Command, _ []string) error {
	var f forms.Compare
	var err error
	if f.HourlyWage, err = cmd.Flags().GetString("wage"); err != nil {
		return err
	}
	if f.MonthlyHours, err = cmd.Flags().GetString("hours"); err != nil {
		return err
	}
	if f.FreelanceGross, err = cmd.Flags().GetString("freelance"); err != nil {
		return err
	}
	in := f.Inputs()
	if done, err := writePageLink(cmd, "/compare",
		sharestate.Bind("w", &in.HourlyWage, sharestate.Int),
		sharestate.Bind("h", &in.MonthlyHours, sharestate.Int),
		sharestate.Bind("f", &in.FreelanceGross, sharestate.Int),
	); done || err != nil {
		return err
	}
	res := calc.Compare(in)

	out := cmd.OutOrStdout()
	if markdownOutput(cmd) {
		return markdown.Compare(out, res)
	}
	return writeRows(out, [][2]string{
		{"Part-time gross", won(res.PartTimeGross)},
		{"Freelance gross", won(res.FreelanceGross)},
		{"3.3% withholding", won(res.Withholding)},
		{"Freelance net", won(res.FreelanceNet)},
		{"Verdict", calc.Label(res)},
	})
}

// NewBurdenCmd creates the burden command.
func NewBurdenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burden",
		Short: "Debt repayments as a share of income",
		Long: `Burden reports monthly debt repayments as a percentage of monthly income,
rounded to one decimal, with an advisory band: under 20%, 20-30%, and 30%
or more.

Examples:
  semogye burden --income 3,000,000 --payment 900,000
  semogye burden -i 3000000 -p 900000 --link`,
		Args: cobra.NoArgs,
		RunE: runBurdenCmd,
	}
	cmd.Flags().StringP("income", "i", "", "Monthly income")
	cmd.Flags().StringP("payment", "p", "", "Monthly debt repayments")
	addLinkFlags(cmd)
	return cmd
}

func runBurdenCmd(cmd *cobra.Command, _ []string) error {
	var f forms.Burden
	var err error
	if f.Income, err = cmd.Flags().GetString("income"); err != nil {
		return err
	}
	if f.Payment, err = cmd.Flags().GetString("payment"); err != nil {
		return err
	}
	income, payment := f.Amounts()
	if done, err := writePageLink(cmd, "/burden",
		sharestate.Bind("i", &income, sharestate.Int),
		sharestate.Bind("p", &payment, sharestate.Int),
	); done || err != nil {
		return err
	}
	res, ok := calc.Burden(income, payment)
	if !ok {
		return errors.New("income and payment must both be greater than zero")
	}

	out := cmd.OutOrStdout()
	if markdownOutput(cmd) {
		return markdown.Burden(out, res)
	}
	return writeRows(out, [][2]string{
		{"Ratio", fmt.Sprintf("%.1f%%", res.Ratio)},
		{res.Title, res.Advice},
	})
}
