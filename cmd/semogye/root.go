package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/withholding"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semogye",
		Short: "Korean pay and tax calculators",
		Long: `semogye estimates Korean monthly pay figures from the command line:
take-home salary after social insurance and withholding tax, hourly pay with
weekly holiday allowance, multi-worker payroll, freelance 3.3% withholding,
part-time versus freelance comparison and debt repayment burden.

All figures are estimates in KRW.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("markdown", "m", false, "Write a Markdown report")
	cmd.PersistentFlags().Int("tax-year", domain.DefaultTaxYear, "Withholding table year")
	cmd.PersistentFlags().String("table", "", "Withholding table YAML file (overrides --tax-year)")

	cmd.AddCommand(NewSalaryCmd())
	cmd.AddCommand(NewHourlyCmd())
	cmd.AddCommand(NewPayrollCmd())
	cmd.AddCommand(NewFreelanceCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewBurdenCmd())
	cmd.AddCommand(NewShareCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withholdingTable resolves the --table and --tax-year flags.
func withholdingTable(cmd *cobra.Command) (*withholding.Table, error) {
	file, err := cmd.Flags().GetString("table")
	if err != nil {
		return nil, err
	}
	if file != "" {
		return withholding.LoadFile(file)
	}
	year, err := cmd.Flags().GetInt("tax-year")
	if err != nil {
		return nil, err
	}
	t, ok := withholding.ForYear(year)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "no withholding table for %d, using %d\n", year, t.Year)
	}
	return t, nil
}

func markdownOutput(cmd *cobra.Command) bool {
	on, _ := cmd.Flags().GetBool("markdown")
	return on
}
