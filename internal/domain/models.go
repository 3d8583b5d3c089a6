package domain

import "time"

const DefaultTaxYear = 2024

// Limits applied to hourly-wage inputs before any arithmetic.
const (
	MaxHourlyWage   = 1_000_000
	MaxMonthlyHours = 744
	MaxWorkers      = 20

	DefaultWorkDaysPerWeek = 5
)

// TaxYearInfo describes a withholding table the server can calculate with.
type TaxYearInfo struct {
	Year     int
	Brackets int
}

// SalaryInputs are the coerced inputs of the monthly take-home calculator.
// All amounts are KRW.
type SalaryInputs struct {
	GrossSalary int64
	Insured     bool
	// DependentCount includes the worker. Lookups clamp it to [1,11].
	DependentCount int64
	// ChildCount is the number of children aged 20 or under.
	ChildCount          int64
	NonTaxableAllowance int64
}

// SalaryResult holds every deduction line plus take-home pay.
// TakeHome may be negative when deductions exceed gross pay.
type SalaryResult struct {
	Pension      int64
	Health       int64
	LongTermCare int64
	Employment   int64
	IncomeTax    int64
	ResidentTax  int64
	TakeHome     int64
}

// TotalDeductions sums every withheld amount.
func (r SalaryResult) TotalDeductions() int64 {
	return r.Pension + r.Health + r.LongTermCare + r.Employment + r.IncomeTax + r.ResidentTax
}

type HourlyInputs struct {
	HourlyWage              float64
	MonthlyHours            float64
	IncludeWeeklyHolidayPay bool
	WorkDaysPerWeek         int
}

type HourlyResult struct {
	BasePay          float64
	WeeklyHolidayPay float64
	TotalPay         float64
	// WeeklyHours and Eligible explain how the holiday allowance was derived.
	WeeklyHours float64
	Eligible    bool
}

// WorkerRow is one line of the multi-worker payroll.
type WorkerRow struct {
	ID           string
	Name         string
	HourlyInputs HourlyInputs
	IsFreelancer bool
}

type WorkerPay struct {
	ID               string
	Name             string
	IsFreelancer     bool
	HourlyWage       float64
	MonthlyHours     float64
	BasePay          float64
	WeeklyHolidayPay float64
	GrossPay         float64
	Withholding      float64
	NetPay           float64
}

type PayrollTotals struct {
	Hours            float64
	BasePay          float64
	WeeklyHolidayPay float64
	GrossPay         float64
	Withholding      float64
	NetPay           float64
}

type PayrollResult struct {
	Items  []WorkerPay
	Totals PayrollTotals
}

type FreelanceResult struct {
	IncomeTax int64
	LocalTax  int64
	TotalTax  int64
	TakeHome  int64
}

type CompareInputs struct {
	HourlyWage     int64
	MonthlyHours   int64
	FreelanceGross int64
}

type CompareResult struct {
	PartTimeGross  int64
	FreelanceGross int64
	Withholding    int64
	FreelanceNet   int64
	Diff           int64
	Verdict        Verdict
}

// Verdict classifies the freelance/part-time difference.
type Verdict int

const (
	Negligible Verdict = iota
	FreelanceHigher
	PartTimeHigher
)

func (v Verdict) String() string {
	switch v {
	case FreelanceHigher:
		return "freelance higher"
	case PartTimeHigher:
		return "part-time higher"
	default:
		return "negligible difference"
	}
}

// BurdenBand is the advisory band of a repayment burden ratio.
type BurdenBand int

const (
	BurdenLow BurdenBand = iota
	BurdenWatch
	BurdenHigh
)

type BurdenResult struct {
	Ratio  float64
	Band   BurdenBand
	Title  string
	Advice string
}

// Roster is a saved multi-worker payroll.
type Roster struct {
	ID        int64
	Name      string
	Workers   []WorkerRow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem is one labelled amount of a pay statement.
type LineItem struct {
	Label  string
	Amount int64
}

// Lines lists the salary statement top to bottom: gross pay, each
// deduction, the deduction total and take-home pay.
func (r SalaryResult) Lines(gross int64) []LineItem {
	return []LineItem{
		{"Gross salary", gross},
		{"National pension", r.Pension},
		{"Health insurance", r.Health},
		{"Long-term care insurance", r.LongTermCare},
		{"Employment insurance", r.Employment},
		{"Income tax", r.IncomeTax},
		{"Local income tax", r.ResidentTax},
		{"Total deductions", r.TotalDeductions()},
		{"Take-home pay", r.TakeHome},
	}
}
