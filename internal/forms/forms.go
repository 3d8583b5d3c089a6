// Package forms holds the raw, as-typed input state of each calculator page
// and coerces it into domain inputs.
//
// The JSON field names are the ones share links have always carried, so
// links created by earlier versions of the site keep restoring.
package forms

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

// DefaultNonTaxable is the monthly non-taxable meal allowance assumed when
// none is given.
const DefaultNonTaxable = 200_000

// NumericString is a count typed into a text field. Share links may carry it
// as a JSON string or a number; anything else leaves the current value.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*n = NumericString(digitString(v))
	case float64:
		*n = NumericString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

func (n NumericString) Int() int64 { return numfmt.ParseDigits(string(n)) }

// digitString strips raw to its digits and drops leading zeros. No digits at
// all gives "".
func digitString(raw string) string {
	if numfmt.DigitsOnly(raw) == "" {
		return ""
	}
	return strconv.FormatInt(numfmt.ParseDigits(raw), 10)
}

// commaString regroups the digits of raw, "" for zero.
func commaString(raw string) string {
	return numfmt.FormatThousands(numfmt.ParseDigits(raw))
}

// Salary is the take-home salary page.
type Salary struct {
	SalaryRaw  string        `json:"salaryRaw"`
	Insured    string        `json:"insured"`
	Dependents NumericString `json:"dependents"`
	Child20    NumericString `json:"child20"`
	NonTax     int64         `json:"nonTax"`
}

func DefaultSalary() Salary {
	return Salary{Insured: "yes", Dependents: "1", Child20: "0", NonTax: DefaultNonTaxable}
}

// UnmarshalJSON fills fields missing from b with their defaults.
func (f *Salary) UnmarshalJSON(b []byte) error {
	type plain Salary
	p := plain(DefaultSalary())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*f = Salary(p)
	f.normalize()
	return nil
}

func (f *Salary) normalize() {
	f.SalaryRaw = commaString(f.SalaryRaw)
	if f.Insured != "no" {
		f.Insured = "yes"
	}
	f.NonTax = max(f.NonTax, 0)
}

// Query keys of the salary form.
const (
	KeySalary     = "salary"
	KeyInsured    = "insured"
	KeyDependents = "dependents"
	KeyChild20    = "child20"
	KeyNonTax     = "nonTax"
)

// ParseSalary reads the salary form from q. Absent keys keep their default;
// a key sent empty means zero.
func ParseSalary(q url.Values) Salary {
	f := DefaultSalary()
	if q.Has(KeySalary) {
		f.SalaryRaw = q.Get(KeySalary)
	}
	if q.Has(KeyInsured) {
		f.Insured = q.Get(KeyInsured)
	}
	if q.Has(KeyDependents) {
		f.Dependents = NumericString(digitString(q.Get(KeyDependents)))
	}
	if q.Has(KeyChild20) {
		f.Child20 = NumericString(digitString(q.Get(KeyChild20)))
	}
	if q.Has(KeyNonTax) {
		f.NonTax = numfmt.ParseDigits(q.Get(KeyNonTax))
	}
	f.normalize()
	return f
}

// Values is the inverse of ParseSalary.
func (f Salary) Values() url.Values {
	return url.Values{
		KeySalary:     {numfmt.DigitsOnly(f.SalaryRaw)},
		KeyInsured:    {f.Insured},
		KeyDependents: {string(f.Dependents)},
		KeyChild20:    {string(f.Child20)},
		KeyNonTax:     {strconv.FormatInt(f.NonTax, 10)},
	}
}

func (f Salary) Inputs() domain.SalaryInputs {
	return domain.SalaryInputs{
		GrossSalary:         numfmt.ParseDigits(f.SalaryRaw),
		Insured:             f.Insured != "no",
		DependentCount:      f.Dependents.Int(),
		ChildCount:          f.Child20.Int(),
		NonTaxableAllowance: f.NonTax,
	}
}

// Query keys shared by the hourly and payroll forms.
const (
	KeyWage    = "wage"
	KeyHours   = "hours"
	KeyHoliday = "holiday"
	KeyDays    = "days"
)

// Hourly is the single-worker hourly wage page.
type Hourly struct {
	HourlyWageRaw           string `json:"hourlyWageRaw"`
	MonthlyHoursRaw         string `json:"monthlyHoursRaw"`
	IncludeWeeklyHolidayPay bool   `json:"includeWeeklyHolidayPay"`
	AvgWorkDaysPerWeekRaw   string `json:"avgWorkDaysPerWeekRaw"`
}

func DefaultHourly() Hourly {
	return Hourly{AvgWorkDaysPerWeekRaw: strconv.Itoa(domain.DefaultWorkDaysPerWeek)}
}

func (f *Hourly) UnmarshalJSON(b []byte) error {
	type plain Hourly
	p := plain(DefaultHourly())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*f = Hourly(p)
	return nil
}

func ParseHourly(q url.Values) Hourly {
	f := DefaultHourly()
	f.HourlyWageRaw = numfmt.NormalizeDecimal(q.Get(KeyWage))
	f.MonthlyHoursRaw = numfmt.NormalizeDecimal(q.Get(KeyHours))
	f.IncludeWeeklyHolidayPay = q.Get(KeyHoliday) == "yes"
	if q.Has(KeyDays) {
		f.AvgWorkDaysPerWeekRaw = numfmt.NormalizeDecimal(q.Get(KeyDays))
	}
	return f
}

func (f Hourly) Values() url.Values {
	return url.Values{
		KeyWage:    {numfmt.NormalizeDecimal(f.HourlyWageRaw)},
		KeyHours:   {numfmt.NormalizeDecimal(f.MonthlyHoursRaw)},
		KeyHoliday: {yesNo(f.IncludeWeeklyHolidayPay)},
		KeyDays:    {numfmt.NormalizeDecimal(f.AvgWorkDaysPerWeekRaw)},
	}
}

func (f Hourly) Inputs() domain.HourlyInputs {
	return hourlyInputs(f.HourlyWageRaw, f.MonthlyHoursRaw, f.AvgWorkDaysPerWeekRaw, f.IncludeWeeklyHolidayPay)
}

func hourlyInputs(wage, hours, days string, holiday bool) domain.HourlyInputs {
	return domain.HourlyInputs{
		HourlyWage:              numfmt.ParseDecimal(wage),
		MonthlyHours:            numfmt.ParseDecimal(hours),
		IncludeWeeklyHolidayPay: holiday,
		WorkDaysPerWeek:         WorkDays(days),
	}
}

// WorkDays reads an average days-per-week field: rounded, 5 when blank or
// zero, and held to [1,7].
func WorkDays(raw string) int {
	d := numfmt.ParseDecimal(raw)
	if d == 0 {
		return domain.DefaultWorkDaysPerWeek
	}
	return int(numfmt.Clamp(numfmt.Round(d), 1, 7))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
