// Package calc implements the pay calculators. Every function here is pure:
// inputs arrive already coerced (see package numfmt) and nothing fails.
package calc

import (
	"math"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/withholding"
)

// Salary computes monthly take-home pay. It reports false when there is no
// gross salary yet, which callers treat as "nothing to show".
//
// TakeHome is not floored: a tiny salary with a large child
// count can produce a negative figure.
func Salary(t *withholding.Table, in domain.SalaryInputs) (domain.SalaryResult, bool) {
	if in.GrossSalary <= 0 {
		return domain.SalaryResult{}, false
	}
	gross := float64(in.GrossSalary)
	taxable := max(in.GrossSalary-in.NonTaxableAllowance, 0)

	var r domain.SalaryResult
	if in.Insured {
		r.Pension = floor(gross * t.Rates.Pension)
		r.Health = floor(gross * t.Rates.Health)
		r.LongTermCare = floor(float64(r.Health) * t.Rates.LongTermCare)
		r.Employment = floor(gross * t.Rates.Employment)
	}
	r.IncomeTax = t.LookupTax(taxable, in.DependentCount, in.ChildCount)
	r.ResidentTax = floor(float64(r.IncomeTax) * t.Rates.ResidentTax)
	r.TakeHome = in.GrossSalary - r.TotalDeductions()
	return r, true
}

func floor(x float64) int64 {
	return int64(math.Floor(x))
}
