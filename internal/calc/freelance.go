package calc

import (
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

// Freelance splits the 3.3% withholding on a freelance payment into income
// tax (3%) and local income tax (10% of that). Take-home never goes below 0.
func Freelance(gross int64) domain.FreelanceResult {
	incomeTax := numfmt.Round(float64(gross) * 0.03)
	localTax := numfmt.Round(float64(incomeTax) * 0.1)
	total := incomeTax + localTax
	return domain.FreelanceResult{
		IncomeTax: incomeTax,
		LocalTax:  localTax,
		TotalTax:  total,
		TakeHome:  max(0, gross-total),
	}
}
