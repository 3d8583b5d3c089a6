package calc

import (
	"github.com/shopspring/decimal"

	"github.com/csg33k/semogye/internal/domain"
)

// Burden thresholds, in percent.
const (
	BurdenWatchFrom = 20
	BurdenHighFrom  = 30
)

var burdenBands = map[domain.BurdenBand][2]string{
	domain.BurdenLow: {
		"Repayment burden under 20%",
		"Repayments take a relatively small share of monthly income. Keep an eye on income changes and interest rates.",
	},
	domain.BurdenWatch: {
		"Repayment burden 20-30%",
		"Repayments are becoming a large share of income. A good time to review fixed costs and the repayment schedule.",
	},
	domain.BurdenHigh: {
		"Repayment burden 30% or more",
		"Repayments take a high share of income and may strain household cash flow. Review the repayment and spending structure.",
	},
}

// Burden returns monthly debt repayments as a percentage of monthly income,
// rounded to one decimal place. It reports false when either amount is 0.
func Burden(income, payment int64) (domain.BurdenResult, bool) {
	if income <= 0 || payment <= 0 {
		return domain.BurdenResult{}, false
	}
	ratio, _ := decimal.NewFromInt(payment).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(income), 1).
		Float64()

	band := domain.BurdenLow
	switch {
	case ratio >= BurdenHighFrom:
		band = domain.BurdenHigh
	case ratio >= BurdenWatchFrom:
		band = domain.BurdenWatch
	}
	text := burdenBands[band]
	return domain.BurdenResult{Ratio: ratio, Band: band, Title: text[0], Advice: text[1]}, true
}
