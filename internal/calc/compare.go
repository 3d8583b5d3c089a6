package calc

import (
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

// NegligibleDiff is the largest difference Compare reports as negligible.
const NegligibleDiff = 50_000

// Compare sets a part-timer's gross pay against a freelancer's net pay after
// 3.3% withholding. Negative inputs count as zero and a part-time gross too
// large for int64 saturates.
func Compare(in domain.CompareInputs) domain.CompareResult {
	gross := max(in.FreelanceGross, 0)
	partTime := numfmt.MulSat(max(in.HourlyWage, 0), max(in.MonthlyHours, 0))
	withheld := floor(float64(gross) * FreelanceRate)
	net := gross - withheld
	diff := net - partTime

	v := domain.Negligible
	switch {
	case abs(diff) <= NegligibleDiff:
	case diff > 0:
		v = domain.FreelanceHigher
	default:
		v = domain.PartTimeHigher
	}
	return domain.CompareResult{
		PartTimeGross:  partTime,
		FreelanceGross: gross,
		Withholding:    withheld,
		FreelanceNet:   net,
		Diff:           diff,
		Verdict:        v,
	}
}

// Label renders the verdict with the size of the gap, e.g.
// "freelance higher by 657,500".
func Label(r domain.CompareResult) string {
	if r.Verdict == domain.Negligible {
		return r.Verdict.String()
	}
	return r.Verdict.String() + " by " + numfmt.FormatInt(abs(r.Diff))
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
