package forms

import (
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
	"github.com/csg33k/semogye/internal/sharestate"
)

// Freelance is the 3.3% withholding page, mirrored into ?amount=.
type Freelance struct {
	Amount string `json:"amount"`
}

func (f *Freelance) Sync() *sharestate.Sync {
	return sharestate.NewSync(sharestate.Replace,
		sharestate.Bind("amount", &f.Amount, sharestate.CommaNumber),
	)
}

func (f Freelance) Gross() int64 { return numfmt.ParseDigits(f.Amount) }

// Compare is the part-time versus freelance page, mirrored into ?w=&h=&f=.
type Compare struct {
	HourlyWage     string `json:"hourlyWage"`
	MonthlyHours   string `json:"monthlyHours"`
	FreelanceGross string `json:"freelanceGross"`
}

func (f *Compare) Sync() *sharestate.Sync {
	return sharestate.NewSync(sharestate.Replace,
		sharestate.Bind("w", &f.HourlyWage, sharestate.CommaNumber),
		sharestate.Bind("h", &f.MonthlyHours, sharestate.PlainNumber),
		sharestate.Bind("f", &f.FreelanceGross, sharestate.CommaNumber),
	)
}

func (f Compare) Inputs() domain.CompareInputs {
	return domain.CompareInputs{
		HourlyWage:     numfmt.ParseDigits(f.HourlyWage),
		MonthlyHours:   numfmt.ParseDigits(f.MonthlyHours),
		FreelanceGross: numfmt.ParseDigits(f.FreelanceGross),
	}
}

// Burden is the debt repayment burden page, mirrored into ?i=&p=.
type Burden struct {
	Income  string `json:"income"`
	Payment string `json:"payment"`
}

func (f *Burden) Sync() *sharestate.Sync {
	return sharestate.NewSync(sharestate.Replace,
		sharestate.Bind("i", &f.Income, sharestate.CommaNumber),
		sharestate.Bind("p", &f.Payment, sharestate.CommaNumber),
	)
}

func (f Burden) Amounts() (income, payment int64) {
	return numfmt.ParseDigits(f.Income), numfmt.ParseDigits(f.Payment)
}
