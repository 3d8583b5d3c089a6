package calc

import (
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

// WeeksPerMonth is the average number of weeks in a month (52/12).
const WeeksPerMonth = 52.0 / 12.0

// Weekly holiday pay (주휴수당) rules.
const (
	MinWeeklyHours       = 15
	MaxHolidayHoursPerWk = 8
)

// FreelanceRate is the combined 3.3% withholding on freelancer pay.
const FreelanceRate = 0.033

// Hourly computes monthly pay for an hourly worker, including the weekly
// holiday allowance when requested and the worker averages at least 15
// hours a week.
func Hourly(in domain.HourlyInputs) domain.HourlyResult {
	wage := numfmt.Clamp(in.HourlyWage, 0, domain.MaxHourlyWage)
	hours := numfmt.Clamp(in.MonthlyHours, 0, domain.MaxMonthlyHours)
	days := numfmt.Clamp(in.WorkDaysPerWeek, 1, 7)

	base := wage * hours
	weekly := hours / WeeksPerMonth
	eligible := weekly >= MinWeeklyHours

	var holidayHoursPerWeek float64
	if eligible {
		holidayHoursPerWeek = min(MaxHolidayHoursPerWk, weekly/float64(days))
	}
	var holiday float64
	if in.IncludeWeeklyHolidayPay {
		holiday = wage * holidayHoursPerWeek * WeeksPerMonth
	}
	return domain.HourlyResult{
		BasePay:          base,
		WeeklyHolidayPay: holiday,
		TotalPay:         base + holiday,
		WeeklyHours:      weekly,
		Eligible:         eligible,
	}
}

// Payroll runs Hourly for every row, withholds 3.3% from freelancer rows
// and totals the lot. Rows past domain.MaxWorkers are ignored.
func Payroll(rows []domain.WorkerRow) domain.PayrollResult {
	if len(rows) > domain.MaxWorkers {
		rows = rows[:domain.MaxWorkers]
	}
	res := domain.PayrollResult{Items: make([]domain.WorkerPay, 0, len(rows))}
	for _, row := range rows {
		h := Hourly(row.HourlyInputs)
		var withholding float64
		if row.IsFreelancer {
			withholding = h.TotalPay * FreelanceRate
		}
		item := domain.WorkerPay{
			ID:               row.ID,
			Name:             row.Name,
			IsFreelancer:     row.IsFreelancer,
			HourlyWage:       numfmt.Clamp(row.HourlyInputs.HourlyWage, 0, domain.MaxHourlyWage),
			MonthlyHours:     numfmt.Clamp(row.HourlyInputs.MonthlyHours, 0, domain.MaxMonthlyHours),
			BasePay:          h.BasePay,
			WeeklyHolidayPay: h.WeeklyHolidayPay,
			GrossPay:         h.TotalPay,
			Withholding:      withholding,
			NetPay:           h.TotalPay - withholding,
		}
		res.Items = append(res.Items, item)

		res.Totals.Hours += item.MonthlyHours
		res.Totals.BasePay += item.BasePay
		res.Totals.WeeklyHolidayPay += item.WeeklyHolidayPay
		res.Totals.GrossPay += item.GrossPay
		res.Totals.Withholding += item.Withholding
		res.Totals.NetPay += item.NetPay
	}
	return res
}
