package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
)

const maxBody = 1 << 20

// decode reads a JSON request body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), 400)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// result wraps every API answer; Result is null when the inputs produce no
// result.
type result struct {
	Result any `json:"result"`
}

type salaryJSON struct {
	Gross           int64 `json:"gross"`
	Pension         int64 `json:"pension"`
	Health          int64 `json:"health"`
	LongTermCare    int64 `json:"longTermCare"`
	Employment      int64 `json:"employment"`
	IncomeTax       int64 `json:"incomeTax"`
	ResidentTax     int64 `json:"residentTax"`
	TotalDeductions int64 `json:"totalDeductions"`
	TakeHome        int64 `json:"takeHome"`
}

func (h *Handler) apiSalary(w http.ResponseWriter, r *http.Request) {
	f := forms.DefaultSalary()
	if !decode(w, r, &f) {
		return
	}
	in := f.Inputs()
	res, ok := calc.Salary(h.table, in)
	if !ok {
		writeJSON(w, result{})
		return
	}
	writeJSON(w, result{salaryJSON{
		Gross:           in.GrossSalary,
		Pension:         res.Pension,
		Health:          res.Health,
		LongTermCare:    res.LongTermCare,
		Employment:      res.Employment,
		IncomeTax:       res.IncomeTax,
		ResidentTax:     res.ResidentTax,
		TotalDeductions: res.TotalDeductions(),
		TakeHome:        res.TakeHome,
	}})
}

type hourlyJSON struct {
	BasePay          float64 `json:"basePay"`
	WeeklyHolidayPay float64 `json:"weeklyHolidayPay"`
	TotalPay         float64 `json:"totalPay"`
	WeeklyHours      float64 `json:"weeklyHours"`
	Eligible         bool    `json:"eligible"`
}

func (h *Handler) apiHourly(w http.ResponseWriter, r *http.Request) {
	f := forms.DefaultHourly()
	if !decode(w, r, &f) {
		return
	}
	res := calc.Hourly(f.Inputs())
	writeJSON(w, result{hourlyJSON(res)})
}

type workerJSON struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	IsFreelancer     bool    `json:"isFreelancer"`
	HourlyWage       float64 `json:"hourlyWage"`
	MonthlyHours     float64 `json:"monthlyHours"`
	BasePay          float64 `json:"basePay"`
	WeeklyHolidayPay float64 `json:"weeklyHolidayPay"`
	GrossPay         float64 `json:"grossPay"`
	Withholding      float64 `json:"withholding"`
	NetPay           float64 `json:"netPay"`
}

type totalsJSON struct {
	Hours            float64 `json:"hours"`
	BasePay          float64 `json:"basePay"`
	WeeklyHolidayPay float64 `json:"weeklyHolidayPay"`
	GrossPay         float64 `json:"grossPay"`
	Withholding      float64 `json:"withholding"`
	NetPay           float64 `json:"netPay"`
}

type payrollJSON struct {
	Items  []workerJSON `json:"items"`
	Totals totalsJSON   `json:"totals"`
}

func (h *Handler) apiPayroll(w http.ResponseWriter, r *http.Request) {
	var p forms.Payroll
	if !decode(w, r, &p) {
		return
	}
	res := calc.Payroll(p.WorkerRows())
	out := payrollJSON{Items: make([]workerJSON, len(res.Items)), Totals: totalsJSON(res.Totals)}
	for i, it := range res.Items {
		out.Items[i] = workerJSON(it)
	}
	writeJSON(w, result{out})
}

type freelanceJSON struct {
	Gross     int64 `json:"gross"`
	IncomeTax int64 `json:"incomeTax"`
	LocalTax  int64 `json:"localTax"`
	TotalTax  int64 `json:"totalTax"`
	TakeHome  int64 `json:"takeHome"`
}

func (h *Handler) apiFreelance(w http.ResponseWriter, r *http.Request) {
	var f forms.Freelance
	if !decode(w, r, &f) {
		return
	}
	gross := f.Gross()
	res := calc.Freelance(gross)
	writeJSON(w, result{freelanceJSON{
		Gross:     gross,
		IncomeTax: res.IncomeTax,
		LocalTax:  res.LocalTax,
		TotalTax:  res.TotalTax,
		TakeHome:  res.TakeHome,
	}})
}

type compareJSON struct {
	PartTimeGross  int64  `json:"partTimeGross"`
	FreelanceGross int64  `json:"freelanceGross"`
	Withholding    int64  `json:"withholding"`
	FreelanceNet   int64  `json:"freelanceNet"`
	Diff           int64  `json:"diff"`
	Verdict        string `json:"verdict"`
	Label          string `json:"label"`
}

func (h *Handler) apiCompare(w http.ResponseWriter, r *http.Request) {
	var f forms.Compare
	if !decode(w, r, &f) {
		return
	}
	res := calc.Compare(f.Inputs())
	writeJSON(w, result{compareJSON{
		PartTimeGross:  res.PartTimeGross,
		FreelanceGross: res.FreelanceGross,
		Withholding:    res.Withholding,
		FreelanceNet:   res.FreelanceNet,
		Diff:           res.Diff,
		Verdict:        res.Verdict.String(),
		Label:          calc.Label(res),
	}})
}

type burdenJSON struct {
	Ratio  float64 `json:"ratio"`
	Band   string  `json:"band"`
	Title  string  `json:"title"`
	Advice string  `json:"advice"`
}

var bandNames = map[domain.BurdenBand]string{
	domain.BurdenLow:   "low",
	domain.BurdenWatch: "watch",
	domain.BurdenHigh:  "high",
}

func (h *Handler) apiBurden(w http.ResponseWriter, r *http.Request) {
	var f forms.Burden
	if !decode(w, r, &f) {
		return
	}
	res, ok := calc.Burden(f.Amounts())
	if !ok {
		writeJSON(w, result{})
		return
	}
	writeJSON(w, result{burdenJSON{Ratio: res.Ratio, Band: bandNames[res.Band], Title: res.Title, Advice: res.Advice}})
}
