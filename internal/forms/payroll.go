package forms

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

// Extra query keys of the payroll form. Each row repeats every key once, so
// the n-th value of each key belongs to the n-th worker.
const (
	KeyID         = "id"
	KeyName       = "name"
	KeyFreelancer = "freelancer"
)

// Worker is one row of the multi-worker payroll page.
type Worker struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	HourlyWageRaw           string `json:"hourlyWageRaw"`
	MonthlyHoursRaw         string `json:"monthlyHoursRaw"`
	IsFreelancer            bool   `json:"isFreelancer"`
	IncludeWeeklyHolidayPay bool   `json:"includeWeeklyHolidayPay"`
	AvgWorkDaysPerWeekRaw   string `json:"avgWorkDaysPerWeekRaw"`
}

// Payroll is the multi-worker payroll page.
type Payroll struct {
	Rows []Worker `json:"rows"`
}

// NewID returns a fresh row ID.
func NewID() string { return uuid.NewString() }

func defaultName(i int) string { return fmt.Sprintf("Worker %d", i+1) }

// NewWorker is a blank row placed at index i.
func NewWorker(i int) Worker {
	return Worker{
		ID:                    NewID(),
		Name:                  defaultName(i),
		AvgWorkDaysPerWeekRaw: strconv.Itoa(domain.DefaultWorkDaysPerWeek),
	}
}

func DefaultPayroll() Payroll {
	return Payroll{Rows: []Worker{NewWorker(0)}}
}

// UnmarshalJSON keeps at most domain.MaxWorkers rows and fills in missing
// IDs, names and day counts. A payload with no rows is rejected.
func (p *Payroll) UnmarshalJSON(b []byte) error {
	var raw struct {
		Rows []struct {
			Worker
			Name *string `json:"name"`
			Days *string `json:"avgWorkDaysPerWeekRaw"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw.Rows) == 0 {
		return domain.ErrEmptyRoster
	}
	rows := make([]Worker, 0, min(len(raw.Rows), domain.MaxWorkers))
	for i, r := range raw.Rows {
		if i == domain.MaxWorkers {
			break
		}
		w := r.Worker
		w.Name = defaultName(i)
		if r.Name != nil {
			w.Name = *r.Name
		}
		w.AvgWorkDaysPerWeekRaw = strconv.Itoa(domain.DefaultWorkDaysPerWeek)
		if r.Days != nil {
			w.AvgWorkDaysPerWeekRaw = *r.Days
		}
		if w.ID == "" {
			w.ID = NewID()
		}
		rows = append(rows, w)
	}
	p.Rows = rows
	return nil
}

// ParsePayroll reads the payroll form from q. Rows past domain.MaxWorkers
// are dropped; no rows at all gives the default single blank row.
func ParsePayroll(q url.Values) Payroll {
	n := 0
	for _, k := range []string{KeyID, KeyName, KeyWage, KeyHours, KeyFreelancer, KeyHoliday, KeyDays} {
		n = max(n, len(q[k]))
	}
	if n == 0 {
		return DefaultPayroll()
	}
	n = min(n, domain.MaxWorkers)
	at := func(k string, i int) (string, bool) {
		if vs := q[k]; i < len(vs) {
			return vs[i], true
		}
		return "", false
	}

	p := Payroll{Rows: make([]Worker, n)}
	for i := range n {
		w := NewWorker(i)
		if id, _ := at(KeyID, i); id != "" {
			w.ID = id
		}
		if name, ok := at(KeyName, i); ok {
			w.Name = name
		}
		wage, _ := at(KeyWage, i)
		w.HourlyWageRaw = numfmt.NormalizeDecimal(wage)
		hours, _ := at(KeyHours, i)
		w.MonthlyHoursRaw = numfmt.NormalizeDecimal(hours)
		fl, _ := at(KeyFreelancer, i)
		w.IsFreelancer = fl == "yes"
		hol, _ := at(KeyHoliday, i)
		w.IncludeWeeklyHolidayPay = hol == "yes"
		if days, ok := at(KeyDays, i); ok {
			w.AvgWorkDaysPerWeekRaw = numfmt.NormalizeDecimal(days)
		}
		p.Rows[i] = w
	}
	return p
}

// Values is the inverse of ParsePayroll.
func (p Payroll) Values() url.Values {
	q := url.Values{}
	for _, w := range p.Rows {
		q.Add(KeyID, w.ID)
		q.Add(KeyName, w.Name)
		q.Add(KeyWage, numfmt.NormalizeDecimal(w.HourlyWageRaw))
		q.Add(KeyHours, numfmt.NormalizeDecimal(w.MonthlyHoursRaw))
		q.Add(KeyFreelancer, yesNo(w.IsFreelancer))
		q.Add(KeyHoliday, yesNo(w.IncludeWeeklyHolidayPay))
		q.Add(KeyDays, numfmt.NormalizeDecimal(w.AvgWorkDaysPerWeekRaw))
	}
	return q
}

// Add appends a blank row. It returns domain.ErrTooManyWorkers when the
// payroll is full.
func (p *Payroll) Add() error {
	if len(p.Rows) >= domain.MaxWorkers {
		return domain.ErrTooManyWorkers
	}
	p.Rows = append(p.Rows, NewWorker(len(p.Rows)))
	return nil
}

// Remove drops the row with the given ID. The last remaining row is never
// removed.
func (p *Payroll) Remove(id string) {
	if len(p.Rows) <= 1 {
		return
	}
	for i, w := range p.Rows {
		if w.ID == id {
			p.Rows = append(p.Rows[:i], p.Rows[i+1:]...)
			return
		}
	}
}

// WorkerRows coerces every row for calc.Payroll.
func (p Payroll) WorkerRows() []domain.WorkerRow {
	rows := make([]domain.WorkerRow, len(p.Rows))
	for i, w := range p.Rows {
		rows[i] = domain.WorkerRow{
			ID:           w.ID,
			Name:         w.Name,
			HourlyInputs: hourlyInputs(w.HourlyWageRaw, w.MonthlyHoursRaw, w.AvgWorkDaysPerWeekRaw, w.IncludeWeeklyHolidayPay),
			IsFreelancer: w.IsFreelancer,
		}
	}
	return rows
}

// PayrollFromRows rebuilds page state from stored rows.
func PayrollFromRows(rows []domain.WorkerRow) Payroll {
	if len(rows) == 0 {
		return DefaultPayroll()
	}
	p := Payroll{Rows: make([]Worker, 0, len(rows))}
	for _, r := range rows {
		p.Rows = append(p.Rows, Worker{
			ID:                      r.ID,
			Name:                    r.Name,
			HourlyWageRaw:           decimalString(r.HourlyInputs.HourlyWage),
			MonthlyHoursRaw:         decimalString(r.HourlyInputs.MonthlyHours),
			IsFreelancer:            r.IsFreelancer,
			IncludeWeeklyHolidayPay: r.HourlyInputs.IncludeWeeklyHolidayPay,
			AvgWorkDaysPerWeekRaw:   strconv.Itoa(r.HourlyInputs.WorkDaysPerWeek),
		})
	}
	return p
}

func decimalString(x float64) string {
	if x == 0 {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
