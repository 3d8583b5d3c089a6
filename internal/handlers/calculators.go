package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/csg33k/semogye/internal/adapters/csvexport"
	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
	"github.com/csg33k/semogye/internal/sharestate"
	"github.com/csg33k/semogye/internal/templates"
)

// ── Salary ───────────────────────────────────────────────────────────────────

func (h *Handler) salaryView(q url.Values) templates.SalaryView {
	f := forms.ParseSalary(q)
	in := f.Inputs()
	res, ok := calc.Salary(h.table, in)
	return templates.SalaryView{
		Page:      h.page("Monthly salary", "/salary"),
		Form:      f,
		Gross:     in.GrossSalary,
		Result:    res,
		HasResult: ok,
		ShareURL:  h.shareURL("/salary", f),
		CSVURL:    "/salary/export.csv?" + f.Values().Encode(),
	}
}

func (h *Handler) salaryPage(w http.ResponseWriter, r *http.Request) {
	if restore(w, r, "/salary", forms.Salary.Values) {
		return
	}
	render(w, r, templates.SalaryPage(h.salaryView(r.URL.Query())))
}

func (h *Handler) salaryResult(w http.ResponseWriter, r *http.Request) {
	v := h.salaryView(r.URL.Query())
	w.Header().Set(sharestate.Replace.Header(), "/salary?"+v.Form.Values().Encode())
	render(w, r, templates.SalaryResult(v))
}

func (h *Handler) salaryShare(w http.ResponseWriter, r *http.Request) {
	plain(w, h.salaryView(r.URL.Query()).ShareURL)
}

func (h *Handler) salaryCSV(w http.ResponseWriter, r *http.Request) {
	v := h.salaryView(r.URL.Query())
	if !v.HasResult {
		http.Error(w, "gross salary required", 400)
		return
	}
	var buf bytes.Buffer
	if err := csvexport.WriteSalary(&buf, v.Gross, v.Result); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := fmt.Sprintf("salary_%d_%s.csv", v.Gross, h.now().Format("20060102"))
	download(w, "text/csv; charset=utf-8", filename, buf.Bytes())
}

// ── Hourly ───────────────────────────────────────────────────────────────────

func (h *Handler) hourlyView(q url.Values) templates.HourlyView {
	f := forms.ParseHourly(q)
	return templates.HourlyView{
		Page:     h.page("Hourly wage", "/hourly"),
		Form:     f,
		Result:   calc.Hourly(f.Inputs()),
		ShareURL: h.shareURL("/hourly", f),
	}
}

func (h *Handler) hourlyPage(w http.ResponseWriter, r *http.Request) {
	if restore(w, r, "/hourly", forms.Hourly.Values) {
		return
	}
	render(w, r, templates.HourlyPage(h.hourlyView(r.URL.Query())))
}

func (h *Handler) hourlyResult(w http.ResponseWriter, r *http.Request) {
	v := h.hourlyView(r.URL.Query())
	w.Header().Set(sharestate.Replace.Header(), "/hourly?"+v.Form.Values().Encode())
	render(w, r, templates.HourlyResult(v))
}

func (h *Handler) hourlyShare(w http.ResponseWriter, r *http.Request) {
	plain(w, h.hourlyView(r.URL.Query()).ShareURL)
}

// ── Freelance ────────────────────────────────────────────────────────────────

func (h *Handler) freelanceView(q url.Values) (templates.FreelanceView, *sharestate.Sync) {
	var f forms.Freelance
	s := f.Sync()
	s.Restore(q)
	gross := f.Gross()
	return templates.FreelanceView{
		Page:     h.page("Freelance 3.3%", "/freelance"),
		Form:     f,
		Gross:    gross,
		Result:   calc.Freelance(gross),
		ShareURL: h.siteURL + s.URL("/freelance", nil),
	}, s
}

func (h *Handler) freelancePage(w http.ResponseWriter, r *http.Request) {
	v, _ := h.freelanceView(r.URL.Query())
	render(w, r, templates.FreelancePage(v))
}

func (h *Handler) freelanceResult(w http.ResponseWriter, r *http.Request) {
	v, s := h.freelanceView(r.URL.Query())
	s.SetHeader(w.Header(), "/freelance", nil)
	render(w, r, templates.FreelanceResult(v))
}

func (h *Handler) freelanceShare(w http.ResponseWriter, r *http.Request) {
	v, _ := h.freelanceView(r.URL.Query())
	plain(w, v.ShareURL)
}

// ── Compare ──────────────────────────────────────────────────────────────────

func (h *Handler) compareView(q url.Values) (templates.CompareView, *sharestate.Sync) {
	var f forms.Compare
	s := f.Sync()
	s.Restore(q)
	in := f.Inputs()
	res := calc.Compare(in)
	return templates.CompareView{
		Page:      h.page("Part-time vs freelance", "/compare"),
		Form:      f,
		Result:    res,
		Label:     calc.Label(res),
		HasResult: in != domain.CompareInputs{},
		ShareURL:  h.siteURL + s.URL("/compare", nil),
	}, s
}

func (h *Handler) comparePage(w http.ResponseWriter, r *http.Request) {
	v, _ := h.compareView(r.URL.Query())
	render(w, r, templates.ComparePage(v))
}

func (h *Handler) compareResult(w http.ResponseWriter, r *http.Request) {
	v, s := h.compareView(r.URL.Query())
	s.SetHeader(w.Header(), "/compare", nil)
	render(w, r, templates.CompareResult(v))
}

func (h *Handler) compareShare(w http.ResponseWriter, r *http.Request) {
	v, _ := h.compareView(r.URL.Query())
	plain(w, v.ShareURL)
}

// ── Burden ───────────────────────────────────────────────────────────────────

func (h *Handler) burdenView(q url.Values) (templates.BurdenView, *sharestate.Sync) {
	var f forms.Burden
	s := f.Sync()
	s.Restore(q)
	res, ok := calc.Burden(f.Amounts())
	return templates.BurdenView{
		Page:      h.page("Repayment burden", "/burden"),
		Form:      f,
		Result:    res,
		HasResult: ok,
		ShareURL:  h.siteURL + s.URL("/burden", nil),
	}, s
}

func (h *Handler) burdenPage(w http.ResponseWriter, r *http.Request) {
	v, _ := h.burdenView(r.URL.Query())
	render(w, r, templates.BurdenPage(v))
}

func (h *Handler) burdenResult(w http.ResponseWriter, r *http.Request) {
	v, s := h.burdenView(r.URL.Query())
	s.SetHeader(w.Header(), "/burden", nil)
	render(w, r, templates.BurdenResult(v))
}

func (h *Handler) burdenShare(w http.ResponseWriter, r *http.Request) {
	v, _ := h.burdenView(r.URL.Query())
	plain(w, v.ShareURL)
}
