package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/csg33k/semogye/internal/adapters/csvexport"
	"github.com/csg33k/semogye/internal/calc"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/forms"
	"github.com/csg33k/semogye/internal/sharestate"
	"github.com/csg33k/semogye/internal/templates"
)

// Form keys naming the roster the rows were loaded from.
const (
	keyRosterID   = "roster_id"
	keyRosterName = "roster_name"
)

func (h *Handler) payrollView(p forms.Payroll, q url.Values) templates.PayrollView {
	enc := p.Values()
	if name := q.Get(keyRosterName); name != "" {
		enc.Set(keyRosterName, name)
	}
	qs := enc.Encode()
	id, _ := strconv.ParseInt(q.Get(keyRosterID), 10, 64)
	return templates.PayrollView{
		Page:       h.page("Payroll", "/hourly-multi"),
		Form:       p,
		Result:     calc.Payroll(p.WorkerRows()),
		ShareURL:   h.shareURL("/hourly-multi", p),
		CSVURL:     "/hourly-multi/export.csv?" + qs,
		PDFURL:     "/hourly-multi/payslips.pdf?" + qs,
		Full:       len(p.Rows) >= domain.MaxWorkers,
		RosterID:   id,
		RosterName: q.Get(keyRosterName),
	}
}

func (h *Handler) payrollPage(w http.ResponseWriter, r *http.Request) {
	if restore(w, r, "/hourly-multi", forms.Payroll.Values) {
		return
	}
	q := r.URL.Query()
	render(w, r, templates.PayrollPage(h.payrollView(forms.ParsePayroll(q), q)))
}

func (h *Handler) payrollResult(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := forms.ParsePayroll(q)
	w.Header().Set(sharestate.Replace.Header(), "/hourly-multi?"+p.Values().Encode())
	render(w, r, templates.PayrollResult(h.payrollView(p, q)))
}

func (h *Handler) payrollShare(w http.ResponseWriter, r *http.Request) {
	plain(w, h.shareURL("/hourly-multi", forms.ParsePayroll(r.URL.Query())))
}

func (h *Handler) addWorker(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	p := forms.ParsePayroll(r.Form)
	if err := p.Add(); err != nil {
		h.fail(w, r, err)
		return
	}
	h.payrollBody(w, r, p)
}

// removeWorker reads the rows from the query string, where htmx puts the
// form values of a DELETE.
func (h *Handler) removeWorker(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	p := forms.ParsePayroll(r.Form)
	p.Remove(r.PathValue("id"))
	h.payrollBody(w, r, p)
}

func (h *Handler) payrollBody(w http.ResponseWriter, r *http.Request, p forms.Payroll) {
	w.Header().Set(sharestate.Replace.Header(), "/hourly-multi?"+p.Values().Encode())
	render(w, r, templates.PayrollBody(h.payrollView(p, r.Form)))
}

func (h *Handler) payrollCSV(w http.ResponseWriter, r *http.Request) {
	res := calc.Payroll(forms.ParsePayroll(r.URL.Query()).WorkerRows())
	var buf bytes.Buffer
	if err := csvexport.WritePayroll(&buf, res); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := fmt.Sprintf("payroll_%s.csv", h.now().Format("20060102"))
	download(w, "text/csv; charset=utf-8", filename, buf.Bytes())
}

func (h *Handler) payslipsPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := calc.Payroll(forms.ParsePayroll(q).WorkerRows())
	title := q.Get(keyRosterName)
	if title == "" {
		title = "Payroll " + h.now().Format("2006-01")
	}
	var buf bytes.Buffer
	if err := h.slips.Render(r.Context(), title, res, &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	filename := fmt.Sprintf("payslips_%s.pdf", h.now().Format("20060102"))
	download(w, "application/pdf", filename, buf.Bytes())
}

// ── Rosters ──────────────────────────────────────────────────────────────────

func (h *Handler) rosterFromForm(r *http.Request) *domain.Roster {
	name := strings.TrimSpace(r.FormValue(keyRosterName))
	if name == "" {
		name = "Payroll " + h.now().Format("2006-01-02 15:04")
	}
	return &domain.Roster{
		Name:    name,
		Workers: forms.ParsePayroll(r.Form).WorkerRows(),
	}
}

func (h *Handler) createRoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	ro := h.rosterFromForm(r)
	if err := h.repo.CreateRoster(r.Context(), ro); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("HX-Redirect", fmt.Sprintf("/rosters/%d", ro.ID))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	ro := h.rosterFromForm(r)
	ro.ID = id
	if err := h.repo.UpdateRoster(r.Context(), ro); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("HX-Redirect", fmt.Sprintf("/rosters/%d", id))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listRosters(w http.ResponseWriter, r *http.Request) {
	rosters, err := h.repo.ListRosters(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, templates.RostersPage(templates.RostersView{Page: h.page("Saved rosters", "/rosters"), Rosters: rosters}))
}

// viewRoster opens the payroll page with the saved rows.
func (h *Handler) viewRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	ro, err := h.repo.GetRoster(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	q := url.Values{keyRosterID: {strconv.FormatInt(ro.ID, 10)}, keyRosterName: {ro.Name}}
	v := h.payrollView(forms.PayrollFromRows(ro.Workers), q)
	v.Title = ro.Name
	render(w, r, templates.PayrollPage(v))
}

func (h *Handler) deleteRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := h.repo.DeleteRoster(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	rosters, err := h.repo.ListRosters(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render(w, r, templates.RosterList(templates.RostersView{Rosters: rosters}))
}
