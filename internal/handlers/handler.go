package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/ports"
	"github.com/csg33k/semogye/internal/sharestate"
	"github.com/csg33k/semogye/internal/templates"
	"github.com/csg33k/semogye/internal/withholding"
)

type Handler struct {
	repo    ports.RosterRepository
	slips   ports.PayslipRenderer
	table   *withholding.Table
	siteURL string
	log     *slog.Logger
	now     func() time.Time
}

func New(repo ports.RosterRepository, slips ports.PayslipRenderer, table *withholding.Table, siteURL string, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{repo: repo, slips: slips, table: table, siteURL: siteURL, log: log, now: time.Now}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)

	mux.HandleFunc("GET /salary", h.salaryPage)
	mux.HandleFunc("GET /salary/result", h.salaryResult)
	mux.HandleFunc("GET /salary/share", h.salaryShare)
	mux.HandleFunc("GET /salary/export.csv", h.salaryCSV)

	mux.HandleFunc("GET /hourly", h.hourlyPage)
	mux.HandleFunc("GET /hourly/result", h.hourlyResult)
	mux.HandleFunc("GET /hourly/share", h.hourlyShare)

	mux.HandleFunc("GET /hourly-multi", h.payrollPage)
	mux.HandleFunc("GET /hourly-multi/result", h.payrollResult)
	mux.HandleFunc("GET /hourly-multi/share", h.payrollShare)
	mux.HandleFunc("POST /hourly-multi/rows", h.addWorker)
	mux.HandleFunc("DELETE /hourly-multi/rows/{id}", h.removeWorker)
	mux.HandleFunc("GET /hourly-multi/export.csv", h.payrollCSV)
	mux.HandleFunc("GET /hourly-multi/payslips.pdf", h.payslipsPDF)

	mux.HandleFunc("GET /freelance", h.freelancePage)
	mux.HandleFunc("GET /freelance/result", h.freelanceResult)
	mux.HandleFunc("GET /freelance/share", h.freelanceShare)

	mux.HandleFunc("GET /compare", h.comparePage)
	mux.HandleFunc("GET /compare/result", h.compareResult)
	mux.HandleFunc("GET /compare/share", h.compareShare)

	mux.HandleFunc("GET /burden", h.burdenPage)
	mux.HandleFunc("GET /burden/result", h.burdenResult)
	mux.HandleFunc("GET /burden/share", h.burdenShare)

	mux.HandleFunc("POST /rosters", h.createRoster)
	mux.HandleFunc("GET /rosters", h.listRosters)
	mux.HandleFunc("GET /rosters/{id}", h.viewRoster)
	mux.HandleFunc("PUT /rosters/{id}", h.updateRoster)
	mux.HandleFunc("DELETE /rosters/{id}", h.deleteRoster)

	mux.HandleFunc("POST /api/salary", h.apiSalary)
	mux.HandleFunc("POST /api/hourly", h.apiHourly)
	mux.HandleFunc("POST /api/payroll", h.apiPayroll)
	mux.HandleFunc("POST /api/freelance", h.apiFreelance)
	mux.HandleFunc("POST /api/compare", h.apiCompare)
	mux.HandleFunc("POST /api/burden", h.apiBurden)

	mux.HandleFunc("GET /sitemap.xml", h.sitemap)
	mux.HandleFunc("GET /robots.txt", h.robots)
	return mux
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	rosters, err := h.repo.ListRosters(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(rosters) > 5 {
		rosters = rosters[:5]
	}
	render(w, r, templates.Index(templates.IndexView{Page: h.page("Calculators", "/"), Rosters: rosters}))
}

func (h *Handler) page(title, path string) templates.Page {
	return templates.Page{Title: title, Path: path, TaxYear: h.table.Year}
}

// shareURL builds an absolute ?data= link carrying inputs.
func (h *Handler) shareURL(path string, inputs any) string {
	enc, err := sharestate.EncodeInputs(inputs)
	if err != nil {
		h.log.Warn("encode share link", "path", path, "err", err)
		return ""
	}
	return h.siteURL + path + "?" + url.Values{sharestate.DataParam: {enc}}.Encode()
}

// restore answers a ?data= link by redirecting to the same page with the
// decoded inputs as field parameters. A link that does not decode lands on
// the blank page. It reports whether a redirect was sent.
func restore[T any](w http.ResponseWriter, r *http.Request, path string, values func(T) url.Values) bool {
	enc := r.URL.Query().Get(sharestate.DataParam)
	if enc == "" {
		return false
	}
	target := path
	if in, ok := sharestate.DecodeInputs[T](enc); ok {
		target += "?" + values(in).Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
	return true
}

// fail maps domain errors to status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRosterNotFound):
		http.Error(w, err.Error(), 404)
	case errors.Is(err, domain.ErrTooManyWorkers), errors.Is(err, domain.ErrEmptyRoster),
		errors.Is(err, domain.ErrNeedsUnicodeFont):
		http.Error(w, err.Error(), 400)
	default:
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		http.Error(w, err.Error(), 500)
	}
}

func download(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(body)
}

func plain(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, s)
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}
