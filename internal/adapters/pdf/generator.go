// Package pdf prints payroll payslips. One A4 page is produced per worker;
// each page shows the worker, the issue date and a table of pay lines from
// hourly wage down to net pay.
package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/numfmt"
)

const fontFamily = "payslip"

// Renderer implements ports.PayslipRenderer.
type Renderer struct {
	// FontPath is an optional UTF-8 TrueType font. The core Helvetica font
	// only covers cp1252; without FontPath, Render refuses a title or name it
	// cannot encode.
	FontPath string
	// Now stamps the issue date; time.Now when nil.
	Now func() time.Time
}

func New(fontPath string) *Renderer {
	return &Renderer{FontPath: fontPath}
}

// Render writes a multi-page PDF (one page per worker) to w.
func (r *Renderer) Render(ctx context.Context, title string, res domain.PayrollResult, w io.Writer) error {
	if len(res.Items) == 0 {
		return domain.ErrEmptyRoster
	}
	if r.FontPath == "" {
		if err := checkCoreFont(title, res.Items); err != nil {
			return err
		}
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	pdf.SetTitle(title, true)
	pdf.SetCreator("semogye", true)

	family, text := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	if r.FontPath != "" {
		pdf.AddUTF8Font(fontFamily, "", r.FontPath)
		pdf.AddUTF8Font(fontFamily, "B", r.FontPath)
		pdf.AddUTF8Font(fontFamily, "I", r.FontPath)
		family, text = fontFamily, func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	p := page{pdf: pdf, family: family, text: text, title: title, issued: now().Format("2006-01-02")}
	for i := range res.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdf.AddPage()
		p.draw(&res.Items[i])
	}
	return pdf.Output(w)
}

// checkCoreFont reports the first title or worker name outside cp1252.
func checkCoreFont(title string, items []domain.WorkerPay) error {
	enc := charmap.Windows1252.NewEncoder()
	if _, err := enc.String(title); err != nil {
		return fmt.Errorf("title %q: %w", title, domain.ErrNeedsUnicodeFont)
	}
	for _, it := range items {
		if _, err := enc.String(it.Name); err != nil {
			return fmt.Errorf("worker %q: %w", it.Name, domain.ErrNeedsUnicodeFont)
		}
	}
	return nil
}

type page struct {
	pdf    *fpdf.Fpdf
	family string
	text   func(string) string
	title  string
	issued string
}

func (p page) draw(it *domain.WorkerPay) {
	pdf := p.pdf
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(70, 130, 180)
	pdf.Rect(marginL, marginT, contentW, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(p.family, "B", 14)
	pdf.SetXY(marginL+3, marginT+2)
	pdf.CellFormat(contentW-40, 8, p.text(p.title), "", 0, "L", false, 0, "")
	pdf.SetFont(p.family, "", 9)
	pdf.CellFormat(34, 8, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 18

	// ── Worker ───────────────────────────────────────────────────────────────
	name := it.Name
	if name == "" {
		name = "-"
	}
	kind := "Employee"
	if it.IsFreelancer {
		kind = "Freelancer (3.3% withheld)"
	}
	colHalf := contentW / 2
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont(p.family, "B", 8)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 5.5, "WORKER", "LRT", 1, "L", true, 0, "")
	y += 5.5
	pdf.SetFont(p.family, "B", 11)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(colHalf, 7, p.text(name), "L", 0, "L", false, 0, "")
	pdf.SetFont(p.family, "", 9)
	pdf.CellFormat(colHalf, 7, "Issued "+p.issued, "R", 1, "R", false, 0, "")
	y += 7
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 6, kind, "LRB", 1, "L", false, 0, "")
	y += 11

	// ── Pay table ────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	amountW := contentW - labelW

	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(p.family, "B", 9)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(labelW, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountW, 7, "Amount", "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	y += 7

	rows := []struct {
		label, value string
		strong       bool
	}{
		{"Hourly wage", numfmt.FormatKRW(it.HourlyWage) + " KRW", false},
		{"Monthly hours", fmt.Sprintf("%.1f h", it.MonthlyHours), false},
		{"Base pay", numfmt.FormatKRW(it.BasePay) + " KRW", false},
		{"Weekly holiday pay", numfmt.FormatKRW(it.WeeklyHolidayPay) + " KRW", false},
		{"Gross pay", numfmt.FormatKRW(it.GrossPay) + " KRW", true},
		{"3.3% withholding", numfmt.FormatKRW(it.Withholding) + " KRW", false},
		{"Net pay", numfmt.FormatKRW(it.NetPay) + " KRW", true},
	}
	rowH := 7.0
	for i, r := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if r.strong {
			pdf.SetFont(p.family, "B", 10)
		} else {
			pdf.SetFont(p.family, "", 10)
		}
		pdf.SetXY(marginL, y)
		pdf.CellFormat(labelW, rowH, r.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(amountW, rowH, r.value, "1", 1, "R", true, 0, "")
		y += rowH
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetXY(marginL, pageH-marginB-6)
	pdf.SetFont(p.family, "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW, 5, "Generated automatically by semogye. Amounts are estimates.", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
