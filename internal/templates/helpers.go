package templates

import (
	"html/template"
	"strconv"

	"github.com/csg33k/semogye/internal/numfmt"
)

var funcs = template.FuncMap{
	"won":    numfmt.FormatKRW,
	"wonInt": numfmt.FormatInt,
	"hours":  hours,
	"pct":    pct,
	"itoa":   itoa,
	"yesNo":  yesNo,
	"inc":    func(i int) int { return i + 1 },
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// hours renders a result-row hour count with one decimal; zero stays "0.0".
func hours(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}

func pct(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64) + "%"
}

// itoa converts an int64 to a string, used for building URL paths.
func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
