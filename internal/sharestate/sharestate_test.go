package sharestate_test

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/csg33k/semogye/internal/forms"
	"github.com/csg33k/semogye/internal/sharestate"
)

type salaryState struct {
	SalaryRaw  string `json:"salaryRaw"`
	Insured    string `json:"insured"`
	Dependents string `json:"dependents"`
	NonTax     int64  `json:"nonTax"`
}

func raw(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

type noteState struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Count int64    `json:"count"`
	On    bool     `json:"on"`
}

func roundTrip[T any](in T) func(t *testing.T) {
	return func(t *testing.T) {
		enc, err := sharestate.EncodeInputs(in)
		if err != nil {
			t.Fatalf("EncodeInputs: %v", err)
		}
		if strings.ContainsAny(enc, "+/=") {
			t.Errorf("encoded form %q is not unpadded base64url", enc)
		}
		got, ok := sharestate.DecodeInputs[T](enc)
		if !ok {
			t.Fatal("DecodeInputs rejected its own output")
		}
		if !reflect.DeepEqual(got, in) {
			t.Errorf("DecodeInputs = %+v, want %+v", got, in)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"plain struct", roundTrip(salaryState{SalaryRaw: "3,000,000", Insured: "yes", Dependents: "2", NonTax: 200000})},
		{"zero value", roundTrip(salaryState{})},
		{"hangul text", roundTrip(noteState{Title: "세모계 급여 계산기", Tags: []string{"월급", "실수령액", ""}, Count: 3, On: true})},
		{"empty strings", roundTrip(noteState{Title: "", Tags: []string{}})},
		{"salary form", roundTrip(forms.Salary{SalaryRaw: "4,500,000", Insured: "no", Dependents: "3", Child20: "1", NonTax: 0})},
		{"hourly form", roundTrip(forms.Hourly{HourlyWageRaw: "12000.5", MonthlyHoursRaw: "86.5", IncludeWeeklyHolidayPay: true, AvgWorkDaysPerWeekRaw: "5"})},
		{"payroll form", roundTrip(forms.Payroll{Rows: []forms.Worker{
			{ID: "a1", Name: "김민수", HourlyWageRaw: "10030", MonthlyHoursRaw: "120", IncludeWeeklyHolidayPay: true, AvgWorkDaysPerWeekRaw: "5"},
			{ID: "b2", Name: "", HourlyWageRaw: "", MonthlyHoursRaw: "", AvgWorkDaysPerWeekRaw: ""},
			{ID: "c3", Name: "Lee \"Jay\" <b>", HourlyWageRaw: "15000", MonthlyHoursRaw: "60.5", IsFreelancer: true, AvgWorkDaysPerWeekRaw: "3"},
		}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func TestDecode_PlainSnapshot(t *testing.T) {
	in := salaryState{SalaryRaw: "3,000,000", Insured: "yes", Dependents: "2", NonTax: 200000}
	enc, err := sharestate.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, ok := sharestate.Decode[salaryState](enc)
	if !ok || got != in {
		t.Errorf("Decode = %+v, %v, want %+v", got, ok, in)
	}
}

func TestEncode_Envelope(t *testing.T) {
	enc, err := sharestate.Encode(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{`"v":1`, `"t":`, `"s":{"a":1}`} {
		if !strings.Contains(s, want) {
			t.Errorf("envelope %s missing %s", s, want)
		}
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"not json", raw("hello")},
		{"wrong version", raw(`{"v":2,"t":1,"s":{"salaryRaw":"1"}}`)},
		{"version as string", raw(`{"v":"1","t":1,"s":{}}`)},
		{"missing version", raw(`{"t":1,"s":{}}`)},
		{"missing payload", raw(`{"v":1,"t":1}`)},
		{"null payload", raw(`{"v":1,"t":1,"s":null}`)},
		{"payload of wrong shape", raw(`{"v":1,"t":1,"s":[1,2]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := sharestate.Decode[salaryState](tt.in); ok {
				t.Errorf("Decode(%q) = %+v, want failure", tt.in, got)
			}
		})
	}
}

func TestDecode_Tolerant(t *testing.T) {
	body := `{"v":1,"t":1700000000000,"s":{"salaryRaw":"2,500,000"}}`
	padded := base64.URLEncoding.EncodeToString([]byte(body))
	std := base64.StdEncoding.EncodeToString([]byte(body))
	for _, in := range []string{padded, std, " " + raw(body) + "\n"} {
		got, ok := sharestate.Decode[salaryState](in)
		if !ok || got.SalaryRaw != "2,500,000" {
			t.Errorf("Decode(%q) = %+v, %v", in, got, ok)
		}
	}
}

func TestInputs(t *testing.T) {
	in := salaryState{SalaryRaw: "1,000", Dependents: "1"}
	enc, err := sharestate.EncodeInputs(in)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := sharestate.DecodeInputs[salaryState](enc)
	if !ok || got != in {
		t.Errorf("DecodeInputs = %+v, %v", got, ok)
	}

	// A bare state without the inputs wrapper is not a page snapshot.
	bare, _ := sharestate.Encode(in)
	if _, ok := sharestate.DecodeInputs[salaryState](bare); ok {
		t.Error("DecodeInputs accepted a snapshot with no inputs")
	}
}

func TestCodecs(t *testing.T) {
	t.Run("CommaNumber", func(t *testing.T) {
		c := sharestate.CommaNumber
		cases := map[string]string{"12000": "12,000", "12,000": "12,000", "abc": "", "0": ""}
		for in, want := range cases {
			if got := c.Decode(in); got != want {
				t.Errorf("Decode(%q) = %q, want %q", in, got, want)
			}
		}
		if got := c.Encode("1,234,567"); got != "1234567" {
			t.Errorf("Encode = %q", got)
		}
		if got := c.Encode(""); got != "" {
			t.Errorf("Encode(empty) = %q", got)
		}
	})
	t.Run("PlainNumber", func(t *testing.T) {
		c := sharestate.PlainNumber
		if got := c.Decode("1,60"); got != "160" {
			t.Errorf("Decode = %q", got)
		}
		if got := c.Decode("0"); got != "" {
			t.Errorf("Decode(0) = %q", got)
		}
		if got := c.Encode("160h"); got != "160" {
			t.Errorf("Encode = %q", got)
		}
	})
	t.Run("Int", func(t *testing.T) {
		c := sharestate.Int
		if got := c.Decode("-5"); got != 5 {
			t.Errorf("Decode(-5) = %d", got)
		}
		if got := c.Encode(0); got != "" {
			t.Errorf("Encode(0) = %q", got)
		}
		if got := c.Encode(7); got != "7" {
			t.Errorf("Encode(7) = %q", got)
		}
	})
	t.Run("YesNo", func(t *testing.T) {
		c := sharestate.YesNo
		for in, want := range map[string]bool{"no": false, "yes": true, "maybe": true, "NO": true} {
			if got := c.Decode(in); got != want {
				t.Errorf("Decode(%q) = %v, want %v", in, got, want)
			}
		}
		if c.Encode(false) != "no" || c.Encode(true) != "yes" {
			t.Error("Encode does not round-trip")
		}
	})
}

func TestSync(t *testing.T) {
	var (
		income  = ""
		payment = ""
	)
	s := sharestate.NewSync(sharestate.Replace,
		sharestate.Bind("i", &income, sharestate.CommaNumber),
		sharestate.Bind("p", &payment, sharestate.CommaNumber),
	)

	q := url.Values{"i": {"3000000"}, "p": {""}, "utm": {"x"}}
	if !s.Restore(q) {
		t.Fatal("Restore found nothing")
	}
	if income != "3,000,000" || payment != "" {
		t.Fatalf("restored income=%q payment=%q", income, payment)
	}

	// Restore only runs once.
	if s.Restore(url.Values{"i": {"1"}}) || income != "3,000,000" {
		t.Errorf("second Restore changed state to %q", income)
	}

	payment = "900,000"
	got := s.Apply(q)
	if got.Get("i") != "3000000" || got.Get("p") != "900000" || got.Get("utm") != "x" {
		t.Errorf("Apply = %v", got)
	}
	if q.Get("p") != "" {
		t.Error("Apply modified its input")
	}

	income = ""
	if u := s.URL("/burden", q); u != "/burden?p=900000&utm=x" {
		t.Errorf("URL = %q", u)
	}

	payment = "0"
	if u := s.URL("/burden", nil); u != "/burden" {
		t.Errorf("URL with nothing set = %q", u)
	}
}

func TestSync_Header(t *testing.T) {
	w := "11,000"
	h := http.Header{}
	sharestate.NewSync(sharestate.Push, sharestate.Bind("w", &w, sharestate.CommaNumber)).
		SetHeader(h, "/compare", nil)
	if got := h.Get("HX-Push-Url"); got != "/compare?w=11000" {
		t.Errorf("HX-Push-Url = %q", got)
	}
	if sharestate.Replace.Header() != "HX-Replace-Url" {
		t.Errorf("Replace.Header() = %q", sharestate.Replace.Header())
	}
}
