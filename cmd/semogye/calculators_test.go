package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sqliteadapter "github.com/csg33k/semogye/internal/adapters/sqlite"
	"github.com/csg33k/semogye/internal/domain"
)

func TestCalculatorCmds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{
			name: "salary",
			args: []string{"salary", "3,000,000"},
			want: []string{"National pension", "135,000 KRW", "Take-home pay"},
		},
		{
			name: "salary uninsured",
			args: []string{"salary", "3000000", "--uninsured"},
			want: []string{"National pension          0 KRW"},
		},
		{
			name: "salary markdown",
			args: []string{"salary", "3000000", "--markdown"},
			want: []string{"# Monthly take-home pay", "```mermaid"},
		},
		{
			name: "salary csv",
			args: []string{"salary", "3000000", "--csv"},
			want: []string{"\uFEFFItem,Amount (KRW)", "National pension,135000"},
		},
		{
			name:    "salary zero",
			args:    []string{"salary", "abc"},
			wantErr: true,
		},
		{
			name: "hourly",
			args: []string{"hourly", "--wage", "12000", "--hours", "160", "--holiday"},
			want: []string{"1,920,000 KRW", "384,000 KRW", "2,304,000 KRW", "Holiday pay eligible  yes"},
		},
		{
			name: "freelance",
			args: []string{"freelance", "1,234,567"},
			want: []string{"37,037 KRW", "3,704 KRW", "1,193,826 KRW"},
		},
		{
			name: "compare",
			args: []string{"compare", "-w", "11000", "-H", "160", "-f", "2500000"},
			want: []string{"freelance higher by 657,500"},
		},
		{
			name: "burden",
			args: []string{"burden", "--income", "1,000,000", "--payment", "199,999"},
			want: []string{"20.0%", "Repayment burden 20-30%"},
		},
		{
			name: "compare link",
			args: []string{"compare", "-w", "11,000", "-H", "160", "-f", "2500000", "--link", "--site", "https://semogye.test/"},
			want: []string{"https://semogye.test/compare?f=2500000&h=160&w=11000\n"},
		},
		{
			name: "compare link drops empty fields",
			args: []string{"compare", "-w", "11000", "--link", "--site", "https://semogye.test"},
			want: []string{"https://semogye.test/compare?w=11000\n"},
		},
		{
			name: "burden link",
			args: []string{"burden", "-i", "3,000,000", "-p", "900,000", "--link", "--site", "https://semogye.test"},
			want: []string{"https://semogye.test/burden?i=3000000&p=900000\n"},
		},
		{
			name:    "burden without payment",
			args:    []string{"burden", "--income", "1000000"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, "", tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got output %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

const staffJSON = `{"rows":[
  {"name":"Kim","hourlyWageRaw":"10000","monthlyHoursRaw":"100"},
  {"name":"Lee","hourlyWageRaw":"10000","monthlyHoursRaw":"100","isFreelancer":true}
]}`

func TestPayrollCmd_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "staff.json")
	if err := os.WriteFile(path, []byte(staffJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "payroll", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range []string{"Kim", "Lee (freelancer)", "2,000,000 KRW gross, 33,000 KRW withheld, 1,967,000 KRW net, 200.0 h"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}

	out, err = run(t, staffJSON, "payroll", "--file", "-", "--csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "\uFEFF") || !strings.Contains(out, "Lee,freelancer") {
		t.Errorf("unexpected csv:\n%s", out)
	}
}

func TestPayrollCmd_Errors(t *testing.T) {
	t.Parallel()

	if _, err := run(t, "", "payroll"); err == nil {
		t.Error("expected an error without --file or --roster")
	}
	if _, err := run(t, `{"rows":[]}`, "payroll", "--file", "-"); err == nil {
		t.Error("expected an error for an empty roster")
	}
}

func TestPayrollCmd_Roster(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := filepath.Join(dir, "semogye.db")
	repo, err := sqliteadapter.New(db)
	if err != nil {
		t.Fatal(err)
	}
	ro := &domain.Roster{Name: "Cafe", Workers: []domain.WorkerRow{{
		ID:           "a",
		Name:         "Park",
		HourlyInputs: domain.HourlyInputs{HourlyWage: 10000, MonthlyHours: 50, WorkDaysPerWeek: 5},
	}}}
	if err := repo.CreateRoster(context.Background(), ro); err != nil {
		t.Fatal(err)
	}
	repo.Close()

	out, err := run(t, "", "payroll", "--db", db, "--roster", "1", "--markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Park") || !strings.Contains(out, "# Payroll") {
		t.Errorf("unexpected report:\n%s", out)
	}

	pdfPath := filepath.Join(dir, "slips.pdf")
	if _, err := run(t, "", "payroll", "--db", db, "--roster", "1", "--pdf", pdfPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(pdfPath)
	if err != nil || !strings.HasPrefix(string(b), "%PDF-") {
		t.Errorf("payslip file not written: %v", err)
	}

	if _, err := run(t, "", "payroll", "--db", db, "--roster", "9"); err == nil {
		t.Error("expected an error for a missing roster")
	}
}

func TestShareCmd(t *testing.T) {
	t.Parallel()

	link, err := run(t, "", "share", "encode", "salary", `{"salaryRaw":"3000000","dependents":2}`, "--site", "https://example.test/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	link = strings.TrimSpace(link)
	if !strings.HasPrefix(link, "https://example.test/salary?data=") {
		t.Fatalf("unexpected link %q", link)
	}

	out, err := run(t, "", "share", "decode", link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output is not JSON: %v\n%s", err, out)
	}
	if got["salaryRaw"] != "3,000,000" || got["dependents"] != "2" || got["insured"] != "yes" {
		t.Errorf("decoded inputs = %v", got)
	}

	if _, err := run(t, "", "share", "decode", "garbage"); err == nil {
		t.Error("expected an error for an invalid link")
	}
	if _, err := run(t, "", "share", "encode", "burden", "{}"); err == nil {
		t.Error("expected an error for a page without snapshots")
	}
}
