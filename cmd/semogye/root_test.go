package main

import (
	"bytes"
	"strings"
	"testing"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if cmd.Use != "semogye" {
		t.Errorf("expected use 'semogye', got %q", cmd.Use)
	}
	if cmd.Version == "" {
		t.Error("expected non-empty version")
	}
	for _, name := range []string{"markdown", "tax-year", "table"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}

	want := map[string]bool{
		"salary": false, "hourly": false, "payroll": false, "freelance": false,
		"compare": false, "burden": false, "share": false, "version": false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "semogye version") || !strings.Contains(out, "commit:") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUnknownTaxYearFallsBack(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "salary", "3000000", "--tax-year", "1999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no withholding table for 1999") {
		t.Errorf("expected a fallback notice, got %q", out)
	}
}
