// Package withholding holds the monthly earned-income withholding tables
// (간이세액표) and the social-insurance rates that apply in the same year.
//
// A table is an ordered list of contiguous income brackets. Each bracket
// carries the income tax to withhold for 1 to 11 dependents. Tables ship as
// YAML embedded per tax year; an operator can load a replacement file in the
// same format.
package withholding

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxDependents is the number of dependent columns in every bracket.
const MaxDependents = 11

const DefaultYear = 2024

// MaxChildren bounds the child count LookupTax charges for.
const MaxChildren = 100

// maxPerChild bounds per_child so MaxChildren*PerChild stays far from overflow.
const maxPerChild = 1_000_000

// ErrInvalidTable wraps every structural problem found by Validate.
var ErrInvalidTable = errors.New("invalid withholding table")

//go:embed tables/*.yaml
var tableFS embed.FS

// Bracket covers Min <= taxable < Max.
type Bracket struct {
	Min   int64                `yaml:"min"`
	Max   int64                `yaml:"max"` // 0 in YAML means unbounded
	Taxes [MaxDependents]int64 `yaml:"taxes"`
}

// Rates are the employee-side social insurance rates and the resident tax
// surcharge on income tax.
type Rates struct {
	Pension      float64 `yaml:"pension"`
	Health       float64 `yaml:"health"`
	LongTermCare float64 `yaml:"long_term_care"` // applied to the health premium
	Employment   float64 `yaml:"employment"`
	ResidentTax  float64 `yaml:"resident_tax"` // applied to income tax
}

type Table struct {
	Year     int       `yaml:"year"`
	Rates    Rates     `yaml:"rates"`
	PerChild int64     `yaml:"per_child"`
	Brackets []Bracket `yaml:"brackets"`
}

var tables = mustLoadEmbedded()

func mustLoadEmbedded() map[int]*Table {
	entries, err := tableFS.ReadDir("tables")
	if err != nil {
		panic(err)
	}
	out := make(map[int]*Table, len(entries))
	for _, e := range entries {
		f, err := tableFS.Open(path.Join("tables", e.Name()))
		if err != nil {
			panic(err)
		}
		t, err := Load(f)
		f.Close()
		if err != nil {
			panic(fmt.Sprintf("withholding: %s: %v", e.Name(), err))
		}
		out[t.Year] = t
	}
	if _, ok := out[DefaultYear]; !ok {
		panic("withholding: no table for default year " + strconv.Itoa(DefaultYear))
	}
	return out
}

// Supported returns the years with an embedded table, ascending.
func Supported() []int {
	years := make([]int, 0, len(tables))
	for y := range tables {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ForYear returns the embedded table for year. When there is none it returns
// the DefaultYear table and ok=false.
func ForYear(year int) (t *Table, ok bool) {
	t, ok = tables[year]
	if !ok {
		t = tables[DefaultYear]
	}
	return t, ok
}

// Load decodes and validates a table from YAML.
func Load(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode withholding table: %w", err)
	}
	for i := range t.Brackets {
		if t.Brackets[i].Max == 0 {
			t.Brackets[i].Max = math.MaxInt64
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads a table from a YAML file on disk.
func LoadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks that brackets start at 0, are contiguous and end with a
// single unbounded bracket, and that no amount is negative.
func (t *Table) Validate() error {
	var problems []string
	if t.Year <= 0 {
		problems = append(problems, "year must be positive")
	}
	if t.PerChild < 0 || t.PerChild > maxPerChild {
		problems = append(problems, fmt.Sprintf("per_child must be within [0, %d]", maxPerChild))
	}
	if len(t.Brackets) == 0 {
		problems = append(problems, "no brackets")
	}
	var prev int64
	for i, b := range t.Brackets {
		if b.Min != prev {
			problems = append(problems, fmt.Sprintf("bracket %d: min %d, want %d", i, b.Min, prev))
		}
		if b.Max <= b.Min {
			problems = append(problems, fmt.Sprintf("bracket %d: max %d <= min %d", i, b.Max, b.Min))
		}
		if b.Max == math.MaxInt64 && i != len(t.Brackets)-1 {
			problems = append(problems, fmt.Sprintf("bracket %d: unbounded bracket must be last", i))
		}
		for j, tax := range b.Taxes {
			if tax < 0 {
				problems = append(problems, fmt.Sprintf("bracket %d: negative tax for %d dependents", i, j+1))
			}
		}
		prev = b.Max
	}
	if len(t.Brackets) > 0 && prev != math.MaxInt64 {
		problems = append(problems, "last bracket must be unbounded")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTable, strings.Join(problems, "; "))
	}
	return nil
}

// FindBracket returns the bracket with Min <= base < Max. If none matches,
// the bracket whose midpoint is nearest to base is used instead.
func (t *Table) FindBracket(base int64) Bracket {
	i := sort.Search(len(t.Brackets), func(i int) bool { return t.Brackets[i].Max > base })
	if i < len(t.Brackets) && t.Brackets[i].Min <= base {
		return t.Brackets[i]
	}
	return t.nearest(base)
}

func (t *Table) nearest(base int64) Bracket {
	best := t.Brackets[0]
	bestDist := math.Abs(best.midpoint() - float64(base))
	for _, b := range t.Brackets[1:] {
		if d := math.Abs(b.midpoint() - float64(base)); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best
}

func (b Bracket) midpoint() float64 {
	return (float64(b.Min) + float64(b.Max)) / 2
}

// LookupTax returns the monthly income tax for taxable pay base. Dependents
// are clamped to [1,11]; each child adds PerChild, with the count clamped to
// ±MaxChildren. The result is never negative.
func (t *Table) LookupTax(base, dependents, children int64) int64 {
	row := t.FindBracket(base)
	idx := min(max(dependents-1, 0), MaxDependents-1)
	children = min(max(children, -MaxChildren), MaxChildren)
	tax := row.Taxes[idx] + children*t.PerChild
	return max(tax, 0)
}
