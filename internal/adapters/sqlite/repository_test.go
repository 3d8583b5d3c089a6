package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/csg33k/semogye/internal/adapters/sqlite"
	"github.com/csg33k/semogye/internal/domain"
	"github.com/csg33k/semogye/internal/ports"
)

var _ ports.RosterRepository = (*sqlite.Repository)(nil)

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func workers() []domain.WorkerRow {
	return []domain.WorkerRow{
		{
			ID:   "a",
			Name: "Kim",
			HourlyInputs: domain.HourlyInputs{
				HourlyWage: 12000, MonthlyHours: 160.5, WorkDaysPerWeek: 5, IncludeWeeklyHolidayPay: true,
			},
		},
		{
			ID:           "b",
			Name:         "Lee",
			HourlyInputs: domain.HourlyInputs{HourlyWage: 10030, MonthlyHours: 60, WorkDaysPerWeek: 3},
			IsFreelancer: true,
		},
	}
}

func TestRoster_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	ro := &domain.Roster{Name: "Cafe March", Workers: workers()}
	if err := repo.CreateRoster(ctx, ro); err != nil {
		t.Fatalf("CreateRoster: %v", err)
	}
	if ro.ID == 0 || ro.CreatedAt.IsZero() {
		t.Fatalf("CreateRoster did not fill ID/CreatedAt: %+v", ro)
	}

	got, err := repo.GetRoster(ctx, ro.ID)
	if err != nil {
		t.Fatalf("GetRoster: %v", err)
	}
	if got.Name != "Cafe March" || len(got.Workers) != 2 {
		t.Fatalf("GetRoster = %+v", got)
	}
	for i, w := range workers() {
		if got.Workers[i] != w {
			t.Errorf("worker %d = %+v, want %+v", i, got.Workers[i], w)
		}
	}

	got.Name = "Cafe April"
	got.Workers = got.Workers[1:]
	if err := repo.UpdateRoster(ctx, got); err != nil {
		t.Fatalf("UpdateRoster: %v", err)
	}
	again, _ := repo.GetRoster(ctx, ro.ID)
	if again.Name != "Cafe April" || len(again.Workers) != 1 || again.Workers[0].ID != "b" {
		t.Errorf("after update = %+v", again)
	}

	list, err := repo.ListRosters(ctx)
	if err != nil || len(list) != 1 || list[0].ID != ro.ID {
		t.Errorf("ListRosters = %+v, %v", list, err)
	}

	if err := repo.DeleteRoster(ctx, ro.ID); err != nil {
		t.Fatalf("DeleteRoster: %v", err)
	}
	if _, err := repo.GetRoster(ctx, ro.ID); !errors.Is(err, domain.ErrRosterNotFound) {
		t.Errorf("GetRoster after delete: err = %v", err)
	}
}

func TestRoster_Errors(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if err := repo.CreateRoster(ctx, &domain.Roster{Name: "empty"}); !errors.Is(err, domain.ErrEmptyRoster) {
		t.Errorf("empty roster: err = %v", err)
	}
	big := make([]domain.WorkerRow, domain.MaxWorkers+1)
	if err := repo.CreateRoster(ctx, &domain.Roster{Name: "big", Workers: big}); !errors.Is(err, domain.ErrTooManyWorkers) {
		t.Errorf("oversized roster: err = %v", err)
	}
	if err := repo.UpdateRoster(ctx, &domain.Roster{ID: 99, Workers: workers()}); !errors.Is(err, domain.ErrRosterNotFound) {
		t.Errorf("update missing: err = %v", err)
	}
	if err := repo.DeleteRoster(ctx, 99); !errors.Is(err, domain.ErrRosterNotFound) {
		t.Errorf("delete missing: err = %v", err)
	}
}

func TestRoster_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for _, name := range []string{"first", "second"} {
		if err := repo.CreateRoster(ctx, &domain.Roster{Name: name, Workers: workers()}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := repo.ListRosters(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "second" {
		t.Errorf("ListRosters = %+v", list)
	}
}
