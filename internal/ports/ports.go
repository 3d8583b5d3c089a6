package ports

import (
	"context"
	"io"

	"github.com/csg33k/semogye/internal/domain"
)

// RosterRepository defines persistence operations for saved payroll rosters.
type RosterRepository interface {
	CreateRoster(ctx context.Context, r *domain.Roster) error
	GetRoster(ctx context.Context, id int64) (*domain.Roster, error)
	ListRosters(ctx context.Context) ([]domain.Roster, error)
	UpdateRoster(ctx context.Context, r *domain.Roster) error
	DeleteRoster(ctx context.Context, id int64) error
}

// PayslipRenderer defines the printable payslip output port.
type PayslipRenderer interface {
	// Render writes one payslip per worker in res to w.
	Render(ctx context.Context, title string, res domain.PayrollResult, w io.Writer) error
}
