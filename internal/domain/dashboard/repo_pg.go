package dashboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type dashboardRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &dashboardRepoPG{pool: pool}
}

func (r *dashboardRepoPG) Summary(ctx context.Context, scope tenancy.Scope, now time.Time) (*Summary, error) {
	var s Summary
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients WHERE clinic_id = $1),
			(SELECT COUNT(*) FROM doctors WHERE clinic_id = $1),
			(SELECT COUNT(*) FROM appointments WHERE clinic_id = $1),
			(SELECT COUNT(*) FROM appointments WHERE clinic_id = $1 AND date >= $2)`,
		scope.ClinicID, now,
	).Scan(&s.Patients, &s.Doctors, &s.Appointments, &s.Upcoming)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
