package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `id, clinic_id, name, specialty, avatar_image_url,
	available_from_week_day, available_to_week_day,
	available_from_time, available_to_time,
	appointment_price_in_cents, created_at, updated_at`

// The availability columns are TIME; pgx surfaces them as pgtype.Time, which
// the model keeps as an HH:MM:SS string.

func pgTime(s string) pgtype.Time {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return pgtype.Time{}
	}
	us := int64(t.Hour())*int64(time.Hour/time.Microsecond) +
		int64(t.Minute())*int64(time.Minute/time.Microsecond) +
		int64(t.Second())*int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}
}

func timeString(t pgtype.Time) string {
	us := t.Microseconds
	h := us / int64(time.Hour/time.Microsecond)
	m := us / int64(time.Minute/time.Microsecond) % 60
	s := us / int64(time.Second/time.Microsecond) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var (
		d        Doctor
		from, to pgtype.Time
	)
	err := row.Scan(&d.ID, &d.ClinicID, &d.Name, &d.Specialty, &d.AvatarImageURL,
		&d.AvailableFromWeekDay, &d.AvailableToWeekDay, &from, &to,
		&d.AppointmentPriceInCents, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.AvailableFromTime = timeString(from)
	d.AvailableToTime = timeString(to)
	return &d, nil
}

func (r *doctorRepoPG) Insert(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctors (id, clinic_id, name, specialty, avatar_image_url,
			available_from_week_day, available_to_week_day,
			available_from_time, available_to_time, appointment_price_in_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		d.ID, d.ClinicID, d.Name, d.Specialty, d.AvatarImageURL,
		d.AvailableFromWeekDay, d.AvailableToWeekDay,
		pgTime(d.AvailableFromTime), pgTime(d.AvailableToTime),
		d.AppointmentPriceInCents,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *doctorRepoPG) Update(ctx context.Context, scope tenancy.Scope, d *Doctor) (int64, error) {
	d.ClinicID = scope.ClinicID
	err := r.pool.QueryRow(ctx, `
		UPDATE doctors
		SET name = $3, specialty = $4, avatar_image_url = $5,
			available_from_week_day = $6, available_to_week_day = $7,
			available_from_time = $8, available_to_time = $9,
			appointment_price_in_cents = $10, updated_at = NOW()
		WHERE id = $1 AND clinic_id = $2
		RETURNING created_at, updated_at`,
		d.ID, scope.ClinicID, d.Name, d.Specialty, d.AvatarImageURL,
		d.AvailableFromWeekDay, d.AvailableToWeekDay,
		pgTime(d.AvailableFromTime), pgTime(d.AvailableToTime),
		d.AppointmentPriceInCents,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *doctorRepoPG) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM doctors WHERE id = $1 AND clinic_id = $2`, id, scope.ClinicID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *doctorRepoPG) GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1 AND clinic_id = $2`,
		id, scope.ClinicID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *doctorRepoPG) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM doctors WHERE clinic_id = $1`, scope.ClinicID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+doctorCols+` FROM doctors
		WHERE clinic_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`, scope.ClinicID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items := []*Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
