package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &appointmentRepoPG{pool: pool}
}

const appointmentCols = `id, clinic_id, patient_id, doctor_id, date,
	appointment_price_in_cents, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.ClinicID, &a.PatientID, &a.DoctorID, &a.Date,
		&a.AppointmentPriceInCents, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) Insert(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, clinic_id, patient_id, doctor_id, date, appointment_price_in_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		a.ID, a.ClinicID, a.PatientID, a.DoctorID, a.Date, a.AppointmentPriceInCents,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *appointmentRepoPG) Update(ctx context.Context, scope tenancy.Scope, a *Appointment) (int64, error) {
	a.ClinicID = scope.ClinicID
	err := r.pool.QueryRow(ctx, `
		UPDATE appointments
		SET patient_id = $3, doctor_id = $4, date = $5,
			appointment_price_in_cents = $6, updated_at = NOW()
		WHERE id = $1 AND clinic_id = $2
		RETURNING created_at, updated_at`,
		a.ID, scope.ClinicID, a.PatientID, a.DoctorID, a.Date, a.AppointmentPriceInCents,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *appointmentRepoPG) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND clinic_id = $2`, id, scope.ClinicID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1 AND clinic_id = $2`,
		id, scope.ClinicID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func clockString(t pgtype.Time) string {
	us := t.Microseconds
	h := us / int64(time.Hour/time.Microsecond)
	m := us / int64(time.Minute/time.Microsecond) % 60
	s := us / int64(time.Second/time.Microsecond) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (r *appointmentRepoPG) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*WithRelations, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE clinic_id = $1`, scope.ClinicID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.clinic_id, a.patient_id, a.doctor_id, a.date,
			a.appointment_price_in_cents, a.created_at, a.updated_at,
			p.id, p.clinic_id, p.name, p.email, p.phone_number, p.sex, p.created_at, p.updated_at,
			d.id, d.clinic_id, d.name, d.specialty, d.avatar_image_url,
			d.available_from_week_day, d.available_to_week_day,
			d.available_from_time, d.available_to_time,
			d.appointment_price_in_cents, d.created_at, d.updated_at
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.clinic_id = $1
		ORDER BY a.date ASC
		LIMIT $2 OFFSET $3`, scope.ClinicID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*WithRelations{}
	for rows.Next() {
		var (
			w        WithRelations
			p        patient.Patient
			d        doctor.Doctor
			from, to pgtype.Time
		)
		err := rows.Scan(&w.ID, &w.ClinicID, &w.PatientID, &w.DoctorID, &w.Date,
			&w.AppointmentPriceInCents, &w.CreatedAt, &w.UpdatedAt,
			&p.ID, &p.ClinicID, &p.Name, &p.Email, &p.PhoneNumber, &p.Sex, &p.CreatedAt, &p.UpdatedAt,
			&d.ID, &d.ClinicID, &d.Name, &d.Specialty, &d.AvatarImageURL,
			&d.AvailableFromWeekDay, &d.AvailableToWeekDay, &from, &to,
			&d.AppointmentPriceInCents, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		d.AvailableFromTime = clockString(from)
		d.AvailableToTime = clockString(to)
		w.Patient = &p
		w.Doctor = &d
		items = append(items, &w)
	}
	return items, total, rows.Err()
}
