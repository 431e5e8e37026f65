package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, clinic_id, name, email, phone_number, sex, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.ClinicID, &p.Name, &p.Email, &p.PhoneNumber, &p.Sex,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Insert(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, clinic_id, name, email, phone_number, sex)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		p.ID, p.ClinicID, p.Name, p.Email, p.PhoneNumber, p.Sex,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) Update(ctx context.Context, scope tenancy.Scope, p *Patient) (int64, error) {
	p.ClinicID = scope.ClinicID
	err := r.pool.QueryRow(ctx, `
		UPDATE patients
		SET name = $3, email = $4, phone_number = $5, sex = $6, updated_at = NOW()
		WHERE id = $1 AND clinic_id = $2
		RETURNING created_at, updated_at`,
		p.ID, scope.ClinicID, p.Name, p.Email, p.PhoneNumber, p.Sex,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *patientRepoPG) Delete(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM patients WHERE id = $1 AND clinic_id = $2`, id, scope.ClinicID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *patientRepoPG) GetByID(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND clinic_id = $2`,
		id, scope.ClinicID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) List(ctx context.Context, scope tenancy.Scope, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM patients WHERE clinic_id = $1`, scope.ClinicID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		WHERE clinic_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`, scope.ClinicID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items := []*Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
