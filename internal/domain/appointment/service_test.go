package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type mockRepo struct {
	appointments map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: map[uuid.UUID]*Appointment{}}
}

func (m *mockRepo) Insert(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockRepo) Update(_ context.Context, scope tenancy.Scope, a *Appointment) (int64, error) {
	existing, ok := m.appointments[a.ID]
	if !ok || existing.ClinicID != scope.ClinicID {
		return 0, nil
	}
	a.ClinicID = existing.ClinicID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	cp := *a
	m.appointments[a.ID] = &cp
	return 1, nil
}

func (m *mockRepo) Delete(_ context.Context, scope tenancy.Scope, id uuid.UUID) (int64, error) {
	existing, ok := m.appointments[id]
	if !ok || existing.ClinicID != scope.ClinicID {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func (m *mockRepo) GetByID(_ context.Context, scope tenancy.Scope, id uuid.UUID) (*Appointment, error) {
	existing, ok := m.appointments[id]
	if !ok || existing.ClinicID != scope.ClinicID {
		return nil, nil
	}
	cp := *existing
	return &cp, nil
}

func (m *mockRepo) List(_ context.Context, scope tenancy.Scope, limit, offset int) ([]*WithRelations, int, error) {
	var items []*WithRelations
	for _, a := range m.appointments {
		if a.ClinicID == scope.ClinicID {
			cp := *a
			items = append(items, &WithRelations{Appointment: cp})
		}
	}
	return items, len(items), nil
}

// mockDirectory serves scoped patient and doctor lookups from fixed maps.
type mockDirectory struct {
	patients map[uuid.UUID]*patient.Patient
	doctors  map[uuid.UUID]*doctor.Doctor
}

func newMockDirectory() *mockDirectory {
	return &mockDirectory{
		patients: map[uuid.UUID]*patient.Patient{},
		doctors:  map[uuid.UUID]*doctor.Doctor{},
	}
}

func (m *mockDirectory) addPatient(clinicID uuid.UUID, name string) *patient.Patient {
	p := &patient.Patient{ID: uuid.New(), ClinicID: clinicID, Name: name}
	m.patients[p.ID] = p
	return p
}

func (m *mockDirectory) addDoctor(clinicID uuid.UUID, name string, priceInCents int) *doctor.Doctor {
	d := &doctor.Doctor{ID: uuid.New(), ClinicID: clinicID, Name: name, AppointmentPriceInCents: priceInCents}
	m.doctors[d.ID] = d
	return d
}

type patientDir struct{ *mockDirectory }

func (m patientDir) GetByID(_ context.Context, scope tenancy.Scope, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok || p.ClinicID != scope.ClinicID {
		return nil, nil
	}
	return p, nil
}

type doctorDir struct{ *mockDirectory }

func (m doctorDir) GetByID(_ context.Context, scope tenancy.Scope, id uuid.UUID) (*doctor.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok || d.ClinicID != scope.ClinicID {
		return nil, nil
	}
	return d, nil
}

func newTestService() (*Service, *mockRepo, *mockDirectory) {
	repo := newMockRepo()
	dir := newMockDirectory()
	return NewService(repo, patientDir{dir}, doctorDir{dir}), repo, dir
}

func testScope() tenancy.Scope {
	return tenancy.Scope{ClinicID: uuid.New(), UserID: uuid.New()}
}

func TestBookingFlow(t *testing.T) {
	svc, repo, dir := newTestService()
	scope := testScope()

	maria := dir.addPatient(scope.ClinicID, "Maria Silva")
	joao := dir.addDoctor(scope.ClinicID, "Dr. João Santos", 15000)

	res, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               maria.ID.String(),
		DoctorID:                joao.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 15000,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	want := time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC)
	if !res.Appointment.Date.Equal(want) {
		t.Errorf("date = %v, want %v", res.Appointment.Date, want)
	}
	if res.Appointment.AppointmentPriceInCents != 15000 {
		t.Errorf("price = %d", res.Appointment.AppointmentPriceInCents)
	}
	if res.Message != "Appointment created successfully." {
		t.Errorf("message = %q", res.Message)
	}
	if res.Refresh != "/appointments" {
		t.Errorf("refresh = %q", res.Refresh)
	}

	items, total, err := svc.List(context.Background(), scope, 20, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total = %d", total)
	}
	if _, ok := repo.appointments[res.Appointment.ID]; !ok {
		t.Fatal("appointment not stored")
	}
}

func TestPriceIsSnapshotNotLive(t *testing.T) {
	svc, repo, dir := newTestService()
	scope := testScope()

	p := dir.addPatient(scope.ClinicID, "Maria Silva")
	d := dir.addDoctor(scope.ClinicID, "Dr. João Santos", 15000)

	res, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               p.ID.String(),
		DoctorID:                d.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 15000,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Raising the doctor's price later must not rewrite booked appointments.
	d.AppointmentPriceInCents = 20000
	stored := repo.appointments[res.Appointment.ID]
	if stored.AppointmentPriceInCents != 15000 {
		t.Errorf("stored price = %d, want 15000", stored.AppointmentPriceInCents)
	}
}

func TestBookingForeignPatientRejected(t *testing.T) {
	svc, repo, dir := newTestService()
	scope := testScope()

	other := testScope()
	foreignPatient := dir.addPatient(other.ClinicID, "Foreign Patient")
	d := dir.addDoctor(scope.ClinicID, "Dr. João Santos", 15000)

	_, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               foreignPatient.ID.String(),
		DoctorID:                d.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 15000,
	})
	if !apperror.IsKind(err, apperror.KindNotFoundOrForbidden) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("nothing must be booked")
	}
}

func TestBookingForeignDoctorRejected(t *testing.T) {
	svc, _, dir := newTestService()
	scope := testScope()

	p := dir.addPatient(scope.ClinicID, "Maria Silva")
	foreignDoctor := dir.addDoctor(testScope().ClinicID, "Foreign Doctor", 10000)

	_, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               p.ID.String(),
		DoctorID:                foreignDoctor.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 10000,
	})
	if !apperror.IsKind(err, apperror.KindNotFoundOrForbidden) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestBookingValidation(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Upsert(context.Background(), testScope(), UpsertInput{
		PatientID: "not-a-uuid",
		Date:      "10/09/2026",
		Time:      "9h30",
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("invalid input must not reach the repository")
	}
}

func TestRebookKeepsIdentity(t *testing.T) {
	svc, repo, dir := newTestService()
	scope := testScope()

	p := dir.addPatient(scope.ClinicID, "Maria Silva")
	d := dir.addDoctor(scope.ClinicID, "Dr. João Santos", 15000)

	created, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               p.ID.String(),
		DoctorID:                d.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 15000,
	})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.Upsert(context.Background(), scope, UpsertInput{
		ID:                      created.Appointment.ID.String(),
		PatientID:               p.ID.String(),
		DoctorID:                d.ID.String(),
		Date:                    "2026-09-17",
		Time:                    "14:00",
		AppointmentPriceInCents: 15000,
	})
	if err != nil {
		t.Fatalf("rebook: %v", err)
	}
	if res.Appointment.ID != created.Appointment.ID {
		t.Error("rebooking must keep the id")
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("appointments = %d, want 1", len(repo.appointments))
	}
	want := time.Date(2026, 9, 17, 14, 0, 0, 0, time.UTC)
	if !repo.appointments[created.Appointment.ID].Date.Equal(want) {
		t.Errorf("stored date = %v", repo.appointments[created.Appointment.ID].Date)
	}
}

func TestDeleteScopedToClinic(t *testing.T) {
	svc, repo, dir := newTestService()
	scope := testScope()

	p := dir.addPatient(scope.ClinicID, "Maria Silva")
	d := dir.addDoctor(scope.ClinicID, "Dr. João Santos", 15000)
	created, err := svc.Upsert(context.Background(), scope, UpsertInput{
		PatientID:               p.ID.String(),
		DoctorID:                d.ID.String(),
		Date:                    "2026-09-10",
		Time:                    "09:30",
		AppointmentPriceInCents: 15000,
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Delete(context.Background(), testScope(), created.Appointment.ID)
	if !apperror.IsKind(err, apperror.KindNotFoundOrForbidden) {
		t.Fatalf("foreign delete err = %v, want not found", err)
	}
	if len(repo.appointments) != 1 {
		t.Fatal("foreign delete must not remove the booking")
	}

	if _, err := svc.Delete(context.Background(), scope, created.Appointment.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
