package clinic

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
)

type mockRepo struct {
	clinics map[uuid.UUID]*Clinic
}

func newMockRepo() *mockRepo {
	return &mockRepo{clinics: map[uuid.UUID]*Clinic{}}
}

func (m *mockRepo) Insert(_ context.Context, c *Clinic) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.clinics[c.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Clinic, error) {
	c, ok := m.clinics[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type mockBinder struct {
	known map[uuid.UUID]uuid.UUID
}

func (m *mockBinder) BindClinic(_ context.Context, userID, clinicID uuid.UUID) (int64, error) {
	if _, ok := m.known[userID]; !ok {
		return 0, nil
	}
	m.known[userID] = clinicID
	return 1, nil
}

func TestCreateForUserBindsClinic(t *testing.T) {
	repo := newMockRepo()
	userID := uuid.New()
	binder := &mockBinder{known: map[uuid.UUID]uuid.UUID{userID: uuid.Nil}}
	svc := NewService(repo, binder)

	res, err := svc.CreateForUser(context.Background(), userID, CreateInput{Name: "Clínica Boa Saúde"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Clinic.ID == uuid.Nil {
		t.Error("expected a generated clinic id")
	}
	if binder.known[userID] != res.Clinic.ID {
		t.Error("user not bound to the new clinic")
	}
	if res.Message != "Clinic created successfully." {
		t.Errorf("message = %q", res.Message)
	}
}

func TestCreateValidatesName(t *testing.T) {
	svc := NewService(newMockRepo(), &mockBinder{known: map[uuid.UUID]uuid.UUID{}})

	_, err := svc.Create(context.Background(), CreateInput{Name: ""})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCreateForUnknownUser(t *testing.T) {
	svc := NewService(newMockRepo(), &mockBinder{known: map[uuid.UUID]uuid.UUID{}})

	_, err := svc.CreateForUser(context.Background(), uuid.New(), CreateInput{Name: "Clínica Boa Saúde"})
	if !apperror.IsKind(err, apperror.KindUnauthenticated) {
		t.Fatalf("err = %v, want unauthenticated", err)
	}
}
