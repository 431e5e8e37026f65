package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type mockRepo struct {
	byClinic map[uuid.UUID]Summary
}

func (m *mockRepo) Summary(_ context.Context, scope tenancy.Scope, _ time.Time) (*Summary, error) {
	s := m.byClinic[scope.ClinicID]
	return &s, nil
}

func TestSummaryScopedToClinic(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := &mockRepo{byClinic: map[uuid.UUID]Summary{
		a: {Patients: 3, Doctors: 2, Appointments: 5, Upcoming: 1},
		b: {Patients: 9},
	}}
	svc := NewService(repo)

	sum, err := svc.Summary(context.Background(), tenancy.Scope{ClinicID: a, UserID: uuid.New()})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Patients != 3 || sum.Doctors != 2 || sum.Appointments != 5 || sum.Upcoming != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSummaryHandlerRequiresScope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(zerolog.Nop())
	NewHandler(NewService(&mockRepo{byClinic: map[uuid.UUID]Summary{}})).RegisterRoutes(e.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
