package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestKindOf_AppError(t *testing.T) {
	err := NotFoundOrForbidden("patient")
	if got := KindOf(err); got != KindNotFoundOrForbidden {
		t.Errorf("KindOf = %q, want %q", got, KindNotFoundOrForbidden)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("upsert patient: %w", NoTenant())
	if got := KindOf(err); got != KindNoTenant {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindNoTenant)
	}
}

func TestKindOf_Unknown(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindPersistence {
		t.Errorf("KindOf(unknown) = %q, want %q", got, KindPersistence)
	}
}

func TestPersistence_HidesCauseFromMessage(t *testing.T) {
	err := Persistence(errors.New("pq: connection refused"))
	if err.Message != "an unexpected error occurred" {
		t.Errorf("message leaks internals: %q", err.Message)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Error("Error() should include the cause for logs")
	}
	if errors.Unwrap(err) == nil {
		t.Error("expected unwrappable cause")
	}
}

func TestValidation_CarriesFields(t *testing.T) {
	err := Validation(map[string][]string{"name": {"name is required"}})
	if len(err.Fields["name"]) != 1 {
		t.Fatalf("expected one message for name, got %v", err.Fields)
	}
}

func doRequest(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	e.HTTPErrorHandler = HTTPErrorHandler(logger)
	e.GET("/fail", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation(map[string][]string{"email": {"invalid email"}}), http.StatusBadRequest},
		{Unauthenticated(), http.StatusUnauthorized},
		{NoTenant(), http.StatusForbidden},
		{NotFoundOrForbidden("doctor"), http.StatusNotFound},
		{Conflict("doctor has appointments"), http.StatusConflict},
		{Persistence(errors.New("disk on fire")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := doRequest(t, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
	}
}

func TestHTTPErrorHandler_PersistenceBodyIsGeneric(t *testing.T) {
	rec := doRequest(t, Persistence(errors.New("pq: relation does not exist")))

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if strings.Contains(body.Message, "relation") {
		t.Errorf("response leaks store details: %q", body.Message)
	}
	if body.Error != KindPersistence {
		t.Errorf("error kind = %q, want %q", body.Error, KindPersistence)
	}
}

func TestHTTPErrorHandler_ValidationBodyHasFields(t *testing.T) {
	rec := doRequest(t, Validation(map[string][]string{"availableFromTime": {"start time must be before end time"}}))

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(body.Fields["availableFromTime"]) != 1 {
		t.Errorf("expected field messages in body, got %v", body.Fields)
	}
}
