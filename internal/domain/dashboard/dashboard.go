// Package dashboard serves the clinic home screen: how many patients,
// doctors and appointments the clinic has, and the next upcoming bookings.
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

type Summary struct {
	Patients     int `json:"patients"`
	Doctors      int `json:"doctors"`
	Appointments int `json:"appointments"`
	// Upcoming counts appointments from now onward.
	Upcoming int `json:"upcoming"`
}

type Repository interface {
	Summary(ctx context.Context, scope tenancy.Scope, now time.Time) (*Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, scope tenancy.Scope) (*Summary, error) {
	sum, err := s.repo.Summary(ctx, scope, time.Now().UTC())
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return sum, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Summary)
}

func (h *Handler) Summary(c echo.Context) error {
	scope, err := tenancy.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	sum, err := h.svc.Summary(c.Request().Context(), scope)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}
