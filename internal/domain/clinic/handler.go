package clinic

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/session"
)

type Handler struct {
	svc      *Service
	sessions session.Store
}

func NewHandler(svc *Service, sessions session.Store) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// RegisterRoutes mounts onboarding on a group that requires a session but not
// a clinic; onboarding is exactly the step that produces the clinic.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/clinic", h.Create)
	g.GET("/clinic", h.Get)
}

type mutationResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Refresh string `json:"refresh"`
}

func (h *Handler) Create(c echo.Context) error {
	sess := session.FromEcho(c)
	if sess == nil {
		return apperror.Unauthenticated()
	}

	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return apperror.ValidationField("body", "must be a valid JSON document")
	}
	res, err := h.svc.CreateForUser(c.Request().Context(), sess.UserID, in)
	if err != nil {
		return err
	}

	// Bind the clinic into the live session so the user does not have to log
	// in again to see their new clinic.
	if err := h.sessions.SetClinic(c.Request().Context(), sess.ID, res.Clinic.ID); err != nil {
		return apperror.Persistence(err)
	}

	return c.JSON(http.StatusCreated, mutationResponse{Data: res.Clinic, Message: res.Message, Refresh: res.Refresh})
}

// Get returns the clinic bound to the current session.
func (h *Handler) Get(c echo.Context) error {
	sess := session.FromEcho(c)
	if sess == nil {
		return apperror.Unauthenticated()
	}
	if sess.ClinicID == nil {
		return apperror.NoTenant()
	}
	cl, err := h.svc.Get(c.Request().Context(), *sess.ClinicID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cl)
}
