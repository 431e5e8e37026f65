package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/session"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes splits auth across the public group (signup, login) and the
// session-gated group (logout, me).
func (h *Handler) RegisterRoutes(public, private *echo.Group) {
	public.POST("/auth/signup", h.SignUp)
	public.POST("/auth/login", h.Login)
	private.POST("/auth/logout", h.Logout)
	private.GET("/auth/me", h.Me)
}

func (h *Handler) SignUp(c echo.Context) error {
	var in SignUpInput
	if err := c.Bind(&in); err != nil {
		return apperror.ValidationField("body", "must be a valid JSON document")
	}
	res, err := h.svc.SignUp(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) Login(c echo.Context) error {
	var in LoginInput
	if err := c.Bind(&in); err != nil {
		return apperror.ValidationField("body", "must be a valid JSON document")
	}
	res, err := h.svc.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Logout(c echo.Context) error {
	sess := session.FromEcho(c)
	if sess == nil {
		return apperror.Unauthenticated()
	}
	if err := h.svc.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	sess := session.FromEcho(c)
	if sess == nil {
		return apperror.Unauthenticated()
	}
	u, err := h.svc.GetUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
