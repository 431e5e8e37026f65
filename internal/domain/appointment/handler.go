package appointment

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.List)
	g.GET("/appointments/:id", h.Get)
	g.POST("/appointments", h.Upsert)
	g.DELETE("/appointments/:id", h.Delete)
}

type mutationResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Refresh string `json:"refresh"`
}

func (h *Handler) Upsert(c echo.Context) error {
	scope, err := tenancy.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	var in UpsertInput
	if err := c.Bind(&in); err != nil {
		return apperror.ValidationField("body", "must be a valid JSON document")
	}
	res, err := h.svc.Upsert(c.Request().Context(), scope, in)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if in.ID == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, mutationResponse{Data: res.Appointment, Message: res.Message, Refresh: res.Refresh})
}

func (h *Handler) Get(c echo.Context) error {
	scope, err := tenancy.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NotFoundOrForbidden("appointment")
	}
	a, err := h.svc.Get(c.Request().Context(), scope, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) List(c echo.Context) error {
	scope, err := tenancy.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), scope, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Delete(c echo.Context) error {
	scope, err := tenancy.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NotFoundOrForbidden("appointment")
	}
	res, err := h.svc.Delete(c.Request().Context(), scope, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mutationResponse{Message: res.Message, Refresh: res.Refresh})
}
