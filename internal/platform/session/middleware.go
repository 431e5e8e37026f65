package session

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/tenancy"
)

const sessionContextKey = "session"

// Middleware resolves the bearer token into a session and places the tenancy
// scope into the request context. Requests without a token pass through
// unauthenticated; route groups decide what they require.
func Middleware(store Store, secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)
			if raw == "" {
				return next(c)
			}

			id, err := ParseToken(secret, raw)
			if err != nil {
				return next(c)
			}

			sess, err := store.Get(c.Request().Context(), id)
			if err != nil {
				// Expired or revoked tokens behave like no token at all.
				return next(c)
			}

			scope := tenancy.Scope{UserID: sess.UserID}
			if sess.ClinicID != nil {
				scope.ClinicID = *sess.ClinicID
			}
			ctx := tenancy.WithScope(c.Request().Context(), scope)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireSession rejects requests that did not resolve a session.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if FromEcho(c) == nil {
				return apperror.Unauthenticated()
			}
			return next(c)
		}
	}
}

// RequireClinic additionally rejects sessions whose user has not completed
// clinic onboarding; clients redirect those to the clinic form.
func RequireClinic() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := FromEcho(c)
			if sess == nil {
				return apperror.Unauthenticated()
			}
			if sess.ClinicID == nil || *sess.ClinicID == uuid.Nil {
				return apperror.NoTenant()
			}
			return next(c)
		}
	}
}

// FromEcho returns the resolved session, or nil.
func FromEcho(c echo.Context) *Session {
	sess, _ := c.Get(sessionContextKey).(*Session)
	return sess
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
