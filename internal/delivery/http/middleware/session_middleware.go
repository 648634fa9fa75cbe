package middleware

import (
	"net/http"

	"resq/config"
	deliverycontext "resq/internal/delivery/context"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware admits requests carrying a valid session cookie.
type SessionMiddleware struct {
	uc         usecase.AuthUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(uc usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{uc: uc, cookieName: cfg.Auth.Cookie.Name}
}

// Authenticate verifies the session cookie and stores the session on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
			return domainerrors.ErrSessionInvalid.WrapMessage("session cookie is missing")
		}
		if err != nil {
			return errors.WithStack(err)
		}

		session, err := m.uc.Session(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}
