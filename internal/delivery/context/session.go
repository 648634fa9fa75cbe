package context

import (
	"resq/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key of the verified session.
const KeySession ContextKey = "session"

// SetSession stores the verified session on echo.Context.
func SetSession(c echo.Context, session *usecase.SessionOutput) {
	c.Set(string(KeySession), session)
}

// GetSession returns the verified session, or nil when the request carried none.
func GetSession(c echo.Context) *usecase.SessionOutput {
	if session, ok := c.Get(string(KeySession)).(*usecase.SessionOutput); ok {
		return session
	}

	return nil
}
