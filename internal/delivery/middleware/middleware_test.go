package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resq/config"
	deliverycontext "resq/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepsOwn bool
	}{
		{name: "generated when absent", header: ""},
		{name: "client id reused", header: "abc-123", keepsOwn: true},
		{name: "unsafe client id replaced", header: "bad id\nInjected: yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, deliverycontext.RequestID(c))
			assert.Contains(t, buf.String(), id)
			if tt.keepsOwn {
				assert.Equal(t, tt.header, id)
			} else {
				assert.NotEqual(t, tt.header, id)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	run := func(debug bool, handler echo.HandlerFunc) (string, *httptest.ResponseRecorder) {
		buf := &bytes.Buffer{}
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login/rescuer", nil), rec)
		_ = m.Handle(handler)(c)

		return buf.String(), rec
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	failing := func(echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") }

	out, _ := run(false, ok)
	assert.Empty(t, out)

	out, _ = run(true, ok)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"INFO"`)

	out, rec := run(true, failing)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, `"level":"WARN"`)
}
