package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resq/config"
	deliverycontext "resq/internal/delivery/context"
	"resq/internal/delivery/http/validator"
	"resq/internal/domain/entity"
	domainerrors "resq/internal/domain/errors"
	mockUsecase "resq/internal/mocks/usecase"
	"resq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *echo.Echo) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "development"
	cfg.ApplyDefaults()

	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, cfg)
	h.now = func() time.Time { return fixedNow }

	e := echo.New()
	e.Validator = validator.New(cfg.PasswordStrength)

	return h, uc, e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterRescuer_PassesPayloadToUsecase(t *testing.T) {
	h, uc, e := newTestHandler(t)

	c, rec := newContext(e, http.MethodPost, "/auth/rescuer/create",
		`{"id":"r1","name":"A","phone":"555","email":"a@x.com","password":"Secret123",`+
			`"city":"Metropolis","state":"NY","country":"US","skills":["Medical","first aid"]}`)

	uc.On("RegisterRescuer", mock.Anything, &usecase.RegisterRescuerInput{
		ID: "r1", Name: "A", Phone: "555", Email: "a@x.com", Password: "Secret123",
		City: "Metropolis", State: "NY", Country: "US", Skills: []string{"Medical", "first aid"},
	}).Return(&usecase.RegisterOutput{Account: &usecase.AccountInfo{ID: "r1", Skills: []string{"medical", "first aid"}}}, nil).Once()

	require.NoError(t, h.RegisterRescuer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Rescuer created successfully"`)
	assert.Contains(t, rec.Body.String(), `"skills":["medical","first aid"]`)
}

func TestAuthHandler_RegisterRescuer_BlankFieldsNeverReachUsecase(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newContext(e, http.MethodPost, "/auth/rescuer/create",
		`{"id":" ","name":"A","phone":"555","email":"a@x.com","password":"Secret123",`+
			`"city":"x","state":"y","country":"z"}`)

	err := h.RegisterRescuer(c)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "id must not be blank")
}

func TestAuthHandler_RegisterRescuer_UsecaseErrorPropagates(t *testing.T) {
	h, uc, e := newTestHandler(t)

	c, rec := newContext(e, http.MethodPost, "/auth/rescuer/create",
		`{"id":"r1","name":"A","phone":"555","email":"a@x.com","password":"Secret123",`+
			`"city":"x","state":"y","country":"z"}`)

	uc.On("RegisterRescuer", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountAlreadyExists).Once()

	err := h.RegisterRescuer(c)
	require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	assert.Zero(t, rec.Body.Len())
}

func TestAuthHandler_Login_UsesPathTypeAndSetsCookie(t *testing.T) {
	h, uc, e := newTestHandler(t)

	c, rec := newContext(e, http.MethodPost, "/auth/login/authority",
		`{"type":"rescuer","email":"chief@x.com","password":"Secret123"}`)
	c.SetParamNames("type")
	c.SetParamValues("authority")

	uc.On("Login", mock.Anything, &usecase.LoginInput{Variant: "authority", Email: "chief@x.com", Password: "Secret123"}).
		Return(&usecase.LoginOutput{
			Token:     "signed-token",
			ExpiresAt: fixedNow.Add(2 * time.Hour),
			Variant:   entity.VariantAuthority,
			Account:   &usecase.AccountInfo{ID: "a1", Email: "chief@x.com"},
		}, nil).Once()

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.Equal(t, 7200, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
}

func TestAuthHandler_Login_InvalidTypeNeverReachesUsecase(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newContext(e, http.MethodPost, "/auth/login/admin", `{"email":"a@x.com","password":"Secret123"}`)
	c.SetParamNames("type")
	c.SetParamValues("admin")

	err := h.Login(c)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, rec := newContext(e, http.MethodGet, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Session(t *testing.T) {
	h, _, e := newTestHandler(t)

	c, _ := newContext(e, http.MethodGet, "/auth/session", "")
	require.ErrorIs(t, h.Session(c), domainerrors.ErrSessionInvalid)

	c, rec := newContext(e, http.MethodGet, "/auth/session", "")
	deliverycontext.SetSession(c, &usecase.SessionOutput{Email: "a@x.com", Variant: entity.VariantRescuer})

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"rescuer"`)
}
