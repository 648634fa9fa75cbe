package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resq/config"
	deliverycontext "resq/internal/delivery/context"
	httpmiddleware "resq/internal/delivery/http/middleware"
	"resq/internal/delivery/http/router"
	"resq/internal/delivery/http/router/handler"
	"resq/internal/domain/entity"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/domain/repository"
	"resq/internal/infra/auth"
	mockRepo "resq/internal/mocks/repository"
	"resq/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const registerBody = `{"id":"r1","name":"A","phone":"555","email":"a@x.com","password":"Secret123",` +
	`"city":"Metropolis","state":"NY","country":"US","skills":["medical"]}`

type apiFixture struct {
	e          *echo.Echo
	accounts   *mockRepo.MockAccountRepository
	txAccounts *mockRepo.MockAccountRepository
	txSkills   *mockRepo.MockSkillRepository
	tx         *mockRepo.FakeTransactionManager
	hash       func(t *testing.T, password string) string
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "development"
	cfg.Env.ServiceName = "resq"
	cfg.SecretKey.Session = "test-session-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	cfg.ApplyDefaults()

	return cfg
}

func newAPIFixture(t *testing.T, cfg *config.Config) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accounts := mockRepo.NewMockAccountRepository(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txSkills := mockRepo.NewMockSkillRepository(t)
	tx := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{Accounts: txAccounts, Skills: txSkills},
	}

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    tx,
		AccountRepo:  accounts,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       logger,
	})

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(uc, cfg),
		SessionMiddleware: httpmiddleware.NewSessionMiddleware(uc, cfg),
	}).RegisterRoutes(e)

	return &apiFixture{
		e:          e,
		accounts:   accounts,
		txAccounts: txAccounts,
		txSkills:   txSkills,
		tx:         tx,
		hash: func(t *testing.T, password string) string {
			t.Helper()
			h, err := hasher.Hash(password)
			require.NoError(t, err)

			return h
		},
	}
}

func (f *apiFixture) do(method, target, body string, cookies ...*nethttp.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *nethttp.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	t.Fatal("access_token cookie not set")

	return nil
}

func TestRegisterRescuer_Created(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	f.accounts.On("ExistsByEmail", mock.Anything, entity.VariantRescuer, "a@x.com").Return(false, nil).Once()
	f.txAccounts.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("Secret123")) == nil
	})).Return(nil).Once()
	f.txSkills.On("LinkSkills", mock.Anything, "r1", []string{"medical"}).Return(nil).Once()
	f.txSkills.On("ListByRescuer", mock.Anything, "r1").Return([]*entity.Skill{{ID: 1, Name: "medical"}}, nil).Once()

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", registerBody)
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "Rescuer created successfully", body["message"])

	rescuer, ok := body["rescuer"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, rescuer, "password")
	assert.Equal(t, "r1", rescuer["id"])
	assert.Equal(t, "metropolis", rescuer["city"])
	assert.Equal(t, "ny", rescuer["state"])
	assert.Equal(t, "us", rescuer["country"])
	assert.Equal(t, []any{"medical"}, rescuer["skills"])
	assert.NotContains(t, rec.Body.String(), "Secret123")
	assert.NotContains(t, rec.Body.String(), "$2a$")
	assert.True(t, f.tx.Committed)
}

func TestRegisterRescuer_ValidationReportsEveryField(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", `{"id":"r1","name":"A","email":"not-an-email","password":"short"}`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.NotEmpty(t, body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)

	var fields []string
	for _, d := range details {
		fields = append(fields, d.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"phone", "email", "password", "city", "state", "country"}, fields)
	assert.Zero(t, f.tx.Calls)
}

func TestRegisterRescuer_MalformedBody(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", `{"id":`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body must be a valid JSON object", decode(t, rec)["error"])
}

func TestRegisterRescuer_BlankFieldsRejected(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create",
		`{"id":"   ","name":"  ","phone":" ","email":"b@x.com","password":"Secret123",`+
			`"city":" ","state":" ","country":" ","skills":["medical","  "]}`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code, rec.Body.String())

	details, ok := decode(t, rec)["details"].([]any)
	require.True(t, ok)

	var fields []string
	for _, d := range details {
		v := d.(map[string]any)
		assert.Equal(t, "notblank", v["rule"])
		fields = append(fields, v["field"].(string))
	}
	assert.ElementsMatch(t, []string{"id", "name", "phone", "city", "state", "country", "skills[1]"}, fields)
	assert.Zero(t, f.tx.Calls)
}

func TestRegisterRescuer_DuplicateEmail(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	f.accounts.On("ExistsByEmail", mock.Anything, entity.VariantRescuer, "a@x.com").Return(true, nil).Once()

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", registerBody)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Email already registered", body["error"])
	assert.NotContains(t, body, "details")
}

func TestRegisterRescuer_UnknownSkill(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	f.accounts.On("ExistsByEmail", mock.Anything, entity.VariantRescuer, "a@x.com").Return(false, nil).Once()
	f.txAccounts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.txSkills.On("LinkSkills", mock.Anything, "r1", []string{"medical"}).
		Return(domainerrors.NewUnknownSkillError([]string{"medical"})).Once()

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", registerBody)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Unknown skill: medical", body["error"])
	assert.Equal(t, []any{"medical"}, body["details"])
	assert.True(t, f.tx.RolledBack)
	assert.False(t, f.tx.Committed)
}

func TestRegisterRescuer_StoreFailureHidesCause(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	f.accounts.On("ExistsByEmail", mock.Anything, entity.VariantRescuer, "a@x.com").
		Return(false, errors.New("dial tcp 10.0.0.5:5432: connection refused")).Once()

	rec := f.do(nethttp.MethodPost, "/auth/rescuer/create", registerBody)
	require.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decode(t, rec)["error"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())
	account := &entity.Account{ID: "r1", Variant: entity.VariantRescuer, Email: "a@x.com", PasswordHash: f.hash(t, "Secret123"), City: "metropolis"}

	f.accounts.On("FindByEmail", mock.Anything, entity.VariantRescuer, "a@x.com").Return(account, nil).Once()

	rec := f.do(nethttp.MethodPost, "/auth/login/rescuer", `{"email":"a@x.com","password":"Secret123"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "Logged in successfully", body["message"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "r1", user["id"])
	assert.NotContains(t, user, "password")

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, nethttp.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
	assert.Positive(t, cookie.MaxAge)
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	cfg := newTestConfig()
	cfg.Env.Env = config.EnvProduction
	f := newAPIFixture(t, cfg)
	account := &entity.Account{ID: "o1", Variant: entity.VariantOrganization, Email: "org@x.com", PasswordHash: f.hash(t, "Secret123")}

	f.accounts.On("FindByEmail", mock.Anything, entity.VariantOrganization, "org@x.com").Return(account, nil).Once()

	rec := f.do(nethttp.MethodPost, "/auth/login/organization", `{"email":"org@x.com","password":"Secret123"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.True(t, sessionCookie(t, rec).Secure)
}

func TestLogin_BodyCannotOverrideType(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	f.accounts.On("FindByEmail", mock.Anything, entity.VariantAuthority, "a@x.com").
		Return(nil, repository.ErrAccountNotFound).Once()

	rec := f.do(nethttp.MethodPost, "/auth/login/authority", `{"type":"rescuer","email":"a@x.com","password":"Secret123"}`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is not registered as authority.", decode(t, rec)["error"])
}

func TestLogin_WrongPasswordIsUniformAcrossVariants(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())
	hash := f.hash(t, "Secret123")

	var bodies []string
	for _, variant := range entity.Variants() {
		account := &entity.Account{ID: "x", Variant: variant, Email: "a@x.com", PasswordHash: hash}
		f.accounts.On("FindByEmail", mock.Anything, variant, "a@x.com").Return(account, nil).Once()

		rec := f.do(nethttp.MethodPost, "/auth/login/"+variant.String(), `{"email":"a@x.com","password":"Wrong1234"}`)
		require.Equal(t, nethttp.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, bodies[0])
}

func TestLogin_UnknownType(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodPost, "/auth/login/admin", `{"email":"a@x.com","password":"Secret123"}`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	details, ok := decode(t, rec)["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "type", details[0].(map[string]any)["field"])
}

func TestLogout_ClearsCookie(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodGet, "/auth/logout", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestSession_RequiresValidCookie(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())
	account := &entity.Account{ID: "a1", Variant: entity.VariantAuthority, Email: "chief@x.com", PasswordHash: f.hash(t, "Secret123")}
	f.accounts.On("FindByEmail", mock.Anything, entity.VariantAuthority, "chief@x.com").Return(account, nil).Once()

	login := f.do(nethttp.MethodPost, "/auth/login/authority", `{"email":"chief@x.com","password":"Secret123"}`)
	require.Equal(t, nethttp.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	t.Run("valid", func(t *testing.T) {
		rec := f.do(nethttp.MethodGet, "/auth/session", "", &nethttp.Cookie{Name: cookie.Name, Value: cookie.Value})
		require.Equal(t, nethttp.StatusOK, rec.Code)

		session, ok := decode(t, rec)["session"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "chief@x.com", session["email"])
		assert.Equal(t, "authority", session["type"])
	})

	t.Run("missing", func(t *testing.T) {
		rec := f.do(nethttp.MethodGet, "/auth/session", "")
		require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid or expired session"}`, rec.Body.String())
	})

	t.Run("tampered", func(t *testing.T) {
		rec := f.do(nethttp.MethodGet, "/auth/session", "", &nethttp.Cookie{Name: cookie.Name, Value: cookie.Value + "x"})
		require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	})
}

func TestHealthAndRequestID(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodGet, "/health", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t, newTestConfig())

	rec := f.do(nethttp.MethodGet, "/nope", "")
	require.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decode(t, rec)["error"])
}
