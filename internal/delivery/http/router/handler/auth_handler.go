// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"resq/config"
	deliverycontext "resq/internal/delivery/context"
	"resq/internal/delivery/http/response"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRescuerRequest is the rescuer registration payload.
type RegisterRescuerRequest struct {
	ID       string   `json:"id" validate:"required,notblank,max=64"`
	Name     string   `json:"name" validate:"required,notblank,max=255"`
	Phone    string   `json:"phone" validate:"required,notblank,max=32"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,password"`
	City     string   `json:"city" validate:"required,notblank,max=128"`
	State    string   `json:"state" validate:"required,notblank,max=128"`
	Country  string   `json:"country" validate:"required,notblank,max=128"`
	Skills   []string `json:"skills" validate:"omitempty,dive,required,notblank,max=100"`
}

// LoginRequest is the login payload. Type comes from the path, never the body.
type LoginRequest struct {
	Type     string `param:"type" json:"-" validate:"required,oneof=rescuer authority organization"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cookie config.CookieConfig
	secure bool
	now    func() time.Time
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cookie: cfg.Auth.Cookie,
		secure: cfg.SecureCookies(),
		now:    time.Now,
	}
}

// RegisterRescuer handles POST /auth/rescuer/create.
func (h *AuthHandler) RegisterRescuer(c echo.Context) error {
	var req RegisterRescuerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RegisterRescuer(c.Request().Context(), &usecase.RegisterRescuerInput{
		ID:       req.ID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
		Skills:   req.Skills,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.RescuerResponse{
		Message: "Rescuer created successfully",
		Rescuer: output.Account,
	})
}

// Login handles POST /auth/login/:type and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Variant:  req.Type,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	return c.JSON(http.StatusOK, response.UserResponse{
		Message: "Logged in successfully",
		User:    output.Account,
	})
}

// Logout handles GET /auth/logout. It always succeeds; the token itself stays valid until expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// Session handles GET /auth/session behind the session middleware.
func (h *AuthHandler) Session(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return domainerrors.ErrSessionInvalid
	}

	return c.JSON(http.StatusOK, response.SessionResponse{
		Message: "Session is valid",
		Session: session,
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value != "" {
		if maxAge := int(expires.Sub(h.now()).Seconds()); maxAge > 0 {
			cookie.MaxAge = maxAge
		}
	}

	return cookie
}

// bindAndValidate decodes path parameters and body into req, then validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "body",
			Rule:    "json",
			Message: "request body must be a valid JSON object",
		})
	}

	return c.Validate(req)
}
