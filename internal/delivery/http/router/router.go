// Package router contains routing for the HTTP delivery.
package router

import (
	"resq/internal/delivery/http/middleware"
	"resq/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/rescuer/create", r.authHandler.RegisterRescuer)
		authGroup.POST("/login/:type", r.authHandler.Login)
		authGroup.GET("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session, r.sessionMiddleware.Authenticate)
	}
}
