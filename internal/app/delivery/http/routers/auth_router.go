package routers

import (
	"infomed-service/internal/app/delivery/http/middlewares"
	"infomed-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authentication).Post("/logout", authController.Logout)
}
