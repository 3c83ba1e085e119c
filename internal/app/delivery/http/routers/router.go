package routers

import (
	"fmt"
	"infomed-service/internal/app/config"
	"infomed-service/internal/app/delivery/http/middlewares"
	"infomed-service/internal/app/services/core/auth"
	"infomed-service/internal/app/services/core/formularios"
	"infomed-service/internal/app/services/core/relatorios"
	"infomed-service/internal/app/services/core/respostas"
	"infomed-service/internal/app/services/core/users"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/responses"
	"infomed-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var startTime = time.Now()

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	formularioController *formularios.FormularioController,
	respostaController *respostas.RespostaController,
	relatorioController *relatorios.RelatorioController,
	authController *auth.AuthController,
	usuarioController *users.UsuarioController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get("/health", healthHandler)

		r.Route("/formularios", func(r chi.Router) {
			attachFormularioRoutes(r, middlewares, formularioController, respostaController)
		})

		r.Route("/relatorios", func(r chi.Router) {
			attachRelatorioRoutes(r, relatorioController)
		})

		attachAuthRoutes(r, middlewares, authController)

		r.Route("/usuarios", func(r chi.Router) {
			attachUsuarioRoutes(r, usuarioController)
		})
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	health := responses.Health{
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    fmt.Sprintf("%.0fs", time.Since(startTime).Seconds()),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, health)
}
