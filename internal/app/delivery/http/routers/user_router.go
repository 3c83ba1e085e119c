package routers

import (
	"infomed-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUsuarioRoutes(router chi.Router, usuarioController *users.UsuarioController) {
	router.Post("/", usuarioController.Register)
}
