package routers

import (
	"infomed-service/internal/app/delivery/http/middlewares"
	"infomed-service/internal/app/services/core/formularios"
	"infomed-service/internal/app/services/core/respostas"

	"github.com/go-chi/chi/v5"
)

func attachFormularioRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	formularioController *formularios.FormularioController,
	respostaController *respostas.RespostaController,
) {
	router.Get("/", formularioController.FindAll)
	router.Get("/{formularioID}", formularioController.FindByID)
	router.With(middlewares.Authentication).Post("/", formularioController.Create)
	router.With(middlewares.Authentication).Put("/{formularioID}", formularioController.Update)
	router.With(middlewares.Authentication).Delete("/{formularioID}", formularioController.Delete)

	router.Post("/{formularioID}/respostas", respostaController.Create)
}
