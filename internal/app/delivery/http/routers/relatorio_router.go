package routers

import (
	"infomed-service/internal/app/services/core/relatorios"

	"github.com/go-chi/chi/v5"
)

func attachRelatorioRoutes(router chi.Router, relatorioController *relatorios.RelatorioController) {
	router.Get("/questoes/{questaoID}", relatorioController.FindByQuestaoID)
}
