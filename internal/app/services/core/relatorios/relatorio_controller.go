package relatorios

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RelatorioController struct {
	Log              *zap.Logger
	RelatorioUsecase contracts.RelatorioUsecase
}

func NewRelatorioController(logger *zap.Logger, relatorioUsecase contracts.RelatorioUsecase) *RelatorioController {
	return &RelatorioController{
		Log:              logger,
		RelatorioUsecase: relatorioUsecase,
	}
}

func (ctrl *RelatorioController) FindByQuestaoID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rawID := chi.URLParam(r, "questaoID")
	questaoID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || questaoID <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "questaoID"))
		return
	}

	result, err := ctrl.RelatorioUsecase.TallyByQuestaoID(ctx, questaoID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRelatorioSuccessMessage, result)
}
