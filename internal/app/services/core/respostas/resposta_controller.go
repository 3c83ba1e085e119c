package respostas

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RespostaController struct {
	Log             *zap.Logger
	RespostaUsecase contracts.RespostaUsecase
}

func NewRespostaController(logger *zap.Logger, respostaUsecase contracts.RespostaUsecase) *RespostaController {
	return &RespostaController{
		Log:             logger,
		RespostaUsecase: respostaUsecase,
	}
}

func (ctrl *RespostaController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rawID := chi.URLParam(r, "formularioID")
	formularioID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || formularioID <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "formularioID"))
		return
	}

	request := &requests.CreateRespostas{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateRespostasRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.RespostaUsecase.Create(ctx, formularioID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRespostasSuccessMessage, result)
}
