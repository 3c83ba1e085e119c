package formularios

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

type FormularioController struct {
	Log               *zap.Logger
	FormularioUsecase contracts.FormularioUsecase
}

func NewFormularioController(logger *zap.Logger, formularioUsecase contracts.FormularioUsecase) *FormularioController {
	return &FormularioController{
		Log:               logger,
		FormularioUsecase: formularioUsecase,
	}
}

func parseFormularioID(r *http.Request) (int64, error) {
	rawID := chi.URLParam(r, "formularioID")
	formularioID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || formularioID <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, "formularioID")
	}
	return formularioID, nil
}

func (ctrl *FormularioController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FormularioUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormulariosSuccessMessage, result)
}

func (ctrl *FormularioController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	formularioID, err := parseFormularioID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.FormularioUsecase.FindByID(ctx, formularioID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormularioSuccessMessage, result)
}

func (ctrl *FormularioController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateFormulario{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateFormularioRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.FormularioUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateFormularioSuccessMessage, result)
}

func (ctrl *FormularioController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	formularioID, err := parseFormularioID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.UpdateFormulario{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateFormularioRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.FormularioUsecase.Update(ctx, formularioID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateFormularioSuccessMessage, result)
}

func (ctrl *FormularioController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	formularioID, err := parseFormularioID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.FormularioUsecase.Delete(ctx, formularioID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteFormularioSuccessMessage, nil)
}
