package users

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UsuarioController struct {
	Log            *zap.Logger
	UsuarioUsecase contracts.UsuarioUsecase
}

func NewUsuarioController(logger *zap.Logger, usuarioUsecase contracts.UsuarioUsecase) *UsuarioController {
	return &UsuarioController{
		Log:            logger,
		UsuarioUsecase: usuarioUsecase,
	}
}

func (ctrl *UsuarioController) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.RegisterUsuario{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeRegisterUsuarioRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.UsuarioUsecase.Register(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUsuarioSuccessMessage, result)
}
