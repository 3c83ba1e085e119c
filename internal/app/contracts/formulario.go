package contracts

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
)

type FormularioUsecase interface {
	FindAll(ctx context.Context) ([]models.Formulario, error)
	FindByID(ctx context.Context, formularioID int64) (*models.FormularioCompleto, error)
	Create(ctx context.Context, request *requests.CreateFormulario) (*models.FormularioCompleto, error)
	Update(ctx context.Context, formularioID int64, request *requests.UpdateFormulario) (*models.FormularioCompleto, error)
	Delete(ctx context.Context, formularioID int64) error
}

type FormularioRepository interface {
	FindAll(ctx context.Context) ([]models.Formulario, error)
	FindByID(ctx context.Context, formularioID int64) (*models.Formulario, error)
	FindCompleteByID(ctx context.Context, formularioID int64) (*models.FormularioCompleto, error)
	Create(ctx context.Context, formulario *models.Formulario, questoes []models.CreateQuestaoOp) (int64, error)
	Update(ctx context.Context, formularioID int64, update *models.FormularioUpdate) error
	Delete(ctx context.Context, formularioID int64) error
}
