package contracts

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
)

type RespostaUsecase interface {
	Create(ctx context.Context, formularioID int64, request *requests.CreateRespostas) ([]models.Resposta, error)
}

type RespostaRepository interface {
	CreateAll(ctx context.Context, respostas []models.Resposta) ([]models.Resposta, error)
}
