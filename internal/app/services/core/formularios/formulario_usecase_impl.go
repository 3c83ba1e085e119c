package formularios

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type formularioUsecase struct {
	FormularioRepository contracts.FormularioRepository
	RedisRepository      contracts.RedisRepository
}

func NewFormularioUsecase(
	formularioPostgresRepository contracts.FormularioRepository,
	redisRepository contracts.RedisRepository,
) contracts.FormularioUsecase {
	return &formularioUsecase{
		FormularioRepository: formularioPostgresRepository,
		RedisRepository:      redisRepository,
	}
}

func (uc *formularioUsecase) FindAll(ctx context.Context) ([]models.Formulario, error) {
	formularioRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyFormularioList)
	if err != nil {
		return nil, err
	}

	var formularios []models.Formulario
	if formularioRedisData == "" {
		formularios, err = uc.FormularioRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyFormularioList, formularios, 0)
		if err != nil {
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(formularioRedisData), &formularios)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return formularios, nil
}

func (uc *formularioUsecase) FindByID(ctx context.Context, formularioID int64) (*models.FormularioCompleto, error) {
	formulario, err := uc.FormularioRepository.FindCompleteByID(ctx, formularioID)
	if err != nil {
		return nil, err
	}
	if formulario == nil {
		return nil, exceptions.ErrFormularioNotFound(nil)
	}
	return formulario, nil
}

func (uc *formularioUsecase) Create(ctx context.Context, request *requests.CreateFormulario) (*models.FormularioCompleto, error) {
	if err := validateCreateQuestoes(request.Questoes); err != nil {
		return nil, err
	}

	questoes := make([]models.CreateQuestaoOp, 0, len(request.Questoes))
	for _, questao := range request.Questoes {
		op := models.CreateQuestaoOp{
			Descricao: questao.Descricao,
			Tipo:      questao.Tipo,
		}
		for _, alternativa := range questao.Alternativas {
			op.Alternativas = append(op.Alternativas, alternativa.Descricao)
		}
		questoes = append(questoes, op)
	}

	formulario := &models.Formulario{
		Titulo:    request.Titulo,
		Descricao: request.Descricao,
	}
	formularioID, err := uc.FormularioRepository.Create(ctx, formulario, questoes)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyFormularioList); err != nil {
		return nil, err
	}

	return uc.FindByID(ctx, formularioID)
}

func (uc *formularioUsecase) Update(ctx context.Context, formularioID int64, request *requests.UpdateFormulario) (*models.FormularioCompleto, error) {
	existing, err := uc.FormularioRepository.FindCompleteByID(ctx, formularioID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrFormularioNotFound(nil)
	}

	update, err := buildFormularioUpdate(request)
	if err != nil {
		return nil, err
	}
	if err := validateUpdateOps(existing, update); err != nil {
		return nil, err
	}

	if err := uc.FormularioRepository.Update(ctx, formularioID, update); err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyFormularioList); err != nil {
		return nil, err
	}

	return uc.FindByID(ctx, formularioID)
}

func (uc *formularioUsecase) Delete(ctx context.Context, formularioID int64) error {
	existing, err := uc.FormularioRepository.FindByID(ctx, formularioID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrFormularioNotFound(nil)
	}

	if err := uc.FormularioRepository.Delete(ctx, formularioID); err != nil {
		return err
	}

	return uc.RedisRepository.Delete(ctx, constvars.RedisKeyFormularioList)
}
