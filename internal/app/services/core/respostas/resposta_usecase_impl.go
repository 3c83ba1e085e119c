package respostas

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

const ruleTextoNaoAceitaAlternativa = "questões do tipo texto não aceitam alternativa"

type respostaUsecase struct {
	RespostaRepository   contracts.RespostaRepository
	FormularioRepository contracts.FormularioRepository
}

func NewRespostaUsecase(
	respostaPostgresRepository contracts.RespostaRepository,
	formularioPostgresRepository contracts.FormularioRepository,
) contracts.RespostaUsecase {
	return &respostaUsecase{
		RespostaRepository:   respostaPostgresRepository,
		FormularioRepository: formularioPostgresRepository,
	}
}

func (uc *respostaUsecase) Create(ctx context.Context, formularioID int64, request *requests.CreateRespostas) ([]models.Resposta, error) {
	formulario, err := uc.FormularioRepository.FindCompleteByID(ctx, formularioID)
	if err != nil {
		return nil, err
	}
	if formulario == nil {
		return nil, exceptions.ErrFormularioNotFound(nil)
	}

	questoesByID := make(map[int64]models.QuestaoCompleta, len(formulario.Questoes))
	for _, questao := range formulario.Questoes {
		questoesByID[questao.ID] = questao
	}

	respondenteID := request.RespondenteID
	if respondenteID == "" {
		respondenteID = uuid.New().String()
	}

	// One row per selected alternativa per respondente; repeated pairs in
	// the payload would inflate the relatório counts.
	seen := make(map[[2]int64]bool, len(request.Respostas))

	respostas := make([]models.Resposta, 0, len(request.Respostas))
	for _, item := range request.Respostas {
		pair := [2]int64{item.QuestaoID, item.AlternativaID}
		if seen[pair] {
			continue
		}
		seen[pair] = true

		questao, found := questoesByID[item.QuestaoID]
		if !found {
			return nil, exceptions.ErrQuestaoNotFound(nil)
		}
		if questao.Tipo == constvars.QuestaoTipoTexto {
			return nil, exceptions.ErrBusinessRuleValidation(ruleTextoNaoAceitaAlternativa)
		}

		belongsToQuestao := false
		for _, alternativa := range questao.Alternativas {
			if alternativa.ID == item.AlternativaID {
				belongsToQuestao = true
				break
			}
		}
		if !belongsToQuestao {
			return nil, exceptions.ErrAlternativaNotFound(nil)
		}

		respostas = append(respostas, models.Resposta{
			QuestaoID:     item.QuestaoID,
			AlternativaID: item.AlternativaID,
			RespondenteID: respondenteID,
		})
	}

	return uc.RespostaRepository.CreateAll(ctx, respostas)
}
