package formularios

import (
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
)

const (
	ruleActionRequiresID       = "as ações update e delete exigem um campo id"
	ruleCreateRequiresFields   = "a ação create exige descricao e tipo"
	ruleCreateAlternativaField = "a ação create exige descricao na alternativa"
	ruleUpdateAlternativaField = "a ação update exige descricao na alternativa"
	ruleMinAlternativas        = "questões do tipo radio ou checkbox devem ter pelo menos 2 alternativas"
	ruleTextoSemAlternativas   = "questões do tipo texto não podem ter alternativas"
	ruleAlternativasDuplicadas = "alternativas de uma questão não podem ter descrições repetidas"
)

// buildFormularioUpdate converts the tagged-diff payload into typed
// operations. Action strings are checked here once, so the repository tier
// only sees well-formed ops.
func buildFormularioUpdate(request *requests.UpdateFormulario) (*models.FormularioUpdate, error) {
	update := &models.FormularioUpdate{
		Patch: models.FormularioPatch{
			Titulo:    request.Titulo,
			Descricao: request.Descricao,
		},
	}

	for _, questao := range request.Questoes {
		op, err := buildQuestaoOp(questao)
		if err != nil {
			return nil, err
		}
		update.Questoes = append(update.Questoes, op)
	}
	return update, nil
}

func buildQuestaoOp(questao requests.UpdateQuestao) (models.QuestaoOp, error) {
	switch questao.Action {
	case constvars.QuestaoActionCreate:
		if questao.Descricao == nil || questao.Tipo == nil {
			return nil, exceptions.ErrBusinessRuleValidation(ruleCreateRequiresFields)
		}
		op := models.CreateQuestaoOp{
			Descricao: *questao.Descricao,
			Tipo:      *questao.Tipo,
		}
		for _, alternativa := range questao.Alternativas {
			if alternativa.Action != constvars.QuestaoActionCreate || alternativa.Descricao == nil {
				return nil, exceptions.ErrBusinessRuleValidation(ruleCreateAlternativaField)
			}
			op.Alternativas = append(op.Alternativas, *alternativa.Descricao)
		}
		return op, nil

	case constvars.QuestaoActionUpdate:
		if questao.ID <= 0 {
			return nil, exceptions.ErrBusinessRuleValidation(ruleActionRequiresID)
		}
		op := models.UpdateQuestaoOp{
			ID: questao.ID,
			Patch: models.QuestaoPatch{
				Descricao: questao.Descricao,
				Tipo:      questao.Tipo,
			},
		}
		for _, alternativa := range questao.Alternativas {
			alternativaOp, err := buildAlternativaOp(alternativa)
			if err != nil {
				return nil, err
			}
			op.Alternativas = append(op.Alternativas, alternativaOp)
		}
		return op, nil

	case constvars.QuestaoActionDelete:
		if questao.ID <= 0 {
			return nil, exceptions.ErrBusinessRuleValidation(ruleActionRequiresID)
		}
		return models.DeleteQuestaoOp{ID: questao.ID}, nil
	}

	return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevUnknownQuestaoAction)
}

func buildAlternativaOp(alternativa requests.UpdateAlternativa) (models.AlternativaOp, error) {
	switch alternativa.Action {
	case constvars.QuestaoActionCreate:
		if alternativa.Descricao == nil {
			return nil, exceptions.ErrBusinessRuleValidation(ruleCreateAlternativaField)
		}
		return models.CreateAlternativaOp{Descricao: *alternativa.Descricao}, nil

	case constvars.QuestaoActionUpdate:
		if alternativa.ID <= 0 {
			return nil, exceptions.ErrBusinessRuleValidation(ruleActionRequiresID)
		}
		if alternativa.Descricao == nil {
			return nil, exceptions.ErrBusinessRuleValidation(ruleUpdateAlternativaField)
		}
		return models.UpdateAlternativaOp{ID: alternativa.ID, Descricao: *alternativa.Descricao}, nil

	case constvars.QuestaoActionDelete:
		if alternativa.ID <= 0 {
			return nil, exceptions.ErrBusinessRuleValidation(ruleActionRequiresID)
		}
		return models.DeleteAlternativaOp{ID: alternativa.ID}, nil
	}

	return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevUnknownQuestaoAction)
}
