package formularios

import (
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
)

func validateQuestaoShape(tipo string, alternativaCount int) error {
	switch tipo {
	case constvars.QuestaoTipoTexto:
		if alternativaCount > 0 {
			return exceptions.ErrBusinessRuleValidation(ruleTextoSemAlternativas)
		}
	case constvars.QuestaoTipoRadio, constvars.QuestaoTipoCheckbox:
		if alternativaCount < constvars.MinAlternativasPerQuestao {
			return exceptions.ErrBusinessRuleValidation(ruleMinAlternativas)
		}
	}
	return nil
}

// validateAlternativaDescricoes rejects repeated descriptions within one
// questão. Comparison is exact; inputs arrive trimmed from the sanitizers.
func validateAlternativaDescricoes(descricoes []string) error {
	seen := make(map[string]bool, len(descricoes))
	for _, descricao := range descricoes {
		if seen[descricao] {
			return exceptions.ErrBusinessRuleValidation(ruleAlternativasDuplicadas)
		}
		seen[descricao] = true
	}
	return nil
}

func validateCreateQuestoes(questoes []requests.CreateQuestao) error {
	for _, questao := range questoes {
		descricoes := make([]string, 0, len(questao.Alternativas))
		for _, alternativa := range questao.Alternativas {
			descricoes = append(descricoes, alternativa.Descricao)
		}
		if err := validateAlternativaDescricoes(descricoes); err != nil {
			return err
		}
		if err := validateQuestaoShape(questao.Tipo, len(questao.Alternativas)); err != nil {
			return err
		}
	}
	return nil
}

// validateUpdateOps checks every op against the stored aggregate and the
// shape each questão ends with once the diff is applied.
func validateUpdateOps(existing *models.FormularioCompleto, update *models.FormularioUpdate) error {
	questoesByID := make(map[int64]models.QuestaoCompleta, len(existing.Questoes))
	for _, questao := range existing.Questoes {
		questoesByID[questao.ID] = questao
	}

	for _, op := range update.Questoes {
		switch questaoOp := op.(type) {
		case models.CreateQuestaoOp:
			if err := validateAlternativaDescricoes(questaoOp.Alternativas); err != nil {
				return err
			}
			if err := validateQuestaoShape(questaoOp.Tipo, len(questaoOp.Alternativas)); err != nil {
				return err
			}

		case models.DeleteQuestaoOp:
			if _, found := questoesByID[questaoOp.ID]; !found {
				return exceptions.ErrQuestaoNotFound(nil)
			}

		case models.UpdateQuestaoOp:
			stored, found := questoesByID[questaoOp.ID]
			if !found {
				return exceptions.ErrQuestaoNotFound(nil)
			}
			if err := validateQuestaoUpdate(stored, questaoOp); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateQuestaoUpdate(stored models.QuestaoCompleta, op models.UpdateQuestaoOp) error {
	descricaoByID := make(map[int64]string, len(stored.Alternativas))
	for _, alternativa := range stored.Alternativas {
		descricaoByID[alternativa.ID] = alternativa.Descricao
	}

	deleted := make(map[int64]bool)
	var created []string

	for _, alternativaOp := range op.Alternativas {
		switch typed := alternativaOp.(type) {
		case models.CreateAlternativaOp:
			created = append(created, typed.Descricao)
		case models.UpdateAlternativaOp:
			if _, found := descricaoByID[typed.ID]; !found {
				return exceptions.ErrAlternativaNotFound(nil)
			}
			descricaoByID[typed.ID] = typed.Descricao
		case models.DeleteAlternativaOp:
			if _, found := descricaoByID[typed.ID]; !found {
				if deleted[typed.ID] {
					continue
				}
				return exceptions.ErrAlternativaNotFound(nil)
			}
			deleted[typed.ID] = true
			delete(descricaoByID, typed.ID)
		}
	}

	descricoes := make([]string, 0, len(descricaoByID)+len(created))
	for _, descricao := range descricaoByID {
		descricoes = append(descricoes, descricao)
	}
	descricoes = append(descricoes, created...)
	if err := validateAlternativaDescricoes(descricoes); err != nil {
		return err
	}

	tipo := stored.Tipo
	if op.Patch.Tipo != nil {
		tipo = *op.Patch.Tipo
	}
	return validateQuestaoShape(tipo, len(descricoes))
}
