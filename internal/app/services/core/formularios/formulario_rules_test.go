package formularios

import (
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completoWithRadioQuestao() *models.FormularioCompleto {
	return &models.FormularioCompleto{
		Formulario: models.Formulario{ID: 1, Titulo: "Triagem"},
		Questoes: []models.QuestaoCompleta{
			{
				Questao: models.Questao{ID: 10, FormularioID: 1, Descricao: "Sintomas?", Tipo: "radio"},
				Alternativas: []models.Alternativa{
					{ID: 100, QuestaoID: 10, Descricao: "Febre"},
					{ID: 101, QuestaoID: 10, Descricao: "Tosse"},
				},
			},
		},
	}
}

func TestValidateCreateQuestoes(t *testing.T) {
	t.Run("radio with one alternativa is rejected", func(t *testing.T) {
		err := validateCreateQuestoes([]requests.CreateQuestao{
			{Descricao: "Sintomas?", Tipo: "radio", Alternativas: []requests.CreateAlternativa{{Descricao: "Febre"}}},
		})
		require.Error(t, err)
	})

	t.Run("texto with alternativas is rejected", func(t *testing.T) {
		err := validateCreateQuestoes([]requests.CreateQuestao{
			{Descricao: "Observações", Tipo: "texto", Alternativas: []requests.CreateAlternativa{{Descricao: "Livre"}}},
		})
		require.Error(t, err)
	})

	t.Run("repeated alternativa descriptions are rejected", func(t *testing.T) {
		err := validateCreateQuestoes([]requests.CreateQuestao{
			{Descricao: "Sintomas?", Tipo: "radio", Alternativas: []requests.CreateAlternativa{
				{Descricao: "Febre"}, {Descricao: "Febre"},
			}},
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("same description under different questoes passes", func(t *testing.T) {
		err := validateCreateQuestoes([]requests.CreateQuestao{
			{Descricao: "Sintomas?", Tipo: "radio", Alternativas: []requests.CreateAlternativa{
				{Descricao: "Sim"}, {Descricao: "Não"},
			}},
			{Descricao: "Fuma?", Tipo: "radio", Alternativas: []requests.CreateAlternativa{
				{Descricao: "Sim"}, {Descricao: "Não"},
			}},
		})
		assert.NoError(t, err)
	})

	t.Run("valid shapes pass", func(t *testing.T) {
		err := validateCreateQuestoes([]requests.CreateQuestao{
			{Descricao: "Observações", Tipo: "texto"},
			{Descricao: "Sintomas?", Tipo: "checkbox", Alternativas: []requests.CreateAlternativa{
				{Descricao: "Febre"}, {Descricao: "Tosse"},
			}},
		})
		assert.NoError(t, err)
	})
}

func TestValidateUpdateOps(t *testing.T) {
	t.Run("deleting one of two alternativas on radio is rejected", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.DeleteAlternativaOp{ID: 100},
				}},
			},
		}

		err := validateUpdateOps(completoWithRadioQuestao(), update)
		require.Error(t, err)
	})

	t.Run("delete balanced by create keeps radio valid", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.DeleteAlternativaOp{ID: 100},
					models.CreateAlternativaOp{Descricao: "Dor de cabeça"},
				}},
			},
		}

		assert.NoError(t, validateUpdateOps(completoWithRadioQuestao(), update))
	})

	t.Run("creating an alternativa with an existing descricao is rejected", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.CreateAlternativaOp{Descricao: "Febre"},
				}},
			},
		}

		err := validateUpdateOps(completoWithRadioQuestao(), update)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("renaming an alternativa onto another is rejected", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.UpdateAlternativaOp{ID: 101, Descricao: "Febre"},
				}},
			},
		}

		require.Error(t, validateUpdateOps(completoWithRadioQuestao(), update))
	})

	t.Run("deleted descricao can be reused in the same diff", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.DeleteAlternativaOp{ID: 100},
					models.CreateAlternativaOp{Descricao: "Febre"},
				}},
			},
		}

		assert.NoError(t, validateUpdateOps(completoWithRadioQuestao(), update))
	})

	t.Run("changing tipo to texto with remaining alternativas is rejected", func(t *testing.T) {
		tipo := "texto"
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Patch: models.QuestaoPatch{Tipo: &tipo}},
			},
		}

		err := validateUpdateOps(completoWithRadioQuestao(), update)
		require.Error(t, err)
	})

	t.Run("op against unknown questao returns not found", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{models.DeleteQuestaoOp{ID: 999}},
		}

		err := validateUpdateOps(completoWithRadioQuestao(), update)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("op against alternativa of another questao returns not found", func(t *testing.T) {
		update := &models.FormularioUpdate{
			Questoes: []models.QuestaoOp{
				models.UpdateQuestaoOp{ID: 10, Alternativas: []models.AlternativaOp{
					models.UpdateAlternativaOp{ID: 777, Descricao: "Estranha"},
				}},
			},
		}

		err := validateUpdateOps(completoWithRadioQuestao(), update)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
