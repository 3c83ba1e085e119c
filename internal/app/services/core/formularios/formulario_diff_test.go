package formularios

import (
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildFormularioUpdate(t *testing.T) {
	t.Run("converts tagged actions into typed ops", func(t *testing.T) {
		request := &requests.UpdateFormulario{
			Titulo: strPtr("Novo título"),
			Questoes: []requests.UpdateQuestao{
				{Action: "create", Descricao: strPtr("Qual sintoma?"), Tipo: strPtr("radio"), Alternativas: []requests.UpdateAlternativa{
					{Action: "create", Descricao: strPtr("Febre")},
					{Action: "create", Descricao: strPtr("Tosse")},
				}},
				{Action: "update", ID: 5, Descricao: strPtr("Atualizada"), Alternativas: []requests.UpdateAlternativa{
					{Action: "delete", ID: 9},
				}},
				{Action: "delete", ID: 7},
			},
		}

		update, err := buildFormularioUpdate(request)
		require.NoError(t, err)
		require.Len(t, update.Questoes, 3)
		assert.Equal(t, "Novo título", *update.Patch.Titulo)
		assert.Nil(t, update.Patch.Descricao)

		createOp, ok := update.Questoes[0].(models.CreateQuestaoOp)
		require.True(t, ok)
		assert.Equal(t, []string{"Febre", "Tosse"}, createOp.Alternativas)

		updateOp, ok := update.Questoes[1].(models.UpdateQuestaoOp)
		require.True(t, ok)
		assert.Equal(t, int64(5), updateOp.ID)
		require.Len(t, updateOp.Alternativas, 1)
		deleteAlternativa, ok := updateOp.Alternativas[0].(models.DeleteAlternativaOp)
		require.True(t, ok)
		assert.Equal(t, int64(9), deleteAlternativa.ID)

		deleteOp, ok := update.Questoes[2].(models.DeleteQuestaoOp)
		require.True(t, ok)
		assert.Equal(t, int64(7), deleteOp.ID)
	})

	t.Run("update without id is rejected", func(t *testing.T) {
		request := &requests.UpdateFormulario{
			Questoes: []requests.UpdateQuestao{
				{Action: "update", Descricao: strPtr("Sem id")},
			},
		}

		_, err := buildFormularioUpdate(request)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("delete without id is rejected", func(t *testing.T) {
		request := &requests.UpdateFormulario{
			Questoes: []requests.UpdateQuestao{{Action: "delete"}},
		}

		_, err := buildFormularioUpdate(request)
		require.Error(t, err)
	})

	t.Run("create without descricao or tipo is rejected", func(t *testing.T) {
		request := &requests.UpdateFormulario{
			Questoes: []requests.UpdateQuestao{{Action: "create", Descricao: strPtr("Somente descricao")}},
		}

		_, err := buildFormularioUpdate(request)
		require.Error(t, err)
	})
}
