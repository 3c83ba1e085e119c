package relatorios

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelatorioRepository struct {
	mock.Mock
}

func (m *MockRelatorioRepository) FindQuestaoByID(ctx context.Context, questaoID int64) (*models.Questao, error) {
	args := m.Called(ctx, questaoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Questao), args.Error(1)
}

func (m *MockRelatorioRepository) CountRespostasByQuestaoID(ctx context.Context, questaoID int64) ([]contracts.AlternativaCount, error) {
	args := m.Called(ctx, questaoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.AlternativaCount), args.Error(1)
}

func TestRelatorioUsecase_TallyByQuestaoID(t *testing.T) {
	t.Run("builds the histogram from resposta counts", func(t *testing.T) {
		repo := new(MockRelatorioRepository)
		uc := NewRelatorioUsecase(repo)

		repo.On("FindQuestaoByID", mock.Anything, int64(10)).
			Return(&models.Questao{ID: 10, Descricao: "Sintomas?", Tipo: "radio"}, nil)
		repo.On("CountRespostasByQuestaoID", mock.Anything, int64(10)).
			Return([]contracts.AlternativaCount{
				{AlternativaID: 100, Descricao: "X", Total: 2},
				{AlternativaID: 101, Descricao: "Y", Total: 1},
			}, nil)

		result, err := uc.TallyByQuestaoID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"X": 2, "Y": 1}, result.Relatorio)
		assert.Empty(t, result.Mensagem)
	})

	t.Run("unknown questao returns 404", func(t *testing.T) {
		repo := new(MockRelatorioRepository)
		uc := NewRelatorioUsecase(repo)

		repo.On("FindQuestaoByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := uc.TallyByQuestaoID(context.Background(), 99)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("texto questao returns message without counting", func(t *testing.T) {
		repo := new(MockRelatorioRepository)
		uc := NewRelatorioUsecase(repo)

		repo.On("FindQuestaoByID", mock.Anything, int64(11)).
			Return(&models.Questao{ID: 11, Descricao: "Observações", Tipo: "texto"}, nil)

		result, err := uc.TallyByQuestaoID(context.Background(), 11)
		require.NoError(t, err)
		assert.Empty(t, result.Relatorio)
		assert.Equal(t, mensagemQuestaoTexto, result.Mensagem)
		repo.AssertNotCalled(t, "CountRespostasByQuestaoID", mock.Anything, mock.Anything)
	})

	t.Run("questao without alternativas returns empty histogram and message", func(t *testing.T) {
		repo := new(MockRelatorioRepository)
		uc := NewRelatorioUsecase(repo)

		repo.On("FindQuestaoByID", mock.Anything, int64(12)).
			Return(&models.Questao{ID: 12, Descricao: "Sintomas?", Tipo: "radio"}, nil)
		repo.On("CountRespostasByQuestaoID", mock.Anything, int64(12)).
			Return([]contracts.AlternativaCount{}, nil)

		result, err := uc.TallyByQuestaoID(context.Background(), 12)
		require.NoError(t, err)
		assert.Empty(t, result.Relatorio)
		assert.Equal(t, mensagemSemAlternativas, result.Mensagem)
	})
}
