package respostas

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRespostaRepository struct {
	mock.Mock
}

func (m *MockRespostaRepository) CreateAll(ctx context.Context, respostas []models.Resposta) ([]models.Resposta, error) {
	args := m.Called(ctx, respostas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resposta), args.Error(1)
}

type MockFormularioRepository struct {
	mock.Mock
}

func (m *MockFormularioRepository) FindAll(ctx context.Context) ([]models.Formulario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Formulario), args.Error(1)
}

func (m *MockFormularioRepository) FindByID(ctx context.Context, formularioID int64) (*models.Formulario, error) {
	args := m.Called(ctx, formularioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Formulario), args.Error(1)
}

func (m *MockFormularioRepository) FindCompleteByID(ctx context.Context, formularioID int64) (*models.FormularioCompleto, error) {
	args := m.Called(ctx, formularioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormularioCompleto), args.Error(1)
}

func (m *MockFormularioRepository) Create(ctx context.Context, formulario *models.Formulario, questoes []models.CreateQuestaoOp) (int64, error) {
	args := m.Called(ctx, formulario, questoes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFormularioRepository) Update(ctx context.Context, formularioID int64, update *models.FormularioUpdate) error {
	args := m.Called(ctx, formularioID, update)
	return args.Error(0)
}

func (m *MockFormularioRepository) Delete(ctx context.Context, formularioID int64) error {
	args := m.Called(ctx, formularioID)
	return args.Error(0)
}

func formularioTriagem() *models.FormularioCompleto {
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
			{
				Questao: models.Questao{ID: 11, FormularioID: 1, Descricao: "Observações", Tipo: "texto"},
			},
		},
	}
}

func TestRespostaUsecase_Create(t *testing.T) {
	t.Run("valid submission persists one row per alternativa", func(t *testing.T) {
		respostaRepo := new(MockRespostaRepository)
		formularioRepo := new(MockFormularioRepository)
		uc := NewRespostaUsecase(respostaRepo, formularioRepo)

		formularioRepo.On("FindCompleteByID", mock.Anything, int64(1)).Return(formularioTriagem(), nil)
		respostaRepo.On("CreateAll", mock.Anything, mock.Anything).
			Return([]models.Resposta{{ID: 1, QuestaoID: 10, AlternativaID: 100, RespondenteID: "abc"}}, nil)

		result, err := uc.Create(context.Background(), 1, &requests.CreateRespostas{
			RespondenteID: "abc",
			Respostas:     []requests.RespostaQuestao{{QuestaoID: 10, AlternativaID: 100}},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		respostaRepo.AssertExpectations(t)
	})

	t.Run("repeated questao alternativa pairs collapse to one row", func(t *testing.T) {
		respostaRepo := new(MockRespostaRepository)
		formularioRepo := new(MockFormularioRepository)
		uc := NewRespostaUsecase(respostaRepo, formularioRepo)

		formularioRepo.On("FindCompleteByID", mock.Anything, int64(1)).Return(formularioTriagem(), nil)
		respostaRepo.On("CreateAll", mock.Anything, mock.MatchedBy(func(rows []models.Resposta) bool {
			return len(rows) == 1
		})).Return([]models.Resposta{{ID: 1, QuestaoID: 10, AlternativaID: 100}}, nil)

		result, err := uc.Create(context.Background(), 1, &requests.CreateRespostas{
			Respostas: []requests.RespostaQuestao{
				{QuestaoID: 10, AlternativaID: 100},
				{QuestaoID: 10, AlternativaID: 100},
			},
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		respostaRepo.AssertExpectations(t)
	})

	t.Run("missing formulario returns 404", func(t *testing.T) {
		respostaRepo := new(MockRespostaRepository)
		formularioRepo := new(MockFormularioRepository)
		uc := NewRespostaUsecase(respostaRepo, formularioRepo)

		formularioRepo.On("FindCompleteByID", mock.Anything, int64(9)).Return(nil, nil)

		_, err := uc.Create(context.Background(), 9, &requests.CreateRespostas{
			Respostas: []requests.RespostaQuestao{{QuestaoID: 10, AlternativaID: 100}},
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("alternativa of another questao is rejected", func(t *testing.T) {
		respostaRepo := new(MockRespostaRepository)
		formularioRepo := new(MockFormularioRepository)
		uc := NewRespostaUsecase(respostaRepo, formularioRepo)

		formularioRepo.On("FindCompleteByID", mock.Anything, int64(1)).Return(formularioTriagem(), nil)

		_, err := uc.Create(context.Background(), 1, &requests.CreateRespostas{
			Respostas: []requests.RespostaQuestao{{QuestaoID: 10, AlternativaID: 999}},
		})
		require.Error(t, err)
		respostaRepo.AssertNotCalled(t, "CreateAll", mock.Anything, mock.Anything)
	})

	t.Run("texto questao takes no alternativa", func(t *testing.T) {
		respostaRepo := new(MockRespostaRepository)
		formularioRepo := new(MockFormularioRepository)
		uc := NewRespostaUsecase(respostaRepo, formularioRepo)

		formularioRepo.On("FindCompleteByID", mock.Anything, int64(1)).Return(formularioTriagem(), nil)

		_, err := uc.Create(context.Background(), 1, &requests.CreateRespostas{
			Respostas: []requests.RespostaQuestao{{QuestaoID: 11, AlternativaID: 100}},
		})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
