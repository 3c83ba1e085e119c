package formularios

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestFormularioUsecase_FindAll(t *testing.T) {
	t.Run("cache miss fetches from repository and fills cache", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		cache := new(MockRedisRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: cache}

		stored := []models.Formulario{{ID: 1, Titulo: "Triagem"}}
		cache.On("Get", mock.Anything, constvars.RedisKeyFormularioList).Return("", nil)
		repo.On("FindAll", mock.Anything).Return(stored, nil)
		cache.On("Set", mock.Anything, constvars.RedisKeyFormularioList, stored, time.Duration(0)).Return(nil)

		result, err := uc.FindAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, result)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		cache := new(MockRedisRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: cache}

		cache.On("Get", mock.Anything, constvars.RedisKeyFormularioList).
			Return(`[{"id":2,"titulo":"Anamnese"}]`, nil)

		result, err := uc.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(2), result[0].ID)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestFormularioUsecase_FindByID(t *testing.T) {
	t.Run("missing formulario returns 404", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: new(MockRedisRepository)}

		repo.On("FindCompleteByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := uc.FindByID(context.Background(), 99)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestFormularioUsecase_Create(t *testing.T) {
	t.Run("invalid business rule never reaches the repository", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: new(MockRedisRepository)}

		request := &requests.CreateFormulario{
			Titulo: "Triagem",
			Questoes: []requests.CreateQuestao{
				{Descricao: "Sintomas?", Tipo: "radio", Alternativas: []requests.CreateAlternativa{{Descricao: "Febre"}}},
			},
		}

		_, err := uc.Create(context.Background(), request)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid create persists, invalidates cache and re-reads", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		cache := new(MockRedisRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: cache}

		request := &requests.CreateFormulario{
			Titulo: "Triagem",
			Questoes: []requests.CreateQuestao{
				{Descricao: "Observações", Tipo: "texto"},
			},
		}
		completo := &models.FormularioCompleto{Formulario: models.Formulario{ID: 3, Titulo: "Triagem"}}

		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Formulario"), mock.Anything).Return(int64(3), nil)
		cache.On("Delete", mock.Anything, constvars.RedisKeyFormularioList).Return(nil)
		repo.On("FindCompleteByID", mock.Anything, int64(3)).Return(completo, nil)

		result, err := uc.Create(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, completo, result)
		cache.AssertExpectations(t)
	})
}

func TestFormularioUsecase_Delete(t *testing.T) {
	t.Run("repeat delete of missing id returns 404", func(t *testing.T) {
		repo := new(MockFormularioRepository)
		uc := &formularioUsecase{FormularioRepository: repo, RedisRepository: new(MockRedisRepository)}

		repo.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

		err := uc.Delete(context.Background(), 42)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
