package auth

import (
	"context"
	"infomed-service/internal/app/config"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error) {
	args := m.Called(ctx, usuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
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

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 8},
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	senhaHash, _ := utils.HashPassword("segredo1")
	usuario := &models.Usuario{
		ID:            1,
		Nome:          "Dra. Ana",
		Email:         "ana@example.com",
		SenhaHash:     senhaHash,
		CRM:           "12345-SP",
		Especialidade: "Cardiologia",
	}

	t.Run("unknown email returns 401", func(t *testing.T) {
		repo := new(MockUsuarioRepository)
		uc := NewAuthUsecase(repo, new(MockRedisRepository), testInternalConfig())

		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "nobody@example.com", Senha: "x"})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
		assert.Equal(t, "Email ou senha inválidos.", customErr.ClientMessage)
	})

	t.Run("wrong password returns 401 with the same message", func(t *testing.T) {
		repo := new(MockUsuarioRepository)
		uc := NewAuthUsecase(repo, new(MockRedisRepository), testInternalConfig())

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(usuario, nil)

		_, err := uc.Login(context.Background(), &requests.Login{Email: "ana@example.com", Senha: "errada"})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 401, customErr.StatusCode)
		assert.Equal(t, "Email ou senha inválidos.", customErr.ClientMessage)
	})

	t.Run("valid credentials store a session and sign the claims", func(t *testing.T) {
		repo := new(MockUsuarioRepository)
		cache := new(MockRedisRepository)
		uc := NewAuthUsecase(repo, cache, testInternalConfig())

		repo.On("FindByEmail", mock.Anything, "ana@example.com").Return(usuario, nil)
		cache.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len(constvars.RedisKeySessionPrefix)
		}), mock.Anything, 8*time.Hour).Return(nil)

		result, err := uc.Login(context.Background(), &requests.Login{Email: "ana@example.com", Senha: "segredo1"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)

		token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "Dra. Ana", claims["nome"])
		assert.Equal(t, "12345-SP", claims["crm"])
		assert.Equal(t, "Cardiologia", claims["especialidade"])
		assert.NotEmpty(t, claims["session_id"])
		cache.AssertExpectations(t)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	cache := new(MockRedisRepository)
	uc := NewAuthUsecase(new(MockUsuarioRepository), cache, testInternalConfig())

	cache.On("Delete", mock.Anything, constvars.RedisKeySessionPrefix+"abc").Return(nil)

	require.NoError(t, uc.Logout(context.Background(), "abc"))
	cache.AssertExpectations(t)
}
