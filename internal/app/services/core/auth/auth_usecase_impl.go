package auth

import (
	"context"
	"infomed-service/internal/app/config"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/dto/responses"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

type authUsecase struct {
	UsuarioRepository contracts.UsuarioRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	usuarioPostgresRepository contracts.UsuarioRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UsuarioRepository: usuarioPostgresRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	usuario, err := uc.UsuarioRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if err := utils.ComparePassword(usuario.SenhaHash, request.Senha); err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	sessionID := uuid.New().String()
	session := models.Session{
		UsuarioID:     usuario.ID,
		Nome:          usuario.Nome,
		Email:         usuario.Email,
		CRM:           usuario.CRM,
		Especialidade: usuario.Especialidade,
	}
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeySessionPrefix+sessionID, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour, map[string]interface{}{
		"id":            usuario.ID,
		"nome":          usuario.Nome,
		"crm":           usuario.CRM,
		"especialidade": usuario.Especialidade,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}
