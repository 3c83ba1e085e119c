package contracts

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/dto/responses"
)

type UsuarioUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUsuario) (*responses.Usuario, error)
}

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
