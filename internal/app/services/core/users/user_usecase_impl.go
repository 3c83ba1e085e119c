package users

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/requests"
	"infomed-service/internal/pkg/dto/responses"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
)

type usuarioUsecase struct {
	UsuarioRepository contracts.UsuarioRepository
}

func NewUsuarioUsecase(usuarioPostgresRepository contracts.UsuarioRepository) contracts.UsuarioUsecase {
	return &usuarioUsecase{
		UsuarioRepository: usuarioPostgresRepository,
	}
}

func (uc *usuarioUsecase) Register(ctx context.Context, request *requests.RegisterUsuario) (*responses.Usuario, error) {
	exists, err := uc.UsuarioRepository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	senhaHash, err := utils.HashPassword(request.Senha)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	usuario := &models.Usuario{
		Nome:          request.Nome,
		Email:         request.Email,
		SenhaHash:     senhaHash,
		CRM:           request.CRM,
		Instituicao:   request.Instituicao,
		Telefone:      request.Telefone,
		Especialidade: request.Especialidade,
	}
	created, err := uc.UsuarioRepository.Create(ctx, usuario)
	if err != nil {
		return nil, err
	}

	return &responses.Usuario{
		ID:            created.ID,
		Nome:          created.Nome,
		Email:         created.Email,
		CRM:           created.CRM,
		Instituicao:   created.Instituicao,
		Telefone:      created.Telefone,
		Especialidade: created.Especialidade,
		CreatedAt:     created.CreatedAt,
	}, nil
}
