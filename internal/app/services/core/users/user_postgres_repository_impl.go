package users

import (
	"context"
	"database/sql"
	"errors"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/queries"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pqUniqueViolationCode = "23505"

type usuarioPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	usuarioPostgresRepositoryInstance contracts.UsuarioRepository
	onceUsuarioPostgresRepository     sync.Once
)

func NewUsuarioPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UsuarioRepository {
	onceUsuarioPostgresRepository.Do(func() {
		usuarioPostgresRepositoryInstance = &usuarioPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return usuarioPostgresRepositoryInstance
}

func (repo *usuarioPostgresRepository) Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("usuarioPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, usuario.Email),
	)

	err := repo.DB.QueryRowContext(ctx, queries.InsertUsuario,
		usuario.Nome,
		usuario.Email,
		usuario.SenhaHash,
		usuario.CRM,
		usuario.Instituicao,
		usuario.Telefone,
		usuario.Especialidade,
	).Scan(&usuario.ID, &usuario.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolationCode {
			repo.Log.Warn("usuarioPostgresRepository.Create duplicate email",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, usuario.Email),
			)
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		repo.Log.Error("usuarioPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("usuarioPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUsuarioIDKey, usuario.ID),
	)
	return usuario, nil
}

func (repo *usuarioPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("usuarioPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	var usuario models.Usuario
	err := repo.DB.QueryRowContext(ctx, queries.SelectUsuarioByEmail, email).Scan(
		&usuario.ID,
		&usuario.Nome,
		&usuario.Email,
		&usuario.SenhaHash,
		&usuario.CRM,
		&usuario.Instituicao,
		&usuario.Telefone,
		&usuario.Especialidade,
		&usuario.CreatedAt,
	)
	if err == sql.ErrNoRows {
		repo.Log.Warn("usuarioPostgresRepository.FindByEmail no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("usuarioPostgresRepository.FindByEmail error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &usuario, nil
}

func (repo *usuarioPostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountUsuariosByEmail, email).Scan(&total)
	if err != nil {
		repo.Log.Error("usuarioPostgresRepository.ExistsByEmail error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return total > 0, nil
}
