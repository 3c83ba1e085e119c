package respostas

import (
	"context"
	"database/sql"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type respostaPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	respostaPostgresRepositoryInstance contracts.RespostaRepository
	onceRespostaPostgresRepository     sync.Once
)

func NewRespostaPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RespostaRepository {
	onceRespostaPostgresRepository.Do(func() {
		respostaPostgresRepositoryInstance = &respostaPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return respostaPostgresRepositoryInstance
}

func (repo *respostaPostgresRepository) CreateAll(ctx context.Context, respostas []models.Resposta) ([]models.Resposta, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("respostaPostgresRepository.CreateAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(respostas)),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	for i := range respostas {
		err := tx.QueryRowContext(ctx, queries.InsertResposta,
			respostas[i].QuestaoID,
			respostas[i].AlternativaID,
			respostas[i].RespondenteID,
		).Scan(&respostas[i].ID, &respostas[i].CreatedAt)
		if err != nil {
			repo.Log.Error("respostaPostgresRepository.CreateAll error inserting resposta",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingQuestaoIDKey, respostas[i].QuestaoID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("respostaPostgresRepository.CreateAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(respostas)),
	)
	return respostas, nil
}
