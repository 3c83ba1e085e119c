package relatorios

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

type relatorioPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	relatorioPostgresRepositoryInstance contracts.RelatorioRepository
	onceRelatorioPostgresRepository     sync.Once
)

func NewRelatorioPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RelatorioRepository {
	onceRelatorioPostgresRepository.Do(func() {
		relatorioPostgresRepositoryInstance = &relatorioPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return relatorioPostgresRepositoryInstance
}

func (repo *relatorioPostgresRepository) FindQuestaoByID(ctx context.Context, questaoID int64) (*models.Questao, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("relatorioPostgresRepository.FindQuestaoByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
	)

	var questao models.Questao
	err := repo.DB.QueryRowContext(ctx, queries.SelectQuestaoByID, questaoID).
		Scan(&questao.ID, &questao.FormularioID, &questao.Descricao, &questao.Tipo)
	if err == sql.ErrNoRows {
		repo.Log.Warn("relatorioPostgresRepository.FindQuestaoByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("relatorioPostgresRepository.FindQuestaoByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &questao, nil
}

func (repo *relatorioPostgresRepository) CountRespostasByQuestaoID(ctx context.Context, questaoID int64) ([]contracts.AlternativaCount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("relatorioPostgresRepository.CountRespostasByQuestaoID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.SelectRespostaCountsByQuestaoID, questaoID)
	if err != nil {
		repo.Log.Error("relatorioPostgresRepository.CountRespostasByQuestaoID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var counts []contracts.AlternativaCount
	for rows.Next() {
		var count contracts.AlternativaCount
		if err := rows.Scan(&count.AlternativaID, &count.Descricao, &count.Total); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateData(err)
	}

	repo.Log.Info("relatorioPostgresRepository.CountRespostasByQuestaoID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingQuestaoIDKey, questaoID),
		zap.Int(constvars.LoggingCountKey, len(counts)),
	)
	return counts, nil
}
