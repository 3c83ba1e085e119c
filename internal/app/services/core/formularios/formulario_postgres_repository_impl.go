package formularios

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

// The alternativa table carries UNIQUE (questao_id, descricao); the rules
// tier rejects duplicates first, the constraint catches concurrent writers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolationCode
}

type formularioPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	formularioPostgresRepositoryInstance contracts.FormularioRepository
	onceFormularioPostgresRepository     sync.Once
)

func NewFormularioPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.FormularioRepository {
	onceFormularioPostgresRepository.Do(func() {
		formularioPostgresRepositoryInstance = &formularioPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return formularioPostgresRepositoryInstance
}

func (repo *formularioPostgresRepository) FindAll(ctx context.Context) ([]models.Formulario, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("formularioPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.SelectFormularios)
	if err != nil {
		repo.Log.Error("formularioPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var formularios []models.Formulario
	for rows.Next() {
		var model models.Formulario
		if err := rows.Scan(&model.ID, &model.Titulo, &model.Descricao, &model.CreatedAt, &model.UpdatedAt); err != nil {
			repo.Log.Error("formularioPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		formularios = append(formularios, model)
	}
	if err := rows.Err(); err != nil {
		repo.Log.Error("formularioPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateData(err)
	}

	repo.Log.Info("formularioPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(formularios)),
	)
	return formularios, nil
}

func (repo *formularioPostgresRepository) FindByID(ctx context.Context, formularioID int64) (*models.Formulario, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("formularioPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
	)

	var formulario models.Formulario
	err := repo.DB.QueryRowContext(ctx, queries.SelectFormularioByID, formularioID).
		Scan(&formulario.ID, &formulario.Titulo, &formulario.Descricao, &formulario.CreatedAt, &formulario.UpdatedAt)
	if err == sql.ErrNoRows {
		repo.Log.Warn("formularioPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("formularioPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &formulario, nil
}

func (repo *formularioPostgresRepository) FindCompleteByID(ctx context.Context, formularioID int64) (*models.FormularioCompleto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	formulario, err := repo.FindByID(ctx, formularioID)
	if err != nil || formulario == nil {
		return nil, err
	}

	questaoRows, err := repo.DB.QueryContext(ctx, queries.SelectQuestoesByFormularioID, formularioID)
	if err != nil {
		repo.Log.Error("formularioPostgresRepository.FindCompleteByID error querying questoes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer questaoRows.Close()

	completo := &models.FormularioCompleto{Formulario: *formulario}
	questaoIndexByID := make(map[int64]int)
	for questaoRows.Next() {
		var questao models.Questao
		if err := questaoRows.Scan(&questao.ID, &questao.FormularioID, &questao.Descricao, &questao.Tipo); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		questaoIndexByID[questao.ID] = len(completo.Questoes)
		completo.Questoes = append(completo.Questoes, models.QuestaoCompleta{
			Questao:      questao,
			Alternativas: []models.Alternativa{},
		})
	}
	if err := questaoRows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateData(err)
	}

	alternativaRows, err := repo.DB.QueryContext(ctx, queries.SelectAlternativasByFormularioID, formularioID)
	if err != nil {
		repo.Log.Error("formularioPostgresRepository.FindCompleteByID error querying alternativas",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer alternativaRows.Close()

	for alternativaRows.Next() {
		var alternativa models.Alternativa
		if err := alternativaRows.Scan(&alternativa.ID, &alternativa.QuestaoID, &alternativa.Descricao); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		if idx, found := questaoIndexByID[alternativa.QuestaoID]; found {
			completo.Questoes[idx].Alternativas = append(completo.Questoes[idx].Alternativas, alternativa)
		}
	}
	if err := alternativaRows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateData(err)
	}

	if completo.Questoes == nil {
		completo.Questoes = []models.QuestaoCompleta{}
	}
	return completo, nil
}

func (repo *formularioPostgresRepository) Create(ctx context.Context, formulario *models.Formulario, questoes []models.CreateQuestaoOp) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("formularioPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, queries.InsertFormulario, formulario.Titulo, formulario.Descricao).
		Scan(&formulario.ID, &formulario.CreatedAt, &formulario.UpdatedAt)
	if err != nil {
		repo.Log.Error("formularioPostgresRepository.Create error inserting formulario",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	for _, questao := range questoes {
		if err := insertQuestao(ctx, tx, formulario.ID, questao); err != nil {
			repo.Log.Error("formularioPostgresRepository.Create error inserting questao",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingFormularioIDKey, formulario.ID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("formularioPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formulario.ID),
	)
	return formulario.ID, nil
}

func (repo *formularioPostgresRepository) Update(ctx context.Context, formularioID int64, update *models.FormularioUpdate) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("formularioPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	var fields []queries.PatchField
	if update.Patch.Titulo != nil {
		fields = append(fields, queries.PatchField{Column: "titulo", Value: *update.Patch.Titulo})
	}
	if update.Patch.Descricao != nil {
		fields = append(fields, queries.PatchField{Column: "descricao", Value: *update.Patch.Descricao})
	}
	if query, args, ok := queries.BuildUpdateQuery("formulario", fields, "id", formularioID); ok {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			repo.Log.Error("formularioPostgresRepository.Update error patching formulario",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
				zap.Error(err),
			)
			return exceptions.ErrPostgresDBUpdateData(err)
		}
	}

	for _, op := range update.Questoes {
		if err := applyQuestaoOp(ctx, tx, formularioID, op); err != nil {
			repo.Log.Error("formularioPostgresRepository.Update error applying questao op",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
				zap.Error(err),
			)
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, queries.TouchFormularioUpdatedAt, formularioID); err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("formularioPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
	)
	return nil
}

func (repo *formularioPostgresRepository) Delete(ctx context.Context, formularioID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("formularioPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
	)

	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	// Children first, the schema has no ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, queries.DeleteRespostasByFormularioID, formularioID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if _, err := tx.ExecContext(ctx, queries.DeleteAlternativasByFormularioID, formularioID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if _, err := tx.ExecContext(ctx, queries.DeleteQuestoesByFormularioID, formularioID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if _, err := tx.ExecContext(ctx, queries.DeleteFormularioByID, formularioID); err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	if err := tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("formularioPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFormularioIDKey, formularioID),
	)
	return nil
}

func insertQuestao(ctx context.Context, tx *sql.Tx, formularioID int64, op models.CreateQuestaoOp) error {
	var questaoID int64
	err := tx.QueryRowContext(ctx, queries.InsertQuestao, formularioID, op.Descricao, op.Tipo).Scan(&questaoID)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}

	for _, descricao := range op.Alternativas {
		var alternativaID int64
		if err := tx.QueryRowContext(ctx, queries.InsertAlternativa, questaoID, descricao).Scan(&alternativaID); err != nil {
			if isUniqueViolation(err) {
				return exceptions.ErrBusinessRuleValidation(ruleAlternativasDuplicadas)
			}
			return exceptions.ErrPostgresDBInsertData(err)
		}
	}
	return nil
}

func applyQuestaoOp(ctx context.Context, tx *sql.Tx, formularioID int64, op models.QuestaoOp) error {
	switch questaoOp := op.(type) {
	case models.CreateQuestaoOp:
		return insertQuestao(ctx, tx, formularioID, questaoOp)

	case models.UpdateQuestaoOp:
		var fields []queries.PatchField
		if questaoOp.Patch.Descricao != nil {
			fields = append(fields, queries.PatchField{Column: "descricao", Value: *questaoOp.Patch.Descricao})
		}
		if questaoOp.Patch.Tipo != nil {
			fields = append(fields, queries.PatchField{Column: "tipo", Value: *questaoOp.Patch.Tipo})
		}
		if query, args, ok := queries.BuildUpdateQuery("questao", fields, "id", questaoOp.ID); ok {
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return exceptions.ErrPostgresDBUpdateData(err)
			}
		}
		for _, alternativaOp := range questaoOp.Alternativas {
			if err := applyAlternativaOp(ctx, tx, questaoOp.ID, alternativaOp); err != nil {
				return err
			}
		}
		return nil

	case models.DeleteQuestaoOp:
		if _, err := tx.ExecContext(ctx, queries.DeleteRespostasByQuestaoID, questaoOp.ID); err != nil {
			return exceptions.ErrPostgresDBDeleteData(err)
		}
		if _, err := tx.ExecContext(ctx, queries.DeleteAlternativasByQuestaoID, questaoOp.ID); err != nil {
			return exceptions.ErrPostgresDBDeleteData(err)
		}
		if _, err := tx.ExecContext(ctx, queries.DeleteQuestaoByID, questaoOp.ID, formularioID); err != nil {
			return exceptions.ErrPostgresDBDeleteData(err)
		}
		return nil
	}
	return exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUnknownQuestaoAction)
}

func applyAlternativaOp(ctx context.Context, tx *sql.Tx, questaoID int64, op models.AlternativaOp) error {
	switch alternativaOp := op.(type) {
	case models.CreateAlternativaOp:
		var alternativaID int64
		if err := tx.QueryRowContext(ctx, queries.InsertAlternativa, questaoID, alternativaOp.Descricao).Scan(&alternativaID); err != nil {
			if isUniqueViolation(err) {
				return exceptions.ErrBusinessRuleValidation(ruleAlternativasDuplicadas)
			}
			return exceptions.ErrPostgresDBInsertData(err)
		}
		return nil

	case models.UpdateAlternativaOp:
		if _, err := tx.ExecContext(ctx, queries.UpdateAlternativaDescricao, alternativaOp.Descricao, alternativaOp.ID, questaoID); err != nil {
			if isUniqueViolation(err) {
				return exceptions.ErrBusinessRuleValidation(ruleAlternativasDuplicadas)
			}
			return exceptions.ErrPostgresDBUpdateData(err)
		}
		return nil

	case models.DeleteAlternativaOp:
		if _, err := tx.ExecContext(ctx, queries.DeleteRespostasByAlternativaID, alternativaOp.ID); err != nil {
			return exceptions.ErrPostgresDBDeleteData(err)
		}
		if _, err := tx.ExecContext(ctx, queries.DeleteAlternativaByID, alternativaOp.ID, questaoID); err != nil {
			return exceptions.ErrPostgresDBDeleteData(err)
		}
		return nil
	}
	return exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUnknownQuestaoAction)
}
