package contracts

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/dto/responses"
)

type RelatorioUsecase interface {
	TallyByQuestaoID(ctx context.Context, questaoID int64) (*responses.RelatorioQuestao, error)
}

// AlternativaCount is one row of the per-alternative tally read.
type AlternativaCount struct {
	AlternativaID int64
	Descricao     string
	Total         int
}

type RelatorioRepository interface {
	FindQuestaoByID(ctx context.Context, questaoID int64) (*models.Questao, error)
	CountRespostasByQuestaoID(ctx context.Context, questaoID int64) ([]AlternativaCount, error)
}
