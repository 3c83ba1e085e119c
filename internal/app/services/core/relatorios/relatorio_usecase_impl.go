package relatorios

import (
	"context"
	"infomed-service/internal/app/contracts"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/dto/responses"
	"infomed-service/internal/pkg/exceptions"
)

const (
	mensagemQuestaoTexto    = "Questões do tipo texto não possuem alternativas para tabulação."
	mensagemSemAlternativas = "Esta questão não possui alternativas cadastradas."
)

type relatorioUsecase struct {
	RelatorioRepository contracts.RelatorioRepository
}

func NewRelatorioUsecase(relatorioPostgresRepository contracts.RelatorioRepository) contracts.RelatorioUsecase {
	return &relatorioUsecase{
		RelatorioRepository: relatorioPostgresRepository,
	}
}

func (uc *relatorioUsecase) TallyByQuestaoID(ctx context.Context, questaoID int64) (*responses.RelatorioQuestao, error) {
	questao, err := uc.RelatorioRepository.FindQuestaoByID(ctx, questaoID)
	if err != nil {
		return nil, err
	}
	if questao == nil {
		return nil, exceptions.ErrQuestaoNotFound(nil)
	}

	relatorio := &responses.RelatorioQuestao{
		QuestaoID: questao.ID,
		Descricao: questao.Descricao,
		Tipo:      questao.Tipo,
		Relatorio: map[string]int{},
	}

	if questao.Tipo == constvars.QuestaoTipoTexto {
		relatorio.Mensagem = mensagemQuestaoTexto
		return relatorio, nil
	}

	counts, err := uc.RelatorioRepository.CountRespostasByQuestaoID(ctx, questaoID)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		relatorio.Mensagem = mensagemSemAlternativas
		return relatorio, nil
	}

	for _, count := range counts {
		relatorio.Relatorio[count.Descricao] = count.Total
	}
	return relatorio, nil
}
