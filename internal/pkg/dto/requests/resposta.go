package requests

type CreateRespostas struct {
	RespondenteID string            `json:"respondente_id" validate:"omitempty,max=255"`
	Respostas     []RespostaQuestao `json:"respostas" validate:"required,min=1,dive"`
}

type RespostaQuestao struct {
	QuestaoID     int64 `json:"questao_id" validate:"required,gt=0"`
	AlternativaID int64 `json:"alternativa_id" validate:"required,gt=0"`
}
