package responses

type RelatorioQuestao struct {
	QuestaoID int64          `json:"questao_id"`
	Descricao string         `json:"descricao"`
	Tipo      string         `json:"tipo"`
	Relatorio map[string]int `json:"relatorio"`
	Mensagem  string         `json:"mensagem,omitempty"`
}
