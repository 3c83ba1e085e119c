package queries

const (
	InsertAlternativa = `
		INSERT INTO alternativa (questao_id, descricao)
		VALUES ($1, $2)
		RETURNING id
	`

	SelectAlternativasByFormularioID = `
		SELECT a.id, a.questao_id, a.descricao
		FROM alternativa a
		JOIN questao q ON q.id = a.questao_id
		WHERE q.formulario_id = $1
		ORDER BY a.questao_id, a.id
	`

	UpdateAlternativaDescricao = `
		UPDATE alternativa SET descricao = $1 WHERE id = $2 AND questao_id = $3
	`

	DeleteAlternativaByID = `
		DELETE FROM alternativa WHERE id = $1 AND questao_id = $2
	`

	DeleteAlternativasByQuestaoID = `
		DELETE FROM alternativa WHERE questao_id = $1
	`

	DeleteAlternativasByFormularioID = `
		DELETE FROM alternativa
		WHERE questao_id IN (SELECT id FROM questao WHERE formulario_id = $1)
	`
)
