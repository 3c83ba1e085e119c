package queries

const (
	InsertResposta = `
		INSERT INTO resposta (questao_id, alternativa_id, respondente_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	SelectRespostaCountsByQuestaoID = `
		SELECT a.id, a.descricao, COUNT(r.id)
		FROM alternativa a
		LEFT JOIN resposta r ON r.alternativa_id = a.id
		WHERE a.questao_id = $1
		GROUP BY a.id, a.descricao
		ORDER BY a.id
	`

	DeleteRespostasByQuestaoID = `
		DELETE FROM resposta WHERE questao_id = $1
	`

	DeleteRespostasByAlternativaID = `
		DELETE FROM resposta WHERE alternativa_id = $1
	`

	DeleteRespostasByFormularioID = `
		DELETE FROM resposta
		WHERE questao_id IN (SELECT id FROM questao WHERE formulario_id = $1)
	`
)
