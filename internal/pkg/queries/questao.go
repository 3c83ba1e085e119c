package queries

const (
	InsertQuestao = `
		INSERT INTO questao (formulario_id, descricao, tipo)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	SelectQuestoesByFormularioID = `
		SELECT id, formulario_id, descricao, tipo
		FROM questao
		WHERE formulario_id = $1
		ORDER BY id
	`

	SelectQuestaoByID = `
		SELECT id, formulario_id, descricao, tipo
		FROM questao
		WHERE id = $1
	`

	DeleteQuestaoByID = `
		DELETE FROM questao WHERE id = $1 AND formulario_id = $2
	`

	DeleteQuestoesByFormularioID = `
		DELETE FROM questao WHERE formulario_id = $1
	`
)
