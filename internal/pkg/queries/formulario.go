package queries

const (
	InsertFormulario = `
		INSERT INTO formulario (titulo, descricao, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	SelectFormularios = `
		SELECT id, titulo, descricao, created_at, updated_at
		FROM formulario
		ORDER BY created_at DESC
	`

	SelectFormularioByID = `
		SELECT id, titulo, descricao, created_at, updated_at
		FROM formulario
		WHERE id = $1
	`

	TouchFormularioUpdatedAt = `
		UPDATE formulario SET updated_at = NOW() WHERE id = $1
	`

	DeleteFormularioByID = `
		DELETE FROM formulario WHERE id = $1
	`
)
