package queries

const (
	InsertUsuario = `
		INSERT INTO usuario (nome, email, senha, crm, instituicao, telefone, especialidade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	SelectUsuarioByEmail = `
		SELECT id, nome, email, senha, crm, instituicao, telefone, especialidade, created_at
		FROM usuario
		WHERE email = $1
	`

	CountUsuariosByEmail = `
		SELECT COUNT(*) FROM usuario WHERE email = $1
	`
)
