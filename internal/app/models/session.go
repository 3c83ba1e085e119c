package models

// Session is the payload stored in redis for one logged-in usuário, keyed by
// the session id carried inside the JWT.
type Session struct {
	UsuarioID     int64  `json:"usuario_id"`
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	CRM           string `json:"crm,omitempty"`
	Especialidade string `json:"especialidade,omitempty"`
}
