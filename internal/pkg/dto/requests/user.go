package requests

type RegisterUsuario struct {
	Nome          string `json:"nome" validate:"required,min=3,max=255"`
	Email         string `json:"email" validate:"required,email"`
	Senha         string `json:"senha" validate:"required,min=6"`
	CRM           string `json:"crm" validate:"omitempty,max=20"`
	Instituicao   string `json:"instituicao" validate:"omitempty,max=255"`
	Telefone      string `json:"telefone" validate:"omitempty,max=20"`
	Especialidade string `json:"especialidade" validate:"omitempty,max=255"`
}
