package requests

type CreateFormulario struct {
	Titulo    string          `json:"titulo" validate:"required,min=3,max=255"`
	Descricao string          `json:"descricao" validate:"omitempty,max=1000"`
	Questoes  []CreateQuestao `json:"questoes" validate:"required,min=1,dive"`
}

type CreateQuestao struct {
	Descricao    string              `json:"descricao" validate:"required,min=3,max=1000"`
	Tipo         string              `json:"tipo" validate:"required,oneof=texto radio checkbox"`
	Alternativas []CreateAlternativa `json:"alternativas" validate:"omitempty,dive"`
}

type CreateAlternativa struct {
	Descricao string `json:"descricao" validate:"required,min=1,max=500"`
}

// UpdateFormulario is the tagged-diff PUT payload. Form fields are optional;
// each questão entry names its own action.
type UpdateFormulario struct {
	Titulo    *string         `json:"titulo" validate:"omitempty,min=3,max=255"`
	Descricao *string         `json:"descricao" validate:"omitempty,max=1000"`
	Questoes  []UpdateQuestao `json:"questoes" validate:"omitempty,dive"`
}

type UpdateQuestao struct {
	Action       string              `json:"_action" validate:"required,oneof=create update delete"`
	ID           int64               `json:"id" validate:"omitempty,gt=0"`
	Descricao    *string             `json:"descricao" validate:"omitempty,min=3,max=1000"`
	Tipo         *string             `json:"tipo" validate:"omitempty,oneof=texto radio checkbox"`
	Alternativas []UpdateAlternativa `json:"alternativas" validate:"omitempty,dive"`
}

type UpdateAlternativa struct {
	Action    string  `json:"_action" validate:"required,oneof=create update delete"`
	ID        int64   `json:"id" validate:"omitempty,gt=0"`
	Descricao *string `json:"descricao" validate:"omitempty,min=1,max=500"`
}
