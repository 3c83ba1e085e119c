package models

import "time"

type Formulario struct {
	ID        int64     `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Questao struct {
	ID           int64  `json:"id"`
	FormularioID int64  `json:"formulario_id"`
	Descricao    string `json:"descricao"`
	Tipo         string `json:"tipo"`
}

type Alternativa struct {
	ID        int64  `json:"id"`
	QuestaoID int64  `json:"questao_id"`
	Descricao string `json:"descricao"`
}

// QuestaoCompleta is a questão with its alternativas attached, the shape the
// aggregate reads return.
type QuestaoCompleta struct {
	Questao
	Alternativas []Alternativa `json:"alternativas"`
}

type FormularioCompleto struct {
	Formulario
	Questoes []QuestaoCompleta `json:"questoes"`
}

// FormularioPatch carries the optional form fields of a partial update. Nil
// means the field was absent from the payload and keeps its stored value.
type FormularioPatch struct {
	Titulo    *string
	Descricao *string
}

func (p FormularioPatch) IsEmpty() bool {
	return p.Titulo == nil && p.Descricao == nil
}

type QuestaoPatch struct {
	Descricao *string
	Tipo      *string
}

func (p QuestaoPatch) IsEmpty() bool {
	return p.Descricao == nil && p.Tipo == nil
}
