package models

// QuestaoOp is one typed operation of a tagged-diff update. The `_action`
// strings of the payload are converted into these values before the
// repository tier runs, so the transaction only ever sees well-formed ops.
type QuestaoOp interface {
	questaoOp()
}

type CreateQuestaoOp struct {
	Descricao    string
	Tipo         string
	Alternativas []string
}

type UpdateQuestaoOp struct {
	ID           int64
	Patch        QuestaoPatch
	Alternativas []AlternativaOp
}

type DeleteQuestaoOp struct {
	ID int64
}

func (CreateQuestaoOp) questaoOp() {}
func (UpdateQuestaoOp) questaoOp() {}
func (DeleteQuestaoOp) questaoOp() {}

type AlternativaOp interface {
	alternativaOp()
}

type CreateAlternativaOp struct {
	Descricao string
}

type UpdateAlternativaOp struct {
	ID        int64
	Descricao string
}

type DeleteAlternativaOp struct {
	ID int64
}

func (CreateAlternativaOp) alternativaOp() {}
func (UpdateAlternativaOp) alternativaOp() {}
func (DeleteAlternativaOp) alternativaOp() {}

// FormularioUpdate is the full typed form of one PUT payload.
type FormularioUpdate struct {
	Patch    FormularioPatch
	Questoes []QuestaoOp
}
