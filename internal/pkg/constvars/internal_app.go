package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	QuestaoTipoTexto    = "texto"
	QuestaoTipoRadio    = "radio"
	QuestaoTipoCheckbox = "checkbox"
)

const (
	QuestaoActionCreate = "create"
	QuestaoActionUpdate = "update"
	QuestaoActionDelete = "delete"
)

const (
	MinAlternativasPerQuestao = 2
	MaxQuestaoDescricaoLength = 1000
)

const (
	RedisKeyFormularioList = "infomed:formularios:list"
	RedisKeySessionPrefix  = "infomed:session:"
)
