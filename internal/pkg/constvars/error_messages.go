package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
	"dive":     "contains invalid items",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "Não foi possível processar a requisição."
	ErrClientSomethingWrongWithApplication = "Erro interno do servidor."
	ErrClientServerLongRespond             = "O servidor demorou muito para responder."
	ErrClientValidationFailed              = "Dados inválidos."
	ErrClientInvalidURLParamID             = "O parâmetro %s deve ser um número inteiro positivo."

	ErrClientFormularioNotFound  = "Formulário não encontrado."
	ErrClientQuestaoNotFound     = "Questão não encontrada."
	ErrClientAlternativaNotFound = "Alternativa não encontrada."
	ErrClientUsuarioNotFound     = "Usuário não encontrado."

	ErrClientEmailAlreadyExists    = "Este email já está cadastrado."
	ErrClientInvalidEmailOrSenha   = "Email ou senha inválidos."
	ErrClientNotLoggedIn           = "Sessão expirada, faça login novamente."
	ErrClientTokenMissing          = "Token de autenticação não fornecido."
	ErrClientBusinessRuleViolation = "Regra de negócio violada: %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevFailedToHashPassword  = "failed to hash password"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUserNotExists         = "user not exists in our system"
	ErrDevRecordNotFound        = "record not found"
	ErrDevUnknownQuestaoAction  = "unknown action tag on questao payload"
	ErrDevActionRequiresID      = "update or delete action requires a positive id"
	ErrDevAlternativaNotInForm  = "alternativa does not belong to the given questao"
	ErrDevQuestaoNotInForm      = "questao does not belong to the given formulario"
	ErrDevEmptyPatch            = "patch contains no fields to update"
	ErrDevBusinessRuleViolation = "business rule violated: %s"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevRequestTimedOut            = "request processing exceeded the deadline"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevDBFailedToInsertRecord   = "failed to insert record into database"
	ErrDevDBFailedToUpdateRecord   = "failed to update record on database"
	ErrDevDBFailedToFindRecord     = "failed when do find record on database"
	ErrDevDBFailedToDeleteRecord   = "failed when do delete record on database"
	ErrDevDBFailedToIterateRecords = "failed when iterating records from database"
	ErrDevDBFailedToBeginTx        = "failed to begin database transaction"
	ErrDevDBFailedToCommitTx       = "failed to commit database transaction"
	ErrDevDBConnectionFailed       = "failed to connect to database"

	// Redis messages
	ErrDevRedisFailedToSetData    = "failed to set data into redis"
	ErrDevRedisFailedToGetData    = "failed to get data from redis"
	ErrDevRedisFailedToDeleteData = "failed to delete data from redis"
)
