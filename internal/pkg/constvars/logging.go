package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingFormularioIDKey  = "formulario_id"
	LoggingQuestaoIDKey     = "questao_id"
	LoggingAlternativaIDKey = "alternativa_id"
	LoggingUsuarioIDKey     = "usuario_id"
	LoggingEmailKey         = "email"
	LoggingCountKey         = "count"
)
