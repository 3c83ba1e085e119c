package constvars

const (
	// Generic messages
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Formulario messages
	GetFormulariosSuccessMessage   = "Formulários recuperados com sucesso"
	GetFormularioSuccessMessage    = "Formulário recuperado com sucesso"
	CreateFormularioSuccessMessage = "Formulário criado com sucesso"
	UpdateFormularioSuccessMessage = "Formulário atualizado com sucesso"
	DeleteFormularioSuccessMessage = "Formulário deletado com sucesso"

	// Resposta messages
	CreateRespostasSuccessMessage = "Respostas registradas com sucesso"

	// Relatorio messages
	GetRelatorioSuccessMessage = "Relatório gerado com sucesso"

	// Usuario messages
	CreateUsuarioSuccessMessage = "Usuário cadastrado com sucesso"

	// Auth messages
	LoginSuccessMessage  = "Login bem-sucedido!"
	LogoutSuccessMessage = "Logout realizado com sucesso"
)
