package utils

import (
	"infomed-service/internal/pkg/dto/requests"
	"strings"
)

func trimStringPointer(input *string) {
	if input != nil {
		*input = strings.TrimSpace(*input)
	}
}

func SanitizeCreateFormularioRequest(input *requests.CreateFormulario) {
	input.Titulo = strings.TrimSpace(input.Titulo)
	input.Descricao = strings.TrimSpace(input.Descricao)
	for i := range input.Questoes {
		input.Questoes[i].Descricao = strings.TrimSpace(input.Questoes[i].Descricao)
		input.Questoes[i].Tipo = strings.TrimSpace(strings.ToLower(input.Questoes[i].Tipo))
		for j := range input.Questoes[i].Alternativas {
			input.Questoes[i].Alternativas[j].Descricao = strings.TrimSpace(input.Questoes[i].Alternativas[j].Descricao)
		}
	}
}

func SanitizeUpdateFormularioRequest(input *requests.UpdateFormulario) {
	trimStringPointer(input.Titulo)
	trimStringPointer(input.Descricao)
	for i := range input.Questoes {
		input.Questoes[i].Action = strings.TrimSpace(strings.ToLower(input.Questoes[i].Action))
		trimStringPointer(input.Questoes[i].Descricao)
		if input.Questoes[i].Tipo != nil {
			*input.Questoes[i].Tipo = strings.TrimSpace(strings.ToLower(*input.Questoes[i].Tipo))
		}
		for j := range input.Questoes[i].Alternativas {
			input.Questoes[i].Alternativas[j].Action = strings.TrimSpace(strings.ToLower(input.Questoes[i].Alternativas[j].Action))
			trimStringPointer(input.Questoes[i].Alternativas[j].Descricao)
		}
	}
}

func SanitizeCreateRespostasRequest(input *requests.CreateRespostas) {
	input.RespondenteID = strings.TrimSpace(input.RespondenteID)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Senha = strings.TrimSpace(input.Senha)
}

func SanitizeRegisterUsuarioRequest(input *requests.RegisterUsuario) {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Senha = strings.TrimSpace(input.Senha)
	input.CRM = strings.TrimSpace(input.CRM)
	input.Instituicao = strings.TrimSpace(input.Instituicao)
	input.Telefone = strings.TrimSpace(input.Telefone)
	input.Especialidade = strings.TrimSpace(input.Especialidade)
}
