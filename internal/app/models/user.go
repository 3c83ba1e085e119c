package models

import "time"

type Usuario struct {
	ID            int64     `json:"id"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	SenhaHash     string    `json:"-"`
	CRM           string    `json:"crm,omitempty"`
	Instituicao   string    `json:"instituicao,omitempty"`
	Telefone      string    `json:"telefone,omitempty"`
	Especialidade string    `json:"especialidade,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
