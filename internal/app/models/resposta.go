package models

import "time"

type Resposta struct {
	ID            int64     `json:"id"`
	QuestaoID     int64     `json:"questao_id"`
	AlternativaID int64     `json:"alternativa_id"`
	RespondenteID string    `json:"respondente_id"`
	CreatedAt     time.Time `json:"created_at"`
}
