package domain

import "time"

// Submission é o artefato isolado de um envio de dataset: o conjunto
// enriquecido pertence exclusivamente a este envio e é reaproveitado nas
// refiltragens sem nova chamada ao serviço de predição.
type Submission struct {
	ID        string           `json:"id"`
	Filename  string           `json:"filename"`
	RowCount  int              `json:"row_count"`
	Records   []EnrichedRecord `json:"records"`
	CreatedAt time.Time        `json:"created_at"`
}

// SubmissionReceipt é a resposta do upload: identifica o envio e já
// devolve os valores de filtro descobertos no dataset.
type SubmissionReceipt struct {
	ID        string        `json:"id"`
	Filename  string        `json:"filename"`
	RowCount  int           `json:"row_count"`
	CreatedAt time.Time     `json:"created_at"`
	Options   FilterOptions `json:"options"`
}
