package response

import (
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/tracking"
)

// ExpedicaoResponse adds how long the invoice waited: from dataNota until it
// left, or until now while it is still in the yard.
type ExpedicaoResponse struct {
	entities.Expedicao
	TrackingLabel string `json:"trackingLabel"`
}

func FromExpedicao(e entities.Expedicao, now time.Time) ExpedicaoResponse {
	end := ""
	if len(e.DataExpedicao) >= len(entities.DateLayout) {
		end = e.DataExpedicao[:len(entities.DateLayout)]
	}
	return ExpedicaoResponse{
		Expedicao:     e,
		TrackingLabel: tracking.Format(tracking.Since(e.DataNota, end, now)),
	}
}

func FromExpedicoes(list []entities.Expedicao, now time.Time) []ExpedicaoResponse {
	out := make([]ExpedicaoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromExpedicao(e, now))
	}
	return out
}

// ExpedicaoStatusResponse answers PATCH /api/expedicao/{id}.
type ExpedicaoStatusResponse struct {
	ID     string                   `json:"id"`
	Status entities.ExpedicaoStatus `json:"status"`
}
