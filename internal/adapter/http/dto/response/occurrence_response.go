package response

import (
	"strconv"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/tracking"
)

// OccurrenceResponse is the stored record plus display-only labels.
type OccurrenceResponse struct {
	entities.Occurrence
	TipoLabel     string `json:"tipoLabel"`
	StatusLabel   string `json:"statusLabel"`
	TrackingLabel string `json:"trackingLabel"`
}

func FromOccurrence(o entities.Occurrence) OccurrenceResponse {
	days, _ := strconv.Atoi(o.Tracking)
	return OccurrenceResponse{
		Occurrence:    o,
		TipoLabel:     entities.OccurrenceTypeLabel(o.Tipo),
		StatusLabel:   string(entities.NormalizeStatus(o.Status)),
		TrackingLabel: tracking.Format(days),
	}
}

func FromOccurrences(list []entities.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOccurrence(o))
	}
	return out
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func Success() SuccessResponse { return SuccessResponse{Success: true} }
