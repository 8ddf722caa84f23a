package interfaces

import (
	"io"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
)

// IRomaneioRenderer writes the dispatch manifest of a batch of invoices.
type IRomaneioRenderer interface {
	Render(w io.Writer, items []entities.Expedicao, generatedAt time.Time) error
}
