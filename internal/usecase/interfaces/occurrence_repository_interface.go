package interfaces

import (
	"context"

	"ocorrencias_logistica/internal/domain/entities"
)

// IOccurrenceRepository abstracts the branch tabs holding occurrences.
//
// Lookups by id return a zero Occurrence (empty ID) when nothing matches.
// Update and Delete report found=false the same way, leaving the not-found
// decision to the use case.

type IOccurrenceRepository interface {
	List(ctx context.Context, branch entities.Branch) ([]entities.Occurrence, error)
	GetByID(ctx context.Context, branch entities.Branch, id string) (entities.Occurrence, error)
	Create(ctx context.Context, branch entities.Branch, o entities.Occurrence) (entities.Occurrence, error)
	Update(ctx context.Context, branch entities.Branch, o entities.Occurrence) (found bool, err error)
	Delete(ctx context.Context, branch entities.Branch, id string) (found bool, err error)
}
