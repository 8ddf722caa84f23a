package interfaces

import (
	"context"

	"ocorrencias_logistica/internal/domain/entities"
)

// IExpedicaoRepository abstracts the EXPEDICAO tab.

type IExpedicaoRepository interface {
	List(ctx context.Context) ([]entities.Expedicao, error)
	GetByID(ctx context.Context, id string) (entities.Expedicao, error)
	Create(ctx context.Context, e entities.Expedicao) (entities.Expedicao, error)
	Update(ctx context.Context, e entities.Expedicao) (found bool, err error)
}
