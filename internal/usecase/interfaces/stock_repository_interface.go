package interfaces

import (
	"context"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
)

// IStockRepository reads the SALDO snapshot. It has no write side.
type IStockRepository interface {
	List(ctx context.Context) ([]entities.Stock, error)
}

// IStockCache keeps a short-lived copy of the SALDO snapshot. A miss is
// (nil, false, nil); errors are reported so callers can log and fall through.
type IStockCache interface {
	Get(ctx context.Context) ([]entities.Stock, bool, error)
	Set(ctx context.Context, rows []entities.Stock, ttl time.Duration) error
}
