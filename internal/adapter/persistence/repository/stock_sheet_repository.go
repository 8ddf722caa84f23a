package repository

import (
	"context"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/infrastructure/sheets"
	"ocorrencias_logistica/internal/usecase/interfaces"
)

// StockSheetRepository reads the SALDO tab.
type StockSheetRepository struct {
	store sheets.Store
	tab   string
}

var _ interfaces.IStockRepository = (*StockSheetRepository)(nil)

func NewStockSheetRepository(store sheets.Store, tab string) *StockSheetRepository {
	return &StockSheetRepository{store: store, tab: tab}
}

func (r *StockSheetRepository) EnsureTab(ctx context.Context) error {
	return r.store.EnsureSheet(ctx, r.tab, StockHeader)
}

func (r *StockSheetRepository) List(ctx context.Context) ([]entities.Stock, error) {
	rows, err := r.store.Rows(ctx, r.tab)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Stock, 0, len(rows))
	for _, row := range rows {
		if s, ok := decodeStockRow(row); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
