package repository

import (
	"context"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/infrastructure/sheets"
	"ocorrencias_logistica/internal/usecase/interfaces"
)

// ExpedicaoSheetRepository persists dispatch records in a single tab.
type ExpedicaoSheetRepository struct {
	store sheets.Store
	tab   string
}

var _ interfaces.IExpedicaoRepository = (*ExpedicaoSheetRepository)(nil)

func NewExpedicaoSheetRepository(store sheets.Store, tab string) *ExpedicaoSheetRepository {
	return &ExpedicaoSheetRepository{store: store, tab: tab}
}

func (r *ExpedicaoSheetRepository) EnsureTab(ctx context.Context) error {
	return r.store.EnsureSheet(ctx, r.tab, ExpedicaoHeader)
}

func (r *ExpedicaoSheetRepository) List(ctx context.Context) ([]entities.Expedicao, error) {
	rows, err := r.store.Rows(ctx, r.tab)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Expedicao, 0, len(rows))
	for _, row := range rows {
		if e, ok := decodeExpedicaoRow(row); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ExpedicaoSheetRepository) GetByID(ctx context.Context, id string) (entities.Expedicao, error) {
	rows, err := r.store.Rows(ctx, r.tab)
	if err != nil {
		return entities.Expedicao{}, err
	}
	i := locateByID(rows, id)
	if i < 0 {
		return entities.Expedicao{}, nil
	}
	e, ok := decodeExpedicaoRow(rows[i])
	if !ok {
		return entities.Expedicao{}, nil
	}
	return e, nil
}

func (r *ExpedicaoSheetRepository) Create(ctx context.Context, e entities.Expedicao) (entities.Expedicao, error) {
	if err := r.store.Append(ctx, r.tab, encodeExpedicaoRow(e)); err != nil {
		return entities.Expedicao{}, err
	}
	return e, nil
}

func (r *ExpedicaoSheetRepository) Update(ctx context.Context, e entities.Expedicao) (bool, error) {
	rows, err := r.store.Rows(ctx, r.tab)
	if err != nil {
		return false, err
	}
	i := locateByID(rows, e.ID)
	if i < 0 {
		return false, nil
	}
	if err := r.store.Update(ctx, r.tab, i, encodeExpedicaoRow(e)); err != nil {
		return false, err
	}
	return true, nil
}
