package repository

import (
	"context"
	"fmt"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/infrastructure/sheets"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// OccurrenceSheetRepository persists occurrences, one tab per branch.
//
// Writes locate the row by scanning the id column right before writing; see
// the sheets package for what that means under concurrent edits.

type OccurrenceSheetRepository struct {
	store sheets.Store
	tabs  map[entities.Branch]string
}

var _ interfaces.IOccurrenceRepository = (*OccurrenceSheetRepository)(nil)

func NewOccurrenceSheetRepository(store sheets.Store, tabs map[entities.Branch]string) *OccurrenceSheetRepository {
	return &OccurrenceSheetRepository{store: store, tabs: tabs}
}

// EnsureTabs creates every branch tab that is missing.
func (r *OccurrenceSheetRepository) EnsureTabs(ctx context.Context) error {
	for _, b := range entities.Branches {
		tab, err := r.tab(b)
		if err != nil {
			return err
		}
		if err := r.store.EnsureSheet(ctx, tab, OccurrenceHeader); err != nil {
			return err
		}
	}
	return nil
}

func (r *OccurrenceSheetRepository) List(ctx context.Context, branch entities.Branch) ([]entities.Occurrence, error) {
	tab, err := r.tab(branch)
	if err != nil {
		return nil, err
	}
	rows, err := r.store.Rows(ctx, tab)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Occurrence, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		o, ok := decodeOccurrenceRow(row)
		if !ok {
			skipped++
			continue
		}
		out = append(out, o)
	}
	if skipped > 0 {
		log.Debug().Str("sheet", tab).Int("skipped", skipped).Msg("rows without id or nota ignored")
	}
	return out, nil
}

func (r *OccurrenceSheetRepository) GetByID(ctx context.Context, branch entities.Branch, id string) (entities.Occurrence, error) {
	tab, err := r.tab(branch)
	if err != nil {
		return entities.Occurrence{}, err
	}
	rows, err := r.store.Rows(ctx, tab)
	if err != nil {
		return entities.Occurrence{}, err
	}
	i := locateByID(rows, id)
	if i < 0 {
		return entities.Occurrence{}, nil
	}
	o, ok := decodeOccurrenceRow(rows[i])
	if !ok {
		return entities.Occurrence{}, nil
	}
	return o, nil
}

func (r *OccurrenceSheetRepository) Create(ctx context.Context, branch entities.Branch, o entities.Occurrence) (entities.Occurrence, error) {
	tab, err := r.tab(branch)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if err := r.store.Append(ctx, tab, encodeOccurrenceRow(o)); err != nil {
		return entities.Occurrence{}, err
	}
	return o, nil
}

func (r *OccurrenceSheetRepository) Update(ctx context.Context, branch entities.Branch, o entities.Occurrence) (bool, error) {
	tab, err := r.tab(branch)
	if err != nil {
		return false, err
	}
	rows, err := r.store.Rows(ctx, tab)
	if err != nil {
		return false, err
	}
	i := locateByID(rows, o.ID)
	if i < 0 {
		return false, nil
	}
	if err := r.store.Update(ctx, tab, i, encodeOccurrenceRow(o)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *OccurrenceSheetRepository) Delete(ctx context.Context, branch entities.Branch, id string) (bool, error) {
	tab, err := r.tab(branch)
	if err != nil {
		return false, err
	}
	rows, err := r.store.Rows(ctx, tab)
	if err != nil {
		return false, err
	}
	i := locateByID(rows, id)
	if i < 0 {
		return false, nil
	}
	if err := r.store.Delete(ctx, tab, i); err != nil {
		return false, err
	}
	return true, nil
}

func (r *OccurrenceSheetRepository) tab(branch entities.Branch) (string, error) {
	tab, ok := r.tabs[branch]
	if !ok || tab == "" {
		return "", fmt.Errorf("%w: %s", entities.ErrUnknownBranch, branch)
	}
	return tab, nil
}
