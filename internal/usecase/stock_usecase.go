package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// IStockUseCase answers the SALDO lookups. An empty EAN query matches
// nothing and never touches the store.

type IStockUseCase interface {
	Search(ctx context.Context, ean string) ([]entities.Stock, error)
	Summary(ctx context.Context, ean string) ([]entities.StockSummary, error)
}

type StockUseCase struct {
	repo  interfaces.IStockRepository
	cache interfaces.IStockCache
	ttl   time.Duration
}

var _ IStockUseCase = (*StockUseCase)(nil)

// NewStockUseCase accepts a nil cache.
func NewStockUseCase(repo interfaces.IStockRepository, cache interfaces.IStockCache, ttl time.Duration) *StockUseCase {
	return &StockUseCase{repo: repo, cache: cache, ttl: ttl}
}

// Search returns the rows whose EAN13 contains ean.
func (u *StockUseCase) Search(ctx context.Context, ean string) ([]entities.Stock, error) {
	ean = strings.TrimSpace(ean)
	if ean == "" {
		return []entities.Stock{}, nil
	}
	rows, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []entities.Stock{}
	for _, s := range rows {
		if strings.Contains(s.EAN13, ean) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Summary totals SALDO_ATUAL per EAN over every filial and armazém.
func (u *StockUseCase) Summary(ctx context.Context, ean string) ([]entities.StockSummary, error) {
	rows, err := u.Search(ctx, ean)
	if err != nil {
		return nil, err
	}

	byEAN := make(map[string]*entities.StockSummary)
	for _, s := range rows {
		sum, ok := byEAN[s.EAN13]
		if !ok {
			sum = &entities.StockSummary{EAN13: s.EAN13, CodigoProduto: s.CodigoProduto, Descricao: s.Descricao, SaldoTotal: decimal.Zero}
			byEAN[s.EAN13] = sum
		}
		sum.Armazens++
		saldo, err := parseSaldo(s.SaldoAtual)
		if err != nil {
			log.Warn().Str("ean", s.EAN13).Str("saldo", s.SaldoAtual).Msg("unparseable stock balance counted as zero")
			continue
		}
		sum.SaldoTotal = sum.SaldoTotal.Add(saldo)
	}

	out := make([]entities.StockSummary, 0, len(byEAN))
	for _, sum := range byEAN {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EAN13 < out[j].EAN13 })
	return out, nil
}

func (u *StockUseCase) snapshot(ctx context.Context) ([]entities.Stock, error) {
	if u.cache != nil {
		rows, hit, err := u.cache.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("stock cache read failed")
		} else if hit {
			return rows, nil
		}
	}

	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.Set(ctx, rows, u.ttl); err != nil {
			log.Warn().Err(err).Msg("stock cache write failed")
		}
	}
	return rows, nil
}

// parseSaldo accepts "1234.5" as well as the pt-BR "1.234,5".
func parseSaldo(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}
	return decimal.NewFromString(v)
}
