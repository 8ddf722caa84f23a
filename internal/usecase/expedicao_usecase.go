package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrExpedicaoNotFound  = errors.New("expedicao not found")
	ErrInvalidExpedicaoID = errors.New("invalid expedicao id")
	ErrEmptyRomaneio      = errors.New("romaneio needs at least one expedicao")
)

// IExpedicaoUseCase drives the dispatch workflow:
//   - POST /api/expedicao         => Create() (always NF DISPONIVEIS)
//   - PATCH /api/expedicao/{id}   => MarkAguardando()
//   - PUT /api/expedicao/{id}     => Dispatch() (driver data, EXPEDIDO)
//   - POST /api/expedicao/romaneio => Romaneio()

type IExpedicaoUseCase interface {
	List(ctx context.Context) ([]entities.Expedicao, error)
	Create(ctx context.Context, form validation.ExpedicaoForm) (entities.Expedicao, error)
	MarkAguardando(ctx context.Context, id string) (entities.Expedicao, error)
	Dispatch(ctx context.Context, id string, form validation.DriverForm) (entities.Expedicao, error)
	Romaneio(ctx context.Context, ids []string, w io.Writer) error
}

type ExpedicaoUseCase struct {
	repo      interfaces.IExpedicaoRepository
	renderer  interfaces.IRomaneioRenderer
	validator *validation.Validator
	now       func() time.Time
}

var _ IExpedicaoUseCase = (*ExpedicaoUseCase)(nil)

func NewExpedicaoUseCase(repo interfaces.IExpedicaoRepository, renderer interfaces.IRomaneioRenderer, v *validation.Validator, now func() time.Time) *ExpedicaoUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExpedicaoUseCase{repo: repo, renderer: renderer, validator: v, now: now}
}

func (u *ExpedicaoUseCase) List(ctx context.Context) ([]entities.Expedicao, error) {
	return u.repo.List(ctx)
}

func (u *ExpedicaoUseCase) Create(ctx context.Context, form validation.ExpedicaoForm) (entities.Expedicao, error) {
	if err := u.validator.Expedicao(&form); err != nil {
		return entities.Expedicao{}, err
	}
	e := entities.NewExpedicao(uuid.NewString(), form.Nota, form.Cliente, form.DataNota, form.Volumes)
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Expedicao{}, err
	}
	log.Info().Str("id", created.ID).Str("nota", created.Nota).Msg("expedicao created")
	return created, nil
}

func (u *ExpedicaoUseCase) MarkAguardando(ctx context.Context, id string) (entities.Expedicao, error) {
	e, err := u.find(ctx, id)
	if err != nil {
		return entities.Expedicao{}, err
	}
	if err := e.MarkAguardando(); err != nil {
		return entities.Expedicao{}, err
	}
	return e, u.write(ctx, e)
}

func (u *ExpedicaoUseCase) Dispatch(ctx context.Context, id string, form validation.DriverForm) (entities.Expedicao, error) {
	if err := u.validator.Driver(&form); err != nil {
		return entities.Expedicao{}, err
	}
	e, err := u.find(ctx, id)
	if err != nil {
		return entities.Expedicao{}, err
	}
	driver := entities.Driver{Nome: form.Motorista, Cpf: form.Cpf, Placa: form.Placa}
	if err := e.MarkExpedido(driver, u.now()); err != nil {
		return entities.Expedicao{}, err
	}
	return e, u.write(ctx, e)
}

// Romaneio renders the manifest of ids in the order given.
func (u *ExpedicaoUseCase) Romaneio(ctx context.Context, ids []string, w io.Writer) error {
	if len(ids) == 0 {
		return ErrEmptyRomaneio
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]entities.Expedicao, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}

	items := make([]entities.Expedicao, 0, len(ids))
	for _, id := range ids {
		e, ok := byID[strings.TrimSpace(id)]
		if !ok {
			return ErrExpedicaoNotFound
		}
		items = append(items, e)
	}
	return u.renderer.Render(w, items, u.now())
}

func (u *ExpedicaoUseCase) find(ctx context.Context, id string) (entities.Expedicao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expedicao{}, ErrInvalidExpedicaoID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expedicao{}, err
	}
	if e.ID == "" {
		return entities.Expedicao{}, ErrExpedicaoNotFound
	}
	return e, nil
}

func (u *ExpedicaoUseCase) write(ctx context.Context, e entities.Expedicao) error {
	found, err := u.repo.Update(ctx, e)
	if err != nil {
		return err
	}
	if !found {
		return ErrExpedicaoNotFound
	}
	log.Info().Str("id", e.ID).Str("status", string(e.Status)).Msg("expedicao updated")
	return nil
}
