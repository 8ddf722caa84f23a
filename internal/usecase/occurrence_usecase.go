package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/tracking"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrOccurrenceNotFound  = errors.New("occurrence not found")
	ErrInvalidOccurrenceID = errors.New("invalid occurrence id")
)

// IOccurrenceUseCase exposes the occurrence screens' operations.
//
// status and tracking are never taken from the caller: they are recomputed
// from their inputs on every read and right before every write.

type IOccurrenceUseCase interface {
	List(ctx context.Context, branch entities.Branch) ([]entities.Occurrence, error)
	Get(ctx context.Context, branch entities.Branch, id string) (entities.Occurrence, error)
	Create(ctx context.Context, branch entities.Branch, o entities.Occurrence) (entities.Occurrence, error)
	Update(ctx context.Context, branch entities.Branch, id string, apply func(*entities.Occurrence)) (entities.Occurrence, error)
	Delete(ctx context.Context, branch entities.Branch, id string) error
	RegisterRetirada(ctx context.Context, branch entities.Branch, id string, form validation.ReceiverForm) (entities.Occurrence, error)
	Types() []entities.OccurrenceTypeOption
}

type OccurrenceUseCase struct {
	repo      interfaces.IOccurrenceRepository
	validator *validation.Validator
	now       func() time.Time
}

var _ IOccurrenceUseCase = (*OccurrenceUseCase)(nil)

func NewOccurrenceUseCase(repo interfaces.IOccurrenceRepository, v *validation.Validator, now func() time.Time) *OccurrenceUseCase {
	if now == nil {
		now = time.Now
	}
	return &OccurrenceUseCase{repo: repo, validator: v, now: now}
}

func (u *OccurrenceUseCase) List(ctx context.Context, branch entities.Branch) ([]entities.Occurrence, error) {
	list, err := u.repo.List(ctx, branch)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range list {
		derive(&list[i], now)
	}
	return list, nil
}

func (u *OccurrenceUseCase) Get(ctx context.Context, branch entities.Branch, id string) (entities.Occurrence, error) {
	o, err := u.find(ctx, branch, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	derive(&o, u.now())
	return o, nil
}

func (u *OccurrenceUseCase) Create(ctx context.Context, branch entities.Branch, o entities.Occurrence) (entities.Occurrence, error) {
	if err := u.validate(&o); err != nil {
		return entities.Occurrence{}, err
	}
	o.ID = uuid.NewString()
	derive(&o, u.now())

	created, err := u.repo.Create(ctx, branch, o)
	if err != nil {
		return entities.Occurrence{}, err
	}
	log.Info().Str("branch", string(branch)).Str("id", created.ID).Str("nota", created.Nota).Msg("occurrence created")
	return created, nil
}

// Update merges apply's changes over the stored record and overwrites the
// whole row.
func (u *OccurrenceUseCase) Update(ctx context.Context, branch entities.Branch, id string, apply func(*entities.Occurrence)) (entities.Occurrence, error) {
	o, err := u.find(ctx, branch, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if apply != nil {
		apply(&o)
	}
	o.ID = strings.TrimSpace(id)

	if err := u.validate(&o); err != nil {
		return entities.Occurrence{}, err
	}
	derive(&o, u.now())
	return o, u.write(ctx, branch, o)
}

func (u *OccurrenceUseCase) Delete(ctx context.Context, branch entities.Branch, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOccurrenceID
	}
	found, err := u.repo.Delete(ctx, branch, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrOccurrenceNotFound
	}
	log.Info().Str("branch", string(branch)).Str("id", id).Msg("occurrence deleted")
	return nil
}

// RegisterRetirada records who picked up the volumes and when.
func (u *OccurrenceUseCase) RegisterRetirada(ctx context.Context, branch entities.Branch, id string, form validation.ReceiverForm) (entities.Occurrence, error) {
	if err := u.validator.Receiver(&form); err != nil {
		return entities.Occurrence{}, err
	}
	o, err := u.find(ctx, branch, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	now := u.now()
	o.RecebedorNome = form.RecebedorNome
	o.RecebedorCpf = form.RecebedorCpf
	o.RecebedorPlaca = form.RecebedorPlaca
	o.DataRetirada = now.Format(entities.DateTimeLayout)
	derive(&o, now)
	return o, u.write(ctx, branch, o)
}

func (u *OccurrenceUseCase) Types() []entities.OccurrenceTypeOption {
	return entities.OccurrenceTypes()
}

func (u *OccurrenceUseCase) find(ctx context.Context, branch entities.Branch, id string) (entities.Occurrence, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Occurrence{}, ErrInvalidOccurrenceID
	}
	o, err := u.repo.GetByID(ctx, branch, id)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if o.ID == "" {
		return entities.Occurrence{}, ErrOccurrenceNotFound
	}
	return o, nil
}

func (u *OccurrenceUseCase) write(ctx context.Context, branch entities.Branch, o entities.Occurrence) error {
	found, err := u.repo.Update(ctx, branch, o)
	if err != nil {
		return err
	}
	if !found {
		// Removed by someone else between the lookup and the write.
		return ErrOccurrenceNotFound
	}
	log.Info().Str("branch", string(branch)).Str("id", o.ID).Str("status", o.Status).Msg("occurrence updated")
	return nil
}

// validate runs the form rules and copies the normalized values back.
func (u *OccurrenceUseCase) validate(o *entities.Occurrence) error {
	f := validation.OccurrenceForm{
		Nota:                 o.Nota,
		Volumes:              o.Volumes,
		Tipo:                 o.Tipo,
		Solicitante:          o.Solicitante,
		Cliente:              o.Cliente,
		Transportadora:       o.Transportadora,
		Destino:              o.Destino,
		Estado:               o.Estado,
		Pedido:               o.Pedido,
		DataNota:             o.DataNota,
		DataOcorrencia:       o.DataOcorrencia,
		Ocorrencia:           o.Ocorrencia,
		Obs:                  o.Obs,
		StatusCliente:        o.StatusCliente,
		StatusTransportadora: o.StatusTransportadora,
	}
	if err := u.validator.Occurrence(&f); err != nil {
		return err
	}
	o.Nota, o.Volumes, o.Tipo = f.Nota, f.Volumes, f.Tipo
	o.Solicitante, o.Cliente, o.Transportadora = f.Solicitante, f.Cliente, f.Transportadora
	o.Destino, o.Estado, o.Pedido = f.Destino, f.Estado, f.Pedido
	o.DataNota, o.DataOcorrencia = f.DataNota, f.DataOcorrencia
	o.Ocorrencia, o.Obs = f.Ocorrencia, f.Obs
	o.StatusCliente, o.StatusTransportadora = f.StatusCliente, f.StatusTransportadora
	return nil
}

// derive recomputes the status and tracking columns. A resolved record stops
// aging at ultimaOcorrencia when that date is known.
func derive(o *entities.Occurrence, now time.Time) {
	o.Status = string(o.DeriveStatus())
	end := ""
	if o.IsResolved() {
		end = o.UltimaOcorrencia
	}
	o.Tracking = tracking.Persist(tracking.Since(o.DataOcorrencia, end, now))
}
