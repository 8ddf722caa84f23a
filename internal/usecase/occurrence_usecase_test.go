package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
	mock_interfaces "ocorrencias_logistica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newOccurrenceUseCase(repo *mock_interfaces.MockIOccurrenceRepository) *OccurrenceUseCase {
	return NewOccurrenceUseCase(repo, validation.New(clock), clock)
}

func validOccurrence() entities.Occurrence {
	return entities.Occurrence{
		Nota:                 "123456",
		Volumes:              "3",
		Tipo:                 "2",
		Solicitante:          "Maria",
		Cliente:              "Mercado Central",
		Transportadora:       "Rodonaves",
		Destino:              "Recife",
		Estado:               "pe",
		DataNota:             "2024-06-01",
		DataOcorrencia:       "2024-06-03",
		Ocorrencia:           "Duas caixas chegaram amassadas",
		StatusCliente:        "EM ABERTO",
		StatusTransportadora: "RESOLVIDO",
	}
}

func TestOccurrenceUseCase_Create(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		o := validOccurrence()
		o.DataNota = "2024-01-10"
		o.DataOcorrencia = "2024-01-05"

		_, err := uc.Create(context.Background(), entities.BranchSP, o)
		errs, ok := validation.AsErrors(err)
		if !ok {
			t.Fatalf("expected validation errors, got %v", err)
		}
		if errs["dataOcorrencia"] != "Data da ocorrência não pode ser anterior à data da nota" {
			t.Fatalf("unexpected message %q", errs["dataOcorrencia"])
		}
	})

	t.Run("create success recomputes derived columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		o := validOccurrence()
		o.ID = "client-id"
		o.Status = "Resolvido"
		o.Tracking = "999"

		repo.EXPECT().Create(gomock.Any(), entities.BranchPE, gomock.AssignableToTypeOf(entities.Occurrence{})).DoAndReturn(
			func(_ context.Context, _ entities.Branch, got entities.Occurrence) (entities.Occurrence, error) {
				if got.ID == "" || got.ID == "client-id" {
					t.Fatalf("expected server generated id, got %q", got.ID)
				}
				if got.Status != "Pendente" {
					t.Fatalf("expected Pendente, got %q", got.Status)
				}
				if got.Tracking != "12" {
					t.Fatalf("expected tracking 12, got %q", got.Tracking)
				}
				if got.Estado != "PE" {
					t.Fatalf("expected normalized estado, got %q", got.Estado)
				}
				return got, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.BranchPE, o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), entities.BranchSP, gomock.Any()).Return(entities.Occurrence{}, errors.New("quota"))

		_, err := uc.Create(context.Background(), entities.BranchSP, validOccurrence())
		if err == nil || err.Error() != "quota" {
			t.Fatalf("expected quota error, got %v", err)
		}
	})
}

func TestOccurrenceUseCase_ListDerivesOnRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
	uc := newOccurrenceUseCase(repo)

	resolved := validOccurrence()
	resolved.ID = "a"
	resolved.StatusCliente = "resolvido"
	resolved.StatusTransportadora = "falta de provas"
	resolved.UltimaOcorrencia = "2024-06-10"
	resolved.Status = "Pendente"

	open := validOccurrence()
	open.ID = "b"
	open.UltimaOcorrencia = "2024-06-10"
	open.Status = "Resolvido"

	repo.EXPECT().List(gomock.Any(), entities.BranchES).Return([]entities.Occurrence{resolved, open}, nil)

	list, err := uc.List(context.Background(), entities.BranchES)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].Status != "Resolvido" || list[0].Tracking != "7" {
		t.Fatalf("resolved record: status=%q tracking=%q", list[0].Status, list[0].Tracking)
	}
	if list[1].Status != "Pendente" || list[1].Tracking != "12" {
		t.Fatalf("open record: status=%q tracking=%q", list[1].Status, list[1].Tracking)
	}
}

func TestOccurrenceUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newOccurrenceUseCase(nil)
		_, err := uc.Get(context.Background(), entities.BranchSP, "  ")
		if !errors.Is(err, ErrInvalidOccurrenceID) {
			t.Fatalf("expected ErrInvalidOccurrenceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), entities.BranchSP, "x").Return(entities.Occurrence{}, nil)

		_, err := uc.Get(context.Background(), entities.BranchSP, "x")
		if !errors.Is(err, ErrOccurrenceNotFound) {
			t.Fatalf("expected ErrOccurrenceNotFound, got %v", err)
		}
	})
}

func TestOccurrenceUseCase_Update(t *testing.T) {
	stored := validOccurrence()
	stored.ID = "occ-1"
	stored.Estado = "PE"

	t.Run("merges and overwrites the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), entities.BranchSP, "occ-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), entities.BranchSP, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Branch, got entities.Occurrence) (bool, error) {
				if got.ID != "occ-1" {
					t.Fatalf("id must not change, got %q", got.ID)
				}
				if got.Cliente != "Mercado Central" {
					t.Fatalf("untouched fields must be kept, got %q", got.Cliente)
				}
				if got.Status != "Resolvido" {
					t.Fatalf("expected Resolvido, got %q", got.Status)
				}
				return true, nil
			},
		)

		res, err := uc.Update(context.Background(), entities.BranchSP, "occ-1", func(o *entities.Occurrence) {
			o.ID = "hijack"
			o.StatusCliente = "RESOLVIDO"
			o.StatusTransportadora = "Falta de provas"
			o.Status = "Pendente"
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != "Resolvido" {
			t.Fatalf("expected Resolvido, got %q", res.Status)
		}
	})

	t.Run("validation error skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), entities.BranchSP, "occ-1").Return(stored, nil)

		_, err := uc.Update(context.Background(), entities.BranchSP, "occ-1", func(o *entities.Occurrence) {
			o.Cliente = "ab"
		})
		if _, ok := validation.AsErrors(err); !ok {
			t.Fatalf("expected validation errors, got %v", err)
		}
	})

	t.Run("row vanished before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), entities.BranchSP, "occ-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), entities.BranchSP, gomock.Any()).Return(false, nil)

		_, err := uc.Update(context.Background(), entities.BranchSP, "occ-1", nil)
		if !errors.Is(err, ErrOccurrenceNotFound) {
			t.Fatalf("expected ErrOccurrenceNotFound, got %v", err)
		}
	})
}

func TestOccurrenceUseCase_Delete(t *testing.T) {
	cases := []struct {
		name  string
		found bool
		err   error
		want  error
	}{
		{"deleted", true, nil, nil},
		{"not found", false, nil, ErrOccurrenceNotFound},
		{"store error", false, errors.New("boom"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
			uc := newOccurrenceUseCase(repo)

			repo.EXPECT().Delete(gomock.Any(), entities.BranchSP, "occ-1").Return(tc.found, tc.err)

			err := uc.Delete(context.Background(), entities.BranchSP, "occ-1")
			switch {
			case tc.err != nil:
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
			case tc.want != nil:
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestOccurrenceUseCase_RegisterRetirada(t *testing.T) {
	t.Run("invalid receiver", func(t *testing.T) {
		uc := newOccurrenceUseCase(nil)
		_, err := uc.RegisterRetirada(context.Background(), entities.BranchSP, "occ-1", validation.ReceiverForm{})
		if _, ok := validation.AsErrors(err); !ok {
			t.Fatalf("expected validation errors, got %v", err)
		}
	})

	t.Run("stamps receiver and timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOccurrenceRepository(ctrl)
		uc := newOccurrenceUseCase(repo)

		stored := validOccurrence()
		stored.ID = "occ-1"
		repo.EXPECT().GetByID(gomock.Any(), entities.BranchSP, "occ-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), entities.BranchSP, gomock.Any()).Return(true, nil)

		res, err := uc.RegisterRetirada(context.Background(), entities.BranchSP, "occ-1", validation.ReceiverForm{
			RecebedorNome:  "Ana",
			RecebedorCpf:   "529.982.247-25",
			RecebedorPlaca: "bra-2e19",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RecebedorCpf != "52998224725" || res.RecebedorPlaca != "BRA2E19" {
			t.Fatalf("expected normalized receiver, got %+v", res)
		}
		if res.DataRetirada != "2024-06-15 14:00:00" {
			t.Fatalf("unexpected dataRetirada %q", res.DataRetirada)
		}
	})
}

func TestOccurrenceUseCase_Types(t *testing.T) {
	uc := newOccurrenceUseCase(nil)
	if got := len(uc.Types()); got != 9 {
		t.Fatalf("expected 9 types, got %d", got)
	}
}
