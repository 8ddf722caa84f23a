package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ocorrencias_logistica/internal/adapter/http/handlers/mocks"
	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOccurrenceRouter(h *OccurrenceHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/occurrences", h.List)
	r.POST("/api/occurrences", h.Create)
	r.GET("/api/occurrences/tipos", h.Types)
	r.GET("/api/occurrences/:id", h.Get)
	r.PUT("/api/occurrences/:id", h.Update)
	r.DELETE("/api/occurrences/:id", h.Delete)
	r.PUT("/api/occurrences/:id/retirada", h.RegisterRetirada)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
}

func TestOccurrenceHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		w := doJSON(r, http.MethodGet, "/api/occurrences?sheet=RJ", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("selected branch with labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().List(gomock.Any(), entities.BranchPE).Return([]entities.Occurrence{
			{ID: "o1", Tipo: "2", Status: "Pendente", Tracking: "3"},
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/occurrences?sheet=pe", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0]["id"] != "o1" || body[0]["tipoLabel"] != "Avaria" || body[0]["trackingLabel"] != "3 dias" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().List(gomock.Any(), entities.BranchSP).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/api/occurrences", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().List(gomock.Any(), entities.BranchSP).Return(nil, errors.New("quota exceeded"))

		w := doJSON(r, http.MethodGet, "/api/occurrences", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["error"] == "" || body["error"] == nil {
			t.Fatalf("expected error message, got %v", body)
		}
	})
}

func TestOccurrenceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		w := doJSON(r, http.MethodPost, "/api/occurrences", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), entities.BranchSP, gomock.Any()).Return(entities.Occurrence{}, validation.Errors{
			"cliente": "Cliente deve ter ao menos 3 caracteres",
			"nota":    "Informe o número da nota",
		})

		w := doJSON(r, http.MethodPost, "/api/occurrences", `{"cliente":"AB"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		decodeBody(t, w, &body)
		if body.Error != "Informe o número da nota" {
			t.Fatalf("expected the first field in form order, got %q", body.Error)
		}
		if len(body.Fields) != 2 {
			t.Fatalf("expected 2 fields, got %v", body.Fields)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().Create(gomock.Any(), entities.BranchES, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Branch, o entities.Occurrence) (entities.Occurrence, error) {
				if o.Nota != "123" || o.Volumes != "4" || o.ID != "" {
					t.Fatalf("unexpected occurrence: %+v", o)
				}
				o.ID = "new-id"
				o.Status = "Pendente"
				return o, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/api/occurrences?sheet=ES", `{"id":"client-id","nota":123,"volumes":"4"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["id"] != "new-id" || body["statusLabel"] != "Pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOccurrenceHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("merges over the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), entities.BranchSP, "o1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Branch, _ string, apply func(*entities.Occurrence)) (entities.Occurrence, error) {
				o := entities.Occurrence{ID: "o1", Cliente: "ACME", Obs: "antiga"}
				apply(&o)
				if o.Cliente != "ACME" || o.Obs != "nova observação" {
					t.Fatalf("unexpected merge: %+v", o)
				}
				return o, nil
			},
		)

		w := doJSON(r, http.MethodPut, "/api/occurrences/o1?sheet=SP", `{"obs":"nova observação"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOccurrenceUseCase(ctrl)
		r := newOccurrenceRouter(NewOccurrenceHandler(uc))

		uc.EXPECT().Update(gomock.Any(), entities.BranchSP, "nope", gomock.Any()).Return(entities.Occurrence{}, usecase.ErrOccurrenceNotFound)

		w := doJSON(r, http.MethodPut, "/api/occurrences/nope", `{}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOccurrenceHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOccurrenceUseCase(ctrl)
	r := newOccurrenceRouter(NewOccurrenceHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), entities.BranchPE, "o1").Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/occurrences/o1?sheet=PE", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"success":true}` {
		t.Fatalf("expected 200 success, got %d %s", w.Code, w.Body.String())
	}
}

func TestOccurrenceHandler_GetAndTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOccurrenceUseCase(ctrl)
	r := newOccurrenceRouter(NewOccurrenceHandler(uc))

	uc.EXPECT().Types().Return(entities.OccurrenceTypes())
	uc.EXPECT().Get(gomock.Any(), entities.BranchSP, "o1").Return(entities.Occurrence{ID: "o1"}, nil)

	w := doJSON(r, http.MethodGet, "/api/occurrences/tipos", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var types []entities.OccurrenceTypeOption
	decodeBody(t, w, &types)
	if len(types) != 9 {
		t.Fatalf("expected 9 types, got %d", len(types))
	}

	w = doJSON(r, http.MethodGet, "/api/occurrences/o1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOccurrenceHandler_RegisterRetirada(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOccurrenceUseCase(ctrl)
	r := newOccurrenceRouter(NewOccurrenceHandler(uc))

	uc.EXPECT().RegisterRetirada(gomock.Any(), entities.BranchSP, "o1", validation.ReceiverForm{
		RecebedorNome: "Ana Souza", RecebedorCpf: "11144477735", RecebedorPlaca: "ABC1D23",
	}).Return(entities.Occurrence{ID: "o1", RecebedorNome: "Ana Souza"}, nil)

	w := doJSON(r, http.MethodPut, "/api/occurrences/o1/retirada",
		`{"recebedorNome":"Ana Souza","recebedorCpf":"11144477735","recebedorPlaca":"ABC1D23"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapOccurrenceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validation.Errors{"nota": "x"}, http.StatusBadRequest},
		{"unknown branch", entities.ErrUnknownBranch, http.StatusBadRequest},
		{"invalid id", usecase.ErrInvalidOccurrenceID, http.StatusBadRequest},
		{"not found", usecase.ErrOccurrenceNotFound, http.StatusInternalServerError},
		{"upstream", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapOccurrenceError(tt.err).HTTPStatus; got != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, got)
			}
		})
	}
}
