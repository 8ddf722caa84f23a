package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	request "ocorrencias_logistica/internal/adapter/http/dto/request"
	response "ocorrencias_logistica/internal/adapter/http/dto/response"
	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/usecase"
	"ocorrencias_logistica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExpedicaoHandler struct {
	usecase usecase.IExpedicaoUseCase
	now     func() time.Time
}

func NewExpedicaoHandler(uc usecase.IExpedicaoUseCase, now func() time.Time) *ExpedicaoHandler {
	if now == nil {
		now = time.Now
	}
	return &ExpedicaoHandler{usecase: uc, now: now}
}

// List godoc
// @Summary  List invoices in the dispatch workflow
// @Tags     expedicao
// @Produce  json
// @Success  200 {array} response.ExpedicaoResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /expedicao [get]
func (h *ExpedicaoHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExpedicoes(list, h.now()))
}

// Create godoc
// @Summary  Register an invoice for dispatch
// @Description The record always starts as NF DISPONIVEIS.
// @Tags     expedicao
// @Accept   json
// @Produce  json
// @Param    payload body request.ExpedicaoRequest true "Invoice"
// @Success  201 {object} response.ExpedicaoResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /expedicao [post]
func (h *ExpedicaoHandler) Create(c *gin.Context) {
	var payload request.ExpedicaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToForm())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromExpedicao(created, h.now()))
}

// MarkAguardando godoc
// @Summary  Move an invoice to AGUARDANDO
// @Tags     expedicao
// @Produce  json
// @Param    id path string true "Expedicao ID"
// @Success  200 {object} response.ExpedicaoStatusResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /expedicao/{id} [patch]
func (h *ExpedicaoHandler) MarkAguardando(c *gin.Context) {
	e, err := h.usecase.MarkAguardando(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ExpedicaoStatusResponse{ID: e.ID, Status: e.Status})
}

// Dispatch godoc
// @Summary  Hand an invoice to a driver
// @Description Records motorista, cpf and placa and moves the invoice to EXPEDIDO.
// @Tags     expedicao
// @Accept   json
// @Produce  json
// @Param    id      path string                true "Expedicao ID"
// @Param    payload body request.DriverRequest true "Driver"
// @Success  200 {object} response.ExpedicaoResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /expedicao/{id} [put]
func (h *ExpedicaoHandler) Dispatch(c *gin.Context) {
	var payload request.DriverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	e, err := h.usecase.Dispatch(c.Request.Context(), c.Param("id"), payload.ToForm())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExpedicao(e, h.now()))
}

// Romaneio godoc
// @Summary  Print the loading manifest
// @Tags     expedicao
// @Accept   json
// @Produce  application/pdf
// @Param    payload body request.RomaneioRequest true "Selected ids, in print order"
// @Success  200 {file} file
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /expedicao/romaneio [post]
func (h *ExpedicaoHandler) Romaneio(c *gin.Context) {
	var payload request.RomaneioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	var buf bytes.Buffer
	if err := h.usecase.Romaneio(c.Request.Context(), payload.IDs, &buf); err != nil {
		h.fail(c, err)
		return
	}
	filename := "romaneio-" + h.now().Format("20060102-150405") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ExpedicaoHandler) fail(c *gin.Context, err error) {
	appErr := mapExpedicaoError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("expedicao request failed")
	}
	respondError(c, appErr)
}

func mapExpedicaoError(err error) *pkg.AppError {
	if appErr, ok := commonError(err, expedicaoFieldOrder); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidExpedicaoID):
		return pkg.NewDomainError("INVALID_EXPEDICAO_ID", "ID inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRomaneio):
		return pkg.NewDomainError("EMPTY_ROMANEIO", "Selecione ao menos uma nota", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpedicaoNotFound):
		return pkg.NewDomainError("EXPEDICAO_NOT_FOUND", "Expedição não encontrada", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status da expedição não permite esta operação", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError(errStore.Code, errStore.Message, err, errStore.HTTPStatus)
	}
}

var expedicaoFieldOrder = append(append([]string{}, validation.ExpedicaoFieldOrder...), validation.DriverFieldOrder...)
