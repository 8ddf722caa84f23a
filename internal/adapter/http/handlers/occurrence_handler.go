package handlers

import (
	"errors"
	"net/http"

	request "ocorrencias_logistica/internal/adapter/http/dto/request"
	response "ocorrencias_logistica/internal/adapter/http/dto/response"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/internal/usecase"
	"ocorrencias_logistica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// OccurrenceHandler serves /api/occurrences. Every route takes the optional
// ?sheet= branch selector.
type OccurrenceHandler struct {
	usecase usecase.IOccurrenceUseCase
}

func NewOccurrenceHandler(uc usecase.IOccurrenceUseCase) *OccurrenceHandler {
	return &OccurrenceHandler{usecase: uc}
}

// List godoc
// @Summary  List occurrences of a branch
// @Tags     occurrences
// @Produce  json
// @Param    sheet query string false "SP, PE or ES"
// @Success  200 {array} response.OccurrenceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences [get]
func (h *OccurrenceHandler) List(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), branch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list))
}

// Get godoc
// @Summary  Get one occurrence
// @Tags     occurrences
// @Produce  json
// @Param    id    path  string true  "Occurrence ID"
// @Param    sheet query string false "SP, PE or ES"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences/{id} [get]
func (h *OccurrenceHandler) Get(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	o, err := h.usecase.Get(c.Request.Context(), branch, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrence(o))
}

// Create godoc
// @Summary  Register an occurrence
// @Tags     occurrences
// @Accept   json
// @Produce  json
// @Param    sheet   query string                    false "SP, PE or ES"
// @Param    payload body  request.OccurrenceRequest true  "Occurrence"
// @Success  201 {object} response.OccurrenceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences [post]
func (h *OccurrenceHandler) Create(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	var payload request.OccurrenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), branch, payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOccurrence(created))
}

// Update godoc
// @Summary  Edit an occurrence
// @Description Fields absent from the body keep their stored value; the whole row is rewritten.
// @Tags     occurrences
// @Accept   json
// @Produce  json
// @Param    id      path  string                    true  "Occurrence ID"
// @Param    sheet   query string                    false "SP, PE or ES"
// @Param    payload body  request.OccurrenceRequest true  "Changed fields"
// @Success  200 {object} response.SuccessResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences/{id} [put]
func (h *OccurrenceHandler) Update(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	var payload request.OccurrenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	if _, err := h.usecase.Update(c.Request.Context(), branch, c.Param("id"), payload.ApplyTo); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// Delete godoc
// @Summary  Remove an occurrence
// @Tags     occurrences
// @Produce  json
// @Param    id                path   string true  "Occurrence ID"
// @Param    sheet             query  string false "SP, PE or ES"
// @Param    X-Delete-Password header string false "Required when the server has a delete passphrase"
// @Success  200 {object} response.SuccessResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences/{id} [delete]
func (h *OccurrenceHandler) Delete(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), branch, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success())
}

// RegisterRetirada godoc
// @Summary  Register who picked up the volumes
// @Tags     occurrences
// @Accept   json
// @Produce  json
// @Param    id      path  string                  true  "Occurrence ID"
// @Param    sheet   query string                  false "SP, PE or ES"
// @Param    payload body  request.ReceiverRequest true  "Receiver"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /occurrences/{id}/retirada [put]
func (h *OccurrenceHandler) RegisterRetirada(c *gin.Context) {
	branch, ok := branchParam(c)
	if !ok {
		return
	}
	var payload request.ReceiverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	o, err := h.usecase.RegisterRetirada(c.Request.Context(), branch, c.Param("id"), payload.ToForm())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrence(o))
}

// Types godoc
// @Summary  Occurrence type codes and labels
// @Tags     occurrences
// @Produce  json
// @Success  200 {array} entities.OccurrenceTypeOption
// @Router   /occurrences/tipos [get]
func (h *OccurrenceHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Types())
}

func (h *OccurrenceHandler) fail(c *gin.Context, err error) {
	appErr := mapOccurrenceError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("occurrence request failed")
	}
	respondError(c, appErr)
}

func mapOccurrenceError(err error) *pkg.AppError {
	if appErr, ok := commonError(err, occurrenceFieldOrder); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOccurrenceID):
		return pkg.NewDomainError("INVALID_OCCURRENCE_ID", "ID inválido", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOccurrenceNotFound):
		return pkg.NewDomainError("OCCURRENCE_NOT_FOUND", "Ocorrência não encontrada", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError(errStore.Code, errStore.Message, err, errStore.HTTPStatus)
	}
}

// occurrenceFieldOrder also covers the pick-up form fields.
var occurrenceFieldOrder = append(append([]string{}, validation.OccurrenceFieldOrder...), validation.ReceiverFieldOrder...)
