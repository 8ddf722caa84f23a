package handlers

import (
	"net/http"

	"ocorrencias_logistica/internal/usecase"
	"ocorrencias_logistica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// Search godoc
// @Summary  Stock rows whose EAN13 contains ean
// @Description Without ean the answer is an empty array.
// @Tags     stock
// @Produce  json
// @Param    ean query string false "EAN13 or part of it"
// @Success  200 {array} entities.Stock
// @Failure  500 {object} pkg.HTTPError
// @Router   /stock [get]
func (h *StockHandler) Search(c *gin.Context) {
	rows, err := h.usecase.Search(c.Request.Context(), c.Query("ean"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Summary godoc
// @Summary  Balance per EAN over every filial and armazém
// @Tags     stock
// @Produce  json
// @Param    ean query string false "EAN13 or part of it"
// @Success  200 {array} entities.StockSummary
// @Failure  500 {object} pkg.HTTPError
// @Router   /stock/summary [get]
func (h *StockHandler) Summary(c *gin.Context) {
	rows, err := h.usecase.Summary(c.Request.Context(), c.Query("ean"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StockHandler) fail(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("stock request failed")
	appErr := pkg.NewDomainError(errStore.Code, errStore.Message, err, errStore.HTTPStatus)
	respondError(c, appErr)
}
