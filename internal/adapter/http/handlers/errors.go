package handlers

import (
	"errors"
	"net/http"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/domain/validation"
	"ocorrencias_logistica/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Dados inválidos", http.StatusBadRequest)
	errUnknownSheet   = pkg.NewDomainErrorSimple("UNKNOWN_SHEET", "Planilha inválida", http.StatusBadRequest)
	errStore          = pkg.NewDomainErrorSimple("STORE_ERROR", "Erro ao acessar a planilha", http.StatusInternalServerError)
)

// validationError surfaces the first failing field (in on-screen order) as
// the message and every failing field under "fields".
func validationError(errs validation.Errors, order []string) *pkg.AppError {
	return pkg.NewValidationError(errs[errs.First(order)], errs, http.StatusBadRequest)
}

// commonError covers what every resource shares; ok is false when err needs
// a resource-specific mapping.
func commonError(err error, order []string) (*pkg.AppError, bool) {
	if errs, ok := validation.AsErrors(err); ok {
		return validationError(errs, order), true
	}
	if errors.Is(err, entities.ErrUnknownBranch) {
		return errUnknownSheet, true
	}
	return nil, false
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// branchParam reads ?sheet=; empty selects the default branch.
func branchParam(c *gin.Context) (entities.Branch, bool) {
	b, err := entities.ParseBranch(c.Query("sheet"))
	if err != nil {
		respondError(c, errUnknownSheet)
		return "", false
	}
	return b, true
}
