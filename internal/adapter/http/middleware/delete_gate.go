package middleware

import (
	"net/http"

	"ocorrencias_logistica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const DeletePasswordHeader = "X-Delete-Password"

var errDeleteForbidden = pkg.NewDomainErrorSimple("DELETE_FORBIDDEN", "Senha incorreta", http.StatusForbidden)

// DeleteGate requires X-Delete-Password to match the bcrypt hash. An empty
// hash disables the gate.
func DeleteGate(hash string) gin.HandlerFunc {
	if hash == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		password := c.GetHeader(DeletePasswordHeader)
		if password == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("delete rejected: wrong passphrase")
			c.AbortWithStatusJSON(errDeleteForbidden.HTTPStatus, errDeleteForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
