package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError converts an operation error into the JSON error response.
func FromError(c *gin.Context, err error) {
	var (
		ve ValidationError
		nf NotFoundError
		fe FetchError
		pe PersistenceError
		me MessagingError
		be BusinessError
	)

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_failed",
			Message: "Preencha os campos obrigatórios.",
			Fields:  ve.Missing,
		})
	case errors.As(err, &nf):
		NotFound(c, nf.Error(), "Registro não encontrado.")
	case errors.As(err, &fe):
		Write(c, http.StatusBadGateway, "fetch_failed", fe.Error())
	case errors.As(err, &pe):
		Write(c, http.StatusBadGateway, "persistence_failed", pe.Error())
	case errors.As(err, &me):
		Write(c, http.StatusBadGateway, "messaging_failed", me.Error())
	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Code)
	default:
		Internal(c, "internal_error", err.Error())
	}
}
