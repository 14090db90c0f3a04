package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/middleware"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
)

// fail queues err as a notice for the owner and writes the JSON error.
func fail(c *gin.Context, sess *session.Session, err error) {
	if sess != nil {
		sess.Notify(err)
	}
	httperr.FromError(c, err)
}

// bind decodes the JSON body, answering 400 on failure.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return false
	}
	return true
}

func owner(c *gin.Context) string {
	return middleware.Owner(c)
}
