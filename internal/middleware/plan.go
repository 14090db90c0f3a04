package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/domain/subscription"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

type PlanSource interface {
	Status(ctx context.Context, owner string) (subscription.Status, error)
}

// RequireView blocks routes of view when the owner's trial has expired.
func RequireView(plans PlanSource, view string) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := plans.Status(c.Request.Context(), Owner(c))
		if err != nil {
			httperr.FromError(c, err)
			c.Abort()
			return
		}
		if !st.CanOpen(view) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, httperr.HTTPError{
				Code:    "plan_expired",
				Message: "Seu período de teste terminou. Assine um plano para continuar.",
			})
			return
		}
		c.Next()
	}
}
