package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/subscription"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/subscription"
)

type SubscriptionHandler struct {
	plans    *subscription.Service
	sessions *session.Registry
}

func NewSubscriptionHandler(plans *subscription.Service, sessions *session.Registry) *SubscriptionHandler {
	return &SubscriptionHandler{plans: plans, sessions: sessions}
}

type SubscribeRequest struct {
	Plan string `json:"plan"`
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	st, err := h.plans.Status(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, gin.H{
		"status": st,
		"offers": domain.Offers(),
	})
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req SubscribeRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.plans.Subscribe(c.Request.Context(), owner(c), req.Plan)
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Plano atualizado!")
	httpresp.OK(c, res)
}
