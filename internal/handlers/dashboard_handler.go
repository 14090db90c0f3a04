package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dash     *dashboard.Dashboard
	sessions *session.Registry
}

func NewDashboardHandler(dash *dashboard.Dashboard, sessions *session.Registry) *DashboardHandler {
	return &DashboardHandler{dash: dash, sessions: sessions}
}

func (h *DashboardHandler) Today(c *gin.Context) {
	sum, err := h.dash.Today(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, sum)
}

func (h *DashboardHandler) SendBirthdayGreeting(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	if err := h.dash.SendBirthdayGreeting(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Mensagem de aniversário enviada!")
	c.Status(http.StatusNoContent)
}
