package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/staff"
)

type StaffHandler struct {
	team     *staff.Team
	sessions *session.Registry
}

func NewStaffHandler(team *staff.Team, sessions *session.Registry) *StaffHandler {
	return &StaffHandler{team: team, sessions: sessions}
}

func (h *StaffHandler) List(c *gin.Context) {
	rows, err := h.team.List(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.List(c, rows)
}

func (h *StaffHandler) Add(c *gin.Context) {
	var req staff.Input
	if !bind(c, &req) {
		return
	}

	emp, err := h.team.Add(c.Request.Context(), owner(c), req)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.Created(c, emp)
}

func (h *StaffHandler) Remove(c *gin.Context) {
	if err := h.team.Remove(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	c.Status(http.StatusNoContent)
}
