package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *catalog.Services
	sessions *session.Registry
}

func NewServiceHandler(services *catalog.Services, sessions *session.Registry) *ServiceHandler {
	return &ServiceHandler{services: services, sessions: sessions}
}

func (h *ServiceHandler) List(c *gin.Context) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Query:    c.Query("query"),
	}
	switch strings.TrimSpace(c.Query("active")) { // "true", "false" ou vazio
	case "true":
		on := true
		f.Active = &on
	case "false":
		off := false
		f.Active = &off
	}

	rows, err := h.services.List(c.Request.Context(), owner(c), f)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req catalog.CreateInput
	if !bind(c, &req) {
		return
	}

	svc, err := h.services.Create(c.Request.Context(), owner(c), req)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req catalog.UpdateInput
	if !bind(c, &req) {
		return
	}

	svc, err := h.services.Update(c.Request.Context(), owner(c), c.Param("id"), req)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	c.Status(http.StatusNoContent)
}
