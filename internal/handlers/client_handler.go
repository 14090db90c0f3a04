package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/clients"
)

type ClientHandler struct {
	clients  *clients.Service
	sessions *session.Registry
}

func NewClientHandler(svc *clients.Service, sessions *session.Registry) *ClientHandler {
	return &ClientHandler{clients: svc, sessions: sessions}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	rows, err := h.clients.List(c.Request.Context(), owner(c), c.Query("query"))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.List(c, rows)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clients.Input
	if !bind(c, &req) {
		return
	}

	cl, err := h.clients.Create(c.Request.Context(), owner(c), req)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req clients.Input
	if !bind(c, &req) {
		return
	}

	cl, err := h.clients.Update(c.Request.Context(), owner(c), c.Param("id"), req)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clients.Delete(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	c.Status(http.StatusNoContent)
}
