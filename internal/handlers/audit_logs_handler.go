package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List pages the owner's audit trail. from/to are inclusive dates.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from := c.Query("from"); from != "" {
		if d, err := time.Parse(timezone.DateLayout, from); err == nil {
			q.From = d
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := time.Parse(timezone.DateLayout, to); err == nil {
			q.To = d.AddDate(0, 0, 1)
		}
	}

	q.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), owner(c), q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  q.Page,
		"limit": q.Limit,
		"total": total,
		"logs":  logs,
	})
}
