package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/backup"
)

type BackupHandler struct {
	create   *backup.CreateBackup
	sessions *session.Registry
}

func NewBackupHandler(create *backup.CreateBackup, sessions *session.Registry) *BackupHandler {
	return &BackupHandler{create: create, sessions: sessions}
}

func (h *BackupHandler) Create(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	res, err := h.create.Execute(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Backup criado!")
	httpresp.Created(c, res)
}
