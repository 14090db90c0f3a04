package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/setup"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
	ucSetup "github.com/BruksfildServices01/studio-gestor/internal/usecase/setup"
)

// SetupHandler drives the onboarding wizard. The client keeps the wizard
// state and sends it back on every step.
type SetupHandler struct {
	profiles *profile.Service
	complete *ucSetup.CompleteSetup
	sessions *session.Registry
}

func NewSetupHandler(profiles *profile.Service, complete *ucSetup.CompleteSetup, sessions *session.Registry) *SetupHandler {
	return &SetupHandler{profiles: profiles, complete: complete, sessions: sessions}
}

type SetupRequest struct {
	Wizard   domain.Wizard `json:"wizard"`
	Category string        `json:"category"`
	Name     string        `json:"name"`
}

func (h *SetupHandler) Start(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, domain.NewWizard(p))
}

// Step applies one wizard action named by the :action path parameter.
func (h *SetupHandler) Step(c *gin.Context) {
	var req SetupRequest
	if !bind(c, &req) {
		return
	}
	w := &req.Wizard
	if w.ServicesByCategory == nil {
		w.ServicesByCategory = map[string][]string{}
	}

	var err error
	switch c.Param("action") {
	case "next":
		err = w.Next()
	case "prev":
		w.Prev()
	case "toggle-category":
		w.ToggleCategory(req.Category)
	case "toggle-service":
		w.ToggleService(req.Name)
	case "custom-category":
		if !w.AddCustomCategory(req.Name) {
			err = httperr.ErrValidation("name")
		}
	case "custom-service":
		if !w.AddCustomService(req.Category, req.Name) {
			err = httperr.ErrValidation("name")
		}
	default:
		httperr.NotFound(c, "unknown_action", "Ação desconhecida.")
		return
	}

	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, w)
}

func (h *SetupHandler) Complete(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req SetupRequest
	if !bind(c, &req) {
		return
	}

	p, err := h.complete.Execute(c.Request.Context(), owner(c), &req.Wizard)
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Configuração concluída!")
	httpresp.OK(c, p)
}
