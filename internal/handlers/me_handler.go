package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/subscription"
)

// MeHandler serves the session shell: profile, plan, view and notices.
type MeHandler struct {
	profiles *profile.Service
	plans    *subscription.Service
	sessions *session.Registry
}

func NewMeHandler(profiles *profile.Service, plans *subscription.Service, sessions *session.Registry) *MeHandler {
	return &MeHandler{profiles: profiles, plans: plans, sessions: sessions}
}

type ViewRequest struct {
	View string `json:"view"`
}

type ThemeRequest struct {
	DarkMode bool `json:"dark_mode"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.sessions.Get(owner(c))

	p, err := h.profiles.Get(ctx, owner(c))
	if err != nil {
		fail(c, sess, err)
		return
	}
	st, err := h.plans.Status(ctx, owner(c))
	if err != nil {
		fail(c, sess, err)
		return
	}
	prefs, err := sess.Preferences(ctx)
	if err != nil {
		fail(c, sess, err)
		return
	}

	view := prefs.LastView
	if !st.CanOpen(view) {
		view = "subscription"
	}

	httpresp.OK(c, gin.H{
		"user_id":      owner(c),
		"profile":      p,
		"subscription": st,
		"view":         view,
		"dark_mode":    prefs.DarkMode,
		"needs_setup":  !p.SetupCompleted,
		"notices":      sess.Drain(),
	})
}

func (h *MeHandler) Navigate(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req ViewRequest
	if !bind(c, &req) {
		return
	}

	st, err := h.plans.Status(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, sess, err)
		return
	}

	prefs, err := sess.Navigate(c.Request.Context(), req.View, st)
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, prefs)
}

func (h *MeHandler) SetTheme(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req ThemeRequest
	if !bind(c, &req) {
		return
	}

	prefs, err := sess.SetDarkMode(c.Request.Context(), req.DarkMode)
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, prefs)
}

func (h *MeHandler) Notices(c *gin.Context) {
	httpresp.List(c, h.sessions.Get(owner(c)).Drain())
}
