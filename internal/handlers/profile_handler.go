package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/storage"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-gestor/internal/validators"
)

type ProfileHandler struct {
	profiles *profile.Service
	objects  storage.ObjectStore
	sessions *session.Registry
}

func NewProfileHandler(profiles *profile.Service, objects storage.ObjectStore, sessions *session.Registry) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, objects: objects, sessions: sessions}
}

type UpdateProfileRequest struct {
	EstablishmentName *string `json:"establishment_name"`
	DisplayName       *string `json:"display_name"`
	Phone             *string `json:"phone"`
	Timezone          *string `json:"timezone"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if !bind(c, &req) {
		return
	}

	patch := store.Patch{}
	if req.EstablishmentName != nil {
		patch["establishment_name"] = *req.EstablishmentName
	}
	if req.DisplayName != nil {
		patch["display_name"] = *req.DisplayName
	}
	if req.Phone != nil {
		if *req.Phone != "" && !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		patch["phone"] = validators.PhoneDigits(*req.Phone)
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		patch["timezone"] = *req.Timezone
	}

	p, err := h.profiles.Update(c.Request.Context(), owner(c), patch)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, p)
}

// UploadLogo takes a multipart "logo" file (png or jpeg).
func (h *ProfileHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_logo", "Envie uma imagem PNG ou JPEG.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_logo", "Não foi possível ler a imagem.")
		return
	}
	defer f.Close()

	p, err := h.profiles.SetLogo(c.Request.Context(), owner(c), h.objects, f)
	if err != nil {
		fail(c, h.sessions.Get(owner(c)), err)
		return
	}
	httpresp.OK(c, p)
}
