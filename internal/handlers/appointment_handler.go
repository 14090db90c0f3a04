package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	ucAppointment "github.com/BruksfildServices01/studio-gestor/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	sessions *session.Registry
	services *catalog.Services
}

func NewAppointmentHandler(sessions *session.Registry, services *catalog.Services) *AppointmentHandler {
	return &AppointmentHandler{sessions: sessions, services: services}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientName   string   `json:"client_name"`
	ClientPhone  string   `json:"client_phone"`
	ServiceIDs   []string `json:"service_ids"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Observations string   `json:"observations"`
	Status       *string  `json:"status,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type RescheduleRequest struct {
	ServiceIDs   []string `json:"service_ids"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Observations string   `json:"observations"`
}

type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ======================================================
// HELPERS
// ======================================================

// items snapshots the catalog services into appointment line items.
func (h *AppointmentHandler) items(ctx context.Context, owner string, ids []string) (models.ServiceItems, error) {
	out := make(models.ServiceItems, 0, len(ids))
	for _, id := range ids {
		svc, err := h.services.Get(ctx, owner, id)
		if err != nil {
			return nil, err
		}
		out = append(out, svc.Item())
	}
	return out, nil
}

func (h *AppointmentHandler) draft(c *gin.Context, req AppointmentRequest) (domain.Draft, error) {
	items, err := h.items(c.Request.Context(), owner(c), req.ServiceIDs)
	if err != nil {
		return domain.Draft{}, err
	}

	d := domain.Draft{
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		Services:     items,
		Date:         req.Date,
		Time:         req.Time,
		Observations: req.Observations,
	}
	if req.Status != nil {
		st, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return domain.Draft{}, err
		}
		d.Status = &st
	}
	return d, nil
}

// loaded finds id in the day currently loaded by the session.
func loaded(sess *session.Session, id string) (models.Appointment, error) {
	ap, ok := sess.Schedule.Find(id)
	if !ok {
		return models.Appointment{}, httperr.NotFoundError{Entity: "appointment", ID: id}
	}
	return ap, nil
}

// ======================================================
// LIST DAY
// ======================================================

func (h *AppointmentHandler) ListDay(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var err error
	if date := c.Query("date"); date != "" {
		_, err = sess.Schedule.LoadDay(c.Request.Context(), date)
	} else {
		_, err = sess.Schedule.Today(c.Request.Context())
	}

	if errors.Is(err, ucAppointment.ErrStaleLoad) {
		httperr.Write(c, http.StatusConflict, "stale_load", "Uma carga mais recente está em andamento.")
		return
	}
	if err != nil {
		fail(c, sess, err)
		return
	}

	httpresp.OK(c, sess.Schedule.View())
}

// ======================================================
// CREATE / EDIT
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req AppointmentRequest
	if !bind(c, &req) {
		return
	}
	req.Status = nil

	d, err := h.draft(c, req)
	if err != nil {
		fail(c, sess, err)
		return
	}

	created, err := sess.Schedule.Create(c.Request.Context(), d)
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Agendamento criado!")
	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req AppointmentRequest
	if !bind(c, &req) {
		return
	}

	d, err := h.draft(c, req)
	if err != nil {
		fail(c, sess, err)
		return
	}

	updated, err := sess.Schedule.Edit(c.Request.Context(), c.Param("id"), d)
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Agendamento atualizado!")
	httpresp.OK(c, updated)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req StatusRequest
	if !bind(c, &req) {
		return
	}

	st, err := domain.ParseStatus(req.Status)
	if err != nil {
		fail(c, sess, err)
		return
	}

	updated, err := sess.Schedule.ChangeStatus(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		fail(c, sess, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req RescheduleRequest
	if !bind(c, &req) {
		return
	}

	ap, err := loaded(sess, c.Param("id"))
	if err != nil {
		fail(c, sess, err)
		return
	}

	intent := sess.Schedule.Reschedule(ap)

	items, err := h.items(c.Request.Context(), owner(c), req.ServiceIDs)
	if err != nil {
		fail(c, sess, err)
		return
	}
	intent.Next.Services = items
	intent.Next.Date = req.Date
	intent.Next.Time = req.Time
	intent.Next.Observations = req.Observations

	original, created, err := sess.Schedule.CompleteReschedule(c.Request.Context(), intent)
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Agendamento remarcado!")
	c.JSON(http.StatusCreated, gin.H{
		"original": original,
		"created":  created,
	})
}

// ======================================================
// REORDER / REMINDER
// ======================================================

func (h *AppointmentHandler) Reorder(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req ReorderRequest
	if !bind(c, &req) {
		return
	}

	if err := sess.Schedule.Reorder(req.From, req.To); err != nil {
		fail(c, sess, err)
		return
	}

	httpresp.OK(c, sess.Schedule.View())
}

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	ap, err := loaded(sess, c.Param("id"))
	if err != nil {
		fail(c, sess, err)
		return
	}

	if err := sess.Schedule.SendReminder(c.Request.Context(), ap); err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Lembrete enviado!")
	c.Status(http.StatusNoContent)
}
