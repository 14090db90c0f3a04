package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/comanda"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	ucComanda "github.com/BruksfildServices01/studio-gestor/internal/usecase/comanda"
)

type ComandaHandler struct {
	sessions *session.Registry
}

func NewComandaHandler(sessions *session.Registry) *ComandaHandler {
	return &ComandaHandler{sessions: sessions}
}

// --------- Requests ---------

type ComandaUpdateRequest struct {
	ClientName    *string          `json:"client_name,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Note          *string          `json:"note,omitempty"`
	Discount      *decimal.Decimal `json:"discount,omitempty"`
}

type ComandaItemRequest struct {
	ServiceID string `json:"service_id"`
}

type DiscountStepRequest struct {
	Steps int64 `json:"steps"`
}

// --------- Handlers ---------

func (h *ComandaHandler) Get(c *gin.Context) {
	sess := h.sessions.Get(owner(c))
	httpresp.OK(c, gin.H{
		"draft":           sess.Comanda.View(),
		"payment_methods": domain.PaymentMethods(),
	})
}

func (h *ComandaHandler) Update(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req ComandaUpdateRequest
	if !bind(c, &req) {
		return
	}

	view, err := sess.Comanda.Update(ucComanda.DraftUpdate{
		ClientName:    req.ClientName,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		Discount:      req.Discount,
	})
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ComandaHandler) AddService(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req ComandaItemRequest
	if !bind(c, &req) {
		return
	}

	view, err := sess.Comanda.AddService(c.Request.Context(), req.ServiceID)
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ComandaHandler) RemoveService(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	view, err := sess.Comanda.RemoveService(c.Param("itemId"))
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ComandaHandler) AdjustDiscount(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req DiscountStepRequest
	if !bind(c, &req) {
		return
	}
	httpresp.OK(c, sess.Comanda.AdjustDiscount(req.Steps))
}

func (h *ComandaHandler) Reset(c *gin.Context) {
	httpresp.OK(c, h.sessions.Get(owner(c)).Comanda.Reset())
}

func (h *ComandaHandler) Close(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	closed, err := sess.Comanda.Close(c.Request.Context())
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Comanda fechada!")
	httpresp.Created(c, closed)
}

func (h *ComandaHandler) History(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	rows, err := sess.Comanda.History(c.Request.Context())
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.List(c, rows)
}
