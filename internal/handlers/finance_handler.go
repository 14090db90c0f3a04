package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/currency"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/finance"
	"github.com/BruksfildServices01/studio-gestor/internal/httpresp"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	ucFinance "github.com/BruksfildServices01/studio-gestor/internal/usecase/finance"
)

type FinanceHandler struct {
	ledger   *ucFinance.Ledger
	sessions *session.Registry
}

func NewFinanceHandler(ledger *ucFinance.Ledger, sessions *session.Registry) *FinanceHandler {
	return &FinanceHandler{ledger: ledger, sessions: sessions}
}

// TransactionRequest takes value as typed by the user ("R$ 1.234,56" or
// "1234.56").
type TransactionRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Kind        string `json:"kind"`
	Value       string `json:"value"`
	Date        string `json:"date"`
	Future      bool   `json:"future"`
	DueDate     string `json:"due_date"`
	Paid        bool   `json:"paid"`
}

type PaidRequest struct {
	Paid bool `json:"paid"`
}

func (h *FinanceHandler) Overview(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	ov, err := h.ledger.Overview(c.Request.Context(), owner(c))
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, ov)
}

func (h *FinanceHandler) Categories(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"income":  domain.IncomeCategories,
		"expense": domain.ExpenseCategories,
	})
}

func (h *FinanceHandler) Add(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req TransactionRequest
	if !bind(c, &req) {
		return
	}

	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		fail(c, sess, err)
		return
	}

	tx, err := h.ledger.Add(c.Request.Context(), owner(c), domain.Entry{
		Description: req.Description,
		Category:    req.Category,
		Kind:        kind,
		Value:       currency.Parse(req.Value),
		Date:        req.Date,
		Future:      req.Future,
		DueDate:     req.DueDate,
		Paid:        req.Paid,
	})
	if err != nil {
		fail(c, sess, err)
		return
	}

	sess.Info("Transação registrada!")
	httpresp.Created(c, tx)
}

func (h *FinanceHandler) MarkPaid(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	var req PaidRequest
	if !bind(c, &req) {
		return
	}

	tx, err := h.ledger.MarkPaid(c.Request.Context(), owner(c), c.Param("id"), req.Paid)
	if err != nil {
		fail(c, sess, err)
		return
	}
	httpresp.OK(c, tx)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	sess := h.sessions.Get(owner(c))

	if err := h.ledger.Delete(c.Request.Context(), owner(c), c.Param("id")); err != nil {
		fail(c, sess, err)
		return
	}
	c.Status(http.StatusNoContent)
}
