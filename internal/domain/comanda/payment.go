package comanda

import (
	"strings"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
	PaymentPix    PaymentMethod = "pix"
)

var labels = map[PaymentMethod]string{
	PaymentCash:   "Dinheiro",
	PaymentDebit:  "Débito",
	PaymentCredit: "Crédito",
	PaymentPix:    "PIX",
}

// PaymentMethods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentDebit, PaymentCredit, PaymentPix}
}

func (p PaymentMethod) Label() string {
	return labels[p]
}

// ParsePaymentMethod accepts the code or the Portuguese label.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, m := range PaymentMethods() {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Label()) {
			return m, nil
		}
	}
	return "", httperr.ErrValidation("payment_method")
}
