package session

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is a message shown once to the owner.
type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// NoticeFor turns an operation error into the text the owner reads.
func NoticeFor(err error) string {
	var (
		ve httperr.ValidationError
		fe httperr.FetchError
		pe httperr.PersistenceError
		me httperr.MessagingError
		be httperr.BusinessError
	)

	switch {
	case errors.As(err, &ve):
		return "Preencha os campos obrigatórios."
	case errors.As(err, &fe):
		return "Erro ao carregar dados: " + fe.Error()
	case errors.As(err, &pe):
		return "Erro ao salvar: " + pe.Error()
	case errors.As(err, &me):
		if me.Detail != "" {
			return "Erro ao enviar mensagem: " + me.Detail
		}
		return "Erro ao enviar mensagem: " + me.Reason
	case httperr.IsNotFound(err):
		return "Registro não encontrado."
	case errors.As(err, &be):
		if msg, ok := businessMessages[be.Code]; ok {
			return msg
		}
		return be.Code
	}
	return "Erro inesperado."
}

var businessMessages = map[string]string{
	"reorder_locked":       "Agendamentos já atendidos não podem ser movidos.",
	"invalid_plan":         "Plano inválido.",
	"team_plan_required":   "Disponível apenas no plano Equipe.",
	"staff_limit_reached":  "Limite de funcionários atingido.",
	"plan_expired":         "Seu período de teste terminou.",
	"checkout_unavailable": "Não foi possível abrir o pagamento.",
	"last_step":            "Você já está na última etapa.",
}
