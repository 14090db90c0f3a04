package messaging

import (
	"fmt"
	"strings"
)

const defaultEstablishment = "nosso estúdio"

// ReminderMessage builds the appointment confirmation text. date is
// "2006-01-02", hhmm is "15:04".
func ReminderMessage(clientName, date, hhmm string) string {
	return fmt.Sprintf(
		"Oi, %s! Tudo pronto para te receber no salão 💇‍♀️\n📍 Seu horário é: %s, às %s\nPosso confirmar sua presença?",
		clientName, dayMonth(date), hhmm,
	)
}

func BirthdayMessage(clientName, establishmentName string) string {
	if strings.TrimSpace(establishmentName) == "" {
		establishmentName = defaultEstablishment
	}
	return fmt.Sprintf(
		"🎉 Feliz Aniversário, %s!\nQue seu novo ciclo venha com muita saúde, conquistas e bons momentos! ✨\n\nCom carinho,\n%s",
		clientName, establishmentName,
	)
}

// dayMonth turns "2026-10-16" into "16/10".
func dayMonth(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1]
}
