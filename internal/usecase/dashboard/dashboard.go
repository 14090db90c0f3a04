package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	apptdomain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/messaging"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/clients"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
)

type Summary struct {
	Date          string          `json:"date"`
	TodayEarnings decimal.Decimal `json:"today_earnings"`
	Attended      int             `json:"attended"`
	Scheduled     int             `json:"scheduled"`
	Birthdays     []models.Client `json:"birthdays"`
}

type Dashboard struct {
	appointments apptdomain.Repository
	clients      *clients.Service
	profiles     *profile.Service
	gateway      messaging.Gateway
	audit        *audit.Dispatcher
	now          func() time.Time
}

func New(
	appointments apptdomain.Repository,
	clientSvc *clients.Service,
	profiles *profile.Service,
	gateway messaging.Gateway,
	auditor *audit.Dispatcher,
) *Dashboard {
	return &Dashboard{
		appointments: appointments,
		clients:      clientSvc,
		profiles:     profiles,
		gateway:      gateway,
		audit:        auditor,
		now:          time.Now,
	}
}

// Today sums what the owner earned from clients marked present today and
// lists today's birthdays.
func (d *Dashboard) Today(ctx context.Context, owner string) (*Summary, error) {
	loc := d.profiles.Location(ctx, owner)
	now := d.now().In(loc)
	date := timezone.DateString(now)

	list, err := d.appointments.ListForDate(ctx, owner, date)
	if err != nil {
		return nil, httperr.FetchError{Err: err}
	}

	sum := &Summary{Date: date, TodayEarnings: decimal.Zero}
	for _, ap := range list {
		switch apptdomain.StatusOf(ap.Status) {
		case apptdomain.StatusPresent:
			sum.Attended++
			sum.TodayEarnings = sum.TodayEarnings.Add(ap.TotalValue)
		case apptdomain.StatusScheduled:
			sum.Scheduled++
		}
	}

	sum.Birthdays, err = d.clients.BirthdaysOn(ctx, owner, now)
	if err != nil {
		return nil, err
	}
	if sum.Birthdays == nil {
		sum.Birthdays = []models.Client{}
	}
	return sum, nil
}

// SendBirthdayGreeting messages one client with the birthday template
// signed with the establishment name.
func (d *Dashboard) SendBirthdayGreeting(ctx context.Context, owner, clientID string) error {
	if d.gateway == nil {
		return httperr.MessagingError{Reason: "gateway_not_configured"}
	}

	cl, err := d.clients.Get(ctx, owner, clientID)
	if err != nil {
		return err
	}

	establishment := ""
	if p, err := d.profiles.Get(ctx, owner); err == nil {
		establishment = p.EstablishmentName
	}

	msg := messaging.BirthdayMessage(cl.Name, establishment)
	if err := d.gateway.Send(ctx, cl.Phone, msg); err != nil {
		if httperr.IsMessaging(err) {
			return err
		}
		return httperr.MessagingError{Reason: "send_failed", Detail: err.Error()}
	}

	d.audit.Dispatch(audit.Event{
		Owner:    owner,
		Action:   "birthday_sent",
		Entity:   "client",
		EntityID: cl.ID,
	})
	return nil
}

// GreetBirthdays sends the greeting to every client born on today's date
// and returns how many messages went out. Individual failures are skipped.
func (d *Dashboard) GreetBirthdays(ctx context.Context, owner string) (int, error) {
	now := d.now().In(d.profiles.Location(ctx, owner))

	list, err := d.clients.BirthdaysOn(ctx, owner, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, cl := range list {
		if cl.Phone == "" {
			continue
		}
		if err := d.SendBirthdayGreeting(ctx, owner, cl.ID); err != nil {
			continue
		}
		sent++
	}
	return sent, nil
}
