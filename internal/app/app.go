// Package app wires the infrastructure singletons and use cases shared by
// the API server and the worker.
package app

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	"github.com/BruksfildServices01/studio-gestor/internal/config"
	infraRepo "github.com/BruksfildServices01/studio-gestor/internal/infra/repository"
	"github.com/BruksfildServices01/studio-gestor/internal/messaging"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/payment"
	"github.com/BruksfildServices01/studio-gestor/internal/session"
	"github.com/BruksfildServices01/studio-gestor/internal/storage"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/timezone"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/backup"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/catalog"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/clients"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/comanda"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/dashboard"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/finance"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/setup"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/staff"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/subscription"
)

type App struct {
	DB       *gorm.DB
	AuditLog *audit.Logger
	Audit    *audit.Dispatcher
	Gateway  messaging.Gateway
	Objects  storage.ObjectStore

	Profiles     *profile.Service
	Plans        *subscription.Service
	Clients      *clients.Service
	Services     *catalog.Services
	Ledger       *finance.Ledger
	Team         *staff.Team
	Dashboard    *dashboard.Dashboard
	Setup        *setup.CompleteSetup
	Backup       *backup.CreateBackup
	Sessions     *session.Registry
	Appointments *infraRepo.AppointmentRepository
}

// New builds the application on db (relational tables) and kv (local
// collections).
func New(db *gorm.DB, kv store.KV, cfg *config.Config) *App {
	a := &App{DB: db}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	a.AuditLog = audit.New(db)
	a.Audit = audit.NewDispatcher(a.AuditLog)
	a.Gateway = NewGateway(cfg)
	a.Objects = NewObjectStore(cfg)
	checkout := NewCheckout(cfg)

	profilesStore := store.NewGormStore[models.Profile](db)
	servicesStore := store.NewGormStore[models.Service](db)
	clientsStore := store.NewGormStore[models.Client](db)
	appointmentsStore := store.NewGormStore[models.Appointment](db)

	comandas := store.NewLocalStore[models.Comanda](kv, "comandas")
	transactions := store.NewLocalStore[models.Transaction](kv, "transactions")
	employees := store.NewLocalStore[models.Employee](kv, "staff")
	preferences := store.NewLocalStore[models.Preferences](kv, "preferences")

	a.Appointments = infraRepo.NewAppointmentRepository(appointmentsStore)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	a.Profiles = profile.NewService(profilesStore, cfg.TrialDays)
	a.Plans = subscription.NewService(a.Profiles, checkout, a.Audit)
	a.Clients = clients.NewService(clientsStore)
	a.Services = catalog.NewServices(servicesStore)
	a.Ledger = finance.NewLedger(transactions, a.Audit, a.Profiles)
	a.Team = staff.NewTeam(employees, a.Plans)
	a.Dashboard = dashboard.New(a.Appointments, a.Clients, a.Profiles, a.Gateway, a.Audit)
	a.Setup = setup.NewCompleteSetup(a.Profiles, servicesStore, a.Audit)
	a.Backup = backup.NewCreateBackup(a.Objects, a.Audit, comandas, transactions, employees, preferences)

	// ======================================================
	// 🪟 SESSIONS
	// ======================================================
	a.Sessions = session.NewRegistry(preferences, func(owner string) (*appointment.Schedule, *comanda.Builder) {
		loc := timezone.Location(cfg.Timezone)
		if p, err := a.Profiles.Get(context.Background(), owner); err == nil {
			loc = timezone.Location(p.Timezone)
		}
		sched := appointment.NewSchedule(owner, a.Appointments, a.Gateway, a.Audit, loc)
		builder := comanda.NewBuilder(owner, servicesStore, comandas, a.Audit)
		return sched, builder
	})

	return a
}

// Close flushes pending audit events.
func (a *App) Close() {
	a.Audit.Close()
}

// NewGateway picks the messaging provider. Nil means messaging is off.
func NewGateway(cfg *config.Config) messaging.Gateway {
	switch cfg.MessagingProvider {
	case "twilio":
		if cfg.TwilioAccountSID == "" {
			log.Println("messaging: twilio selected but TWILIO_ACCOUNT_SID is empty")
			return nil
		}
		return messaging.NewTwilioGateway(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	default:
		if cfg.WebhookURL == "" {
			log.Println("messaging: no webhook configured, reminders disabled")
			return nil
		}
		return messaging.NewWebhookGateway(cfg.WebhookURL, cfg.MessagingTimeout)
	}
}

// NewObjectStore returns nil when no bucket is configured.
func NewObjectStore(cfg *config.Config) storage.ObjectStore {
	if !cfg.ObjectStorageEnabled() {
		return nil
	}
	return storage.NewS3Store(storage.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
}

// NewCheckout returns nil when no Mercado Pago token is configured.
func NewCheckout(cfg *config.Config) payment.Provider {
	if cfg.MercadoPagoToken == "" {
		return nil
	}
	mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("payment: %v", err)
		return nil
	}
	return mp
}
