package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-gestor/internal/app"
	"github.com/BruksfildServices01/studio-gestor/internal/config"
	"github.com/BruksfildServices01/studio-gestor/internal/handlers"
	"github.com/BruksfildServices01/studio-gestor/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, a *app.App, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(a.Profiles, a.Plans, a.Sessions)
	profileHandler := handlers.NewProfileHandler(a.Profiles, a.Objects, a.Sessions)
	setupHandler := handlers.NewSetupHandler(a.Profiles, a.Setup, a.Sessions)
	subscriptionHandler := handlers.NewSubscriptionHandler(a.Plans, a.Sessions)

	dashboardHandler := handlers.NewDashboardHandler(a.Dashboard, a.Sessions)
	appointmentHandler := handlers.NewAppointmentHandler(a.Sessions, a.Services)
	clientHandler := handlers.NewClientHandler(a.Clients, a.Sessions)
	serviceHandler := handlers.NewServiceHandler(a.Services, a.Sessions)
	comandaHandler := handlers.NewComandaHandler(a.Sessions)
	financeHandler := handlers.NewFinanceHandler(a.Ledger, a.Sessions)
	staffHandler := handlers.NewStaffHandler(a.Team, a.Sessions)
	backupHandler := handlers.NewBackupHandler(a.Backup, a.Sessions)

	auditLogsHandler := handlers.NewAuditLogsHandler(a.AuditLog)

	view := func(name string) gin.HandlerFunc {
		return middleware.RequireView(a.Plans, name)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// SESSÃO
		// ------------------------------
		secured.GET("/me", meHandler.GetMe)
		secured.PUT("/me/view", meHandler.Navigate)
		secured.PUT("/me/theme", meHandler.SetTheme)
		secured.GET("/me/notices", meHandler.Notices)

		// ------------------------------
		// CONFIGURAÇÕES (sempre liberadas)
		// ------------------------------
		settings := secured.Group("/me", view("settings"))
		settings.GET("/profile", profileHandler.Get)
		settings.PATCH("/profile", profileHandler.Update)
		settings.POST("/profile/logo", profileHandler.UploadLogo)
		settings.GET("/setup", setupHandler.Start)
		settings.POST("/setup/complete", setupHandler.Complete)
		settings.POST("/setup/:action", setupHandler.Step)
		settings.POST("/backups", backupHandler.Create)
		settings.GET("/audit-logs", auditLogsHandler.List)

		plan := secured.Group("/me/subscription", view("subscription"))
		plan.GET("", subscriptionHandler.Get)
		plan.POST("", subscriptionHandler.Subscribe)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		dash := secured.Group("/me", view("dashboard"))
		dash.GET("/dashboard", dashboardHandler.Today)
		dash.POST("/clients/:id/birthday-greeting", dashboardHandler.SendBirthdayGreeting)

		// ------------------------------
		// AGENDA
		// ------------------------------
		agenda := secured.Group("/me/appointments", view("agenda"))
		agenda.GET("", appointmentHandler.ListDay)
		agenda.POST("", appointmentHandler.Create)
		agenda.POST("/reorder", appointmentHandler.Reorder)
		agenda.PUT("/:id", appointmentHandler.Edit)
		agenda.PATCH("/:id/status", appointmentHandler.ChangeStatus)
		agenda.POST("/:id/reschedule", appointmentHandler.Reschedule)
		agenda.POST("/:id/reminder", appointmentHandler.SendReminder)

		// ------------------------------
		// CLIENTES / SERVIÇOS
		// ------------------------------
		cl := secured.Group("/me/clients", view("clients"))
		cl.GET("", clientHandler.List)
		cl.POST("", clientHandler.Create)
		cl.PUT("/:id", clientHandler.Update)
		cl.DELETE("/:id", clientHandler.Delete)

		svc := secured.Group("/me/services", view("services"))
		svc.GET("", serviceHandler.List)
		svc.POST("", serviceHandler.Create)
		svc.PATCH("/:id", serviceHandler.Update)
		svc.DELETE("/:id", serviceHandler.Delete)

		// ------------------------------
		// COMANDA
		// ------------------------------
		cmd := secured.Group("/me/comanda", view("comanda"))
		cmd.GET("", comandaHandler.Get)
		cmd.PATCH("", comandaHandler.Update)
		cmd.POST("/items", comandaHandler.AddService)
		cmd.DELETE("/items/:itemId", comandaHandler.RemoveService)
		cmd.POST("/discount", comandaHandler.AdjustDiscount)
		cmd.POST("/reset", comandaHandler.Reset)
		cmd.POST("/close", comandaHandler.Close)
		cmd.GET("/history", comandaHandler.History)

		// ------------------------------
		// FINANCEIRO
		// ------------------------------
		fin := secured.Group("/me/finance", view("finance"))
		fin.GET("", financeHandler.Overview)
		fin.GET("/categories", financeHandler.Categories)
		fin.POST("/transactions", financeHandler.Add)
		fin.PATCH("/transactions/:id/paid", financeHandler.MarkPaid)
		fin.DELETE("/transactions/:id", financeHandler.Delete)

		// ------------------------------
		// EQUIPE
		// ------------------------------
		team := secured.Group("/me/staff", view("staff"))
		team.GET("", staffHandler.List)
		team.POST("", staffHandler.Add)
		team.DELETE("/:id", staffHandler.Remove)
	}
}
