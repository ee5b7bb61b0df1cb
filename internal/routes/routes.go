package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/appointments-api/internal/config"
	"github.com/bookwell/appointments-api/internal/handlers"
	infraRepo "github.com/bookwell/appointments-api/internal/infra/repository"
	"github.com/bookwell/appointments-api/internal/middleware"
	"github.com/bookwell/appointments-api/internal/notify"
	ucAppointment "github.com/bookwell/appointments-api/internal/usecase/appointment"
	ucNotification "github.com/bookwell/appointments-api/internal/usecase/notification"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	dispatcher *notify.Dispatcher,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	notificationRepo := infraRepo.NewNotificationGormRepository(db)

	emitter := notify.NewEmitter(notificationRepo, dispatcher)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, emitter)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, emitter)
	acceptAppointmentUC := ucAppointment.NewAcceptAppointment(appointmentRepo, emitter)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, emitter)
	finishAppointmentUC := ucAppointment.NewFinishAppointment(appointmentRepo, emitter)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo)
	appointmentRoleUC := ucAppointment.NewGetAppointmentRole(appointmentRepo)
	listStatusesUC := ucAppointment.NewListStatuses(appointmentRepo)

	// ======================================================
	// USE CASES — NOTIFICATIONS
	// ======================================================
	getNotificationUC := ucNotification.NewGetNotification(notificationRepo)
	listNotificationsUC := ucNotification.NewListNotifications(notificationRepo)
	makeSeenUC := ucNotification.NewMakeSeen(notificationRepo)
	makeReadUC := ucNotification.NewMakeRead(notificationRepo)
	destroyNotificationUC := ucNotification.NewDestroyNotification(notificationRepo)
	acceptInvitationUC := ucNotification.NewAcceptIndividualCustomerInvitation(notificationRepo, emitter)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		log,
		createAppointmentUC,
		updateAppointmentUC,
		acceptAppointmentUC,
		cancelAppointmentUC,
		finishAppointmentUC,
		listAppointmentsUC,
		deleteAppointmentUC,
		appointmentRoleUC,
		listStatusesUC,
	)

	notificationHandler := handlers.NewNotificationHandler(
		log,
		getNotificationUC,
		listNotificationsUC,
		makeSeenUC,
		makeReadUC,
		destroyNotificationUC,
		acceptInvitationUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.Index)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointment-statuses", appointmentHandler.Statuses)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.GET("/appointments/:id/role", appointmentHandler.GetRole)
			secured.PATCH("/appointments/:id/accept", appointmentHandler.Accept)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/finish", appointmentHandler.Finish)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/seen", notificationHandler.MakeSeen)
			secured.DELETE("/notifications", notificationHandler.DestroyMultiple)
			secured.GET("/notifications/:id", notificationHandler.GetByID)
			secured.PATCH("/notifications/:id/read", notificationHandler.MakeRead)
			secured.DELETE("/notifications/:id", notificationHandler.Destroy)

			// ------------------------------
			// INVITATIONS
			// ------------------------------
			secured.POST("/invitations/individual-customer/:token/accept", notificationHandler.AcceptIndividualCustomerInvitation)
		}
	}
}
