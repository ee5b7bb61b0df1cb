package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookwell/appointments-api/internal/config"
	"github.com/bookwell/appointments-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema and seeds the closed enumerations. It is also
// used by tests against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Company{},
		&models.Service{},
		&models.Industry{},
		&models.IndividualUserIndustry{},
		&models.IndustryCustomer{},
		&models.CustomerInvitation{},
		&models.IndividualCustomerInvitation{},
		&models.StaffInvitation{},
		&models.WorkingDay{},
		&models.AppointmentStatus{},
		&models.Appointment{},
		&models.HistoryEvent{},
		&models.AppointmentHistory{},
		&models.NotificationAction{},
		&models.Notification{},
	); err != nil {
		return err
	}

	return seedEnums(db)
}

func seedEnums(db *gorm.DB) error {
	for _, name := range []string{
		models.RoleOwner,
		models.RoleStaff,
		models.RoleCustomer,
		models.RoleIndividual,
	} {
		if err := db.FirstOrCreate(&models.Role{}, models.Role{Name: name}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusCancelled,
		models.StatusFinished,
	} {
		if err := db.FirstOrCreate(&models.AppointmentStatus{}, models.AppointmentStatus{Name: name}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{
		models.EventCreated,
		models.EventAccepted,
		models.EventCancelled,
		models.EventFinished,
	} {
		if err := db.FirstOrCreate(&models.HistoryEvent{}, models.HistoryEvent{Name: name}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{
		models.ActionAppointmentCreated,
		models.ActionAppointmentAccepted,
		models.ActionAppointmentCancelled,
		models.ActionAppointmentFinished,
		models.ActionAppointmentUpdated,
		models.ActionCompanyCustomerInvitation,
		models.ActionIndividualCustomerInvitation,
		models.ActionCompanyStaffInvitation,
		models.ActionIndividualCustomerInvitationAccepted,
	} {
		if err := db.FirstOrCreate(&models.NotificationAction{}, models.NotificationAction{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
