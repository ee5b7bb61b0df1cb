package appointment

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/bookwell/appointments-api/internal/db"
	domain "github.com/bookwell/appointments-api/internal/domain/appointment"
	"github.com/bookwell/appointments-api/internal/httperr"
	infraRepo "github.com/bookwell/appointments-api/internal/infra/repository"
	"github.com/bookwell/appointments-api/internal/logger"
	"github.com/bookwell/appointments-api/internal/models"
	"github.com/bookwell/appointments-api/internal/notify"
)

type fixture struct {
	db      *gorm.DB
	repo    *infraRepo.AppointmentGormRepository
	store   *infraRepo.NotificationGormRepository
	emitter *notify.Emitter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	dispatcher := notify.NewDispatcher(rdb, logger.NewTestLogger(t))
	t.Cleanup(dispatcher.Close)

	store := infraRepo.NewNotificationGormRepository(db)

	return &fixture{
		db:      db,
		repo:    infraRepo.NewAppointmentGormRepository(db),
		store:   store,
		emitter: notify.NewEmitter(store, dispatcher),
	}
}

func (f *fixture) user(t *testing.T, name string, roleNames ...string) *models.User {
	t.Helper()

	var roles []models.Role
	require.NoError(t, f.db.Where("name IN ?", roleNames).Find(&roles).Error)
	require.Len(t, roles, len(roleNames))

	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Permalink:    "pl-" + name,
		ActiveRoleID: roles[0].ID,
		Roles:        roles,
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) company(t *testing.T, ownerID uint) *models.Company {
	t.Helper()

	company := &models.Company{
		OwnerID:  ownerID,
		Name:     "Glow Studio",
		Timezone: "UTC",
	}
	require.NoError(t, f.db.Create(company).Error)
	return company
}

func (f *fixture) workingDay(t *testing.T, companyID uint, date string) {
	t.Helper()

	require.NoError(t, f.db.Create(&models.WorkingDay{
		CompanyID:  companyID,
		Date:       date,
		StartTime:  "09:00",
		EndTime:    "17:00",
		IsWorking:  true,
		IsBreaking: true,
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}).Error)
}

// futureDate is far enough out that the past-date checks never trip.
const futureDate = "2100-01-05"

func createInput(companyID uint, customerID *uint) CreateAppointmentInput {
	return CreateAppointmentInput{
		Title:      "Haircut",
		CompanyID:  companyID,
		CustomerID: customerID,
		Date:       futureDate,
		StartTime:  "10:00",
		Duration:   30,
		Price:      25,
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	customer := f.user(t, "carl", models.RoleCustomer)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	uc := NewCreateAppointment(f.repo, f.emitter)

	created, err := uc.Execute(ctx, owner, createInput(company.ID, &customer.ID))
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, created.Status.Name)
	assert.Equal(t, "10:30", created.EndTime)
	assert.NotEmpty(t, created.Permalink)
	assert.Equal(t, owner.ID, created.CreatorID)

	// One lifecycle event on the history.
	var rows []models.AppointmentHistory
	require.NoError(t, f.db.Where("appointment_id = ?", created.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.NotNil(t, rows[0].EventID)
	assert.Equal(t, owner.ID, rows[0].UserID)

	// The customer on the other side got notified.
	ns, err := f.store.ListForUser(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, models.ActionAppointmentCreated, ns[0].Action.Name)
	require.NotNil(t, ns[0].AppointmentID)
	assert.Equal(t, created.ID, *ns[0].AppointmentID)
}

func TestCreateAppointmentOutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	uc := NewCreateAppointment(f.repo, f.emitter)

	in := createInput(company.ID, nil)
	in.StartTime = "17:00"

	_, err := uc.Execute(context.Background(), owner, in)
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "start_time", ve.Field)
}

func TestCreateAppointmentWithoutWorkingDayRecord(t *testing.T) {
	f := newFixture(t)

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)

	uc := NewCreateAppointment(f.repo, f.emitter)

	_, err := uc.Execute(context.Background(), owner, createInput(company.ID, nil))
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "date", ve.Field)
}

func TestCreateAppointmentUnknownCompany(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner", models.RoleOwner)

	uc := NewCreateAppointment(f.repo, f.emitter)

	_, err := uc.Execute(context.Background(), owner, createInput(999, nil))
	assert.True(t, httperr.IsBusiness(err, "company_not_found"))
}

func (f *fixture) acceptedAppointment(t *testing.T, actor *models.User, in CreateAppointmentInput) *models.Appointment {
	t.Helper()
	ctx := context.Background()

	created, err := NewCreateAppointment(f.repo, f.emitter).Execute(ctx, actor, in)
	require.NoError(t, err)

	id, err := f.repo.StatusIDByName(ctx, models.StatusAccepted)
	require.NoError(t, err)
	created.StatusID = id
	require.NoError(t, f.repo.Update(ctx, created))

	accepted, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusAccepted, accepted.Status.Name)
	return accepted
}

func TestUpdateSenseChangeRevokesAcceptance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	customer := f.user(t, "carl", models.RoleCustomer)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	ap := f.acceptedAppointment(t, owner, createInput(company.ID, &customer.ID))

	price := 40.0
	updated, err := NewUpdateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, ap.ID, domain.UpdateInput{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, updated.Status.Name)
	assert.Equal(t, 40.0, updated.Price)

	var rows []models.AppointmentHistory
	require.NoError(t, f.db.
		Where("appointment_id = ? AND field = ?", ap.ID, "price").
		Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "25", rows[0].Prev)
	assert.Equal(t, "40", rows[0].Current)
}

func TestUpdateCosmeticChangeKeepsAcceptance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	ap := f.acceptedAppointment(t, owner, createInput(company.ID, nil))

	title := "Haircut + beard"
	updated, err := NewUpdateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, ap.ID, domain.UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, models.StatusAccepted, updated.Status.Name)
	assert.Equal(t, "Haircut + beard", updated.Title)
}

func TestUpdateNoChangesIsANoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	created, err := NewCreateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, createInput(company.ID, nil))
	require.NoError(t, err)

	title := created.Title
	_, err = NewUpdateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, created.ID, domain.UpdateInput{Title: &title})
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.db.Model(&models.AppointmentHistory{}).
		Where("appointment_id = ? AND event_id IS NULL", created.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateRescheduleRevalidatesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	created, err := NewCreateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, createInput(company.ID, nil))
	require.NoError(t, err)

	// Pushing the start into the break must fail with the slot error.
	start := "12:15"
	_, err = NewUpdateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, created.ID, domain.UpdateInput{StartTime: &start})
	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "start_time", ve.Field)
}

func TestAcceptRejectsNonPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	ap := f.acceptedAppointment(t, owner, createInput(company.ID, nil))

	_, err := NewAcceptAppointment(f.repo, f.emitter).Execute(ctx, owner, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestFinishRequiresAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	created, err := NewCreateAppointment(f.repo, f.emitter).
		Execute(ctx, owner, createInput(company.ID, nil))
	require.NoError(t, err)

	_, err = NewFinishAppointment(f.repo, f.emitter).Execute(ctx, owner, created.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	finished, err := NewAcceptAppointment(f.repo, f.emitter).Execute(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusAccepted, finished.Status.Name)

	finished, err = NewFinishAppointment(f.repo, f.emitter).Execute(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, finished.Status.Name)
}

func TestListMergesPersonalRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	both := f.user(t, "both", models.RoleStaff, models.RoleCustomer)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	createUC := NewCreateAppointment(f.repo, f.emitter)

	asStaff := createInput(company.ID, nil)
	asStaff.StaffID = &both.ID
	_, err := createUC.Execute(ctx, owner, asStaff)
	require.NoError(t, err)

	asCustomer := createInput(company.ID, &both.ID)
	asCustomer.StartTime = "14:00"
	_, err = createUC.Execute(ctx, owner, asCustomer)
	require.NoError(t, err)

	aps, err := NewListAppointments(f.repo).Execute(ctx, both, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, aps, 2)

	// The owner sees the whole company scope.
	aps, err = NewListAppointments(f.repo).Execute(ctx, owner, domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, aps, 2)
}

func TestDeleteHidesForResolvedRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner", models.RoleOwner)
	staff := f.user(t, "staff", models.RoleStaff)
	company := f.company(t, owner.ID)
	f.workingDay(t, company.ID, futureDate)

	in := createInput(company.ID, nil)
	in.StaffID = &staff.ID
	created, err := NewCreateAppointment(f.repo, f.emitter).Execute(ctx, owner, in)
	require.NoError(t, err)

	require.NoError(t, NewDeleteAppointment(f.repo).Execute(ctx, staff, created.ID))

	ap, err := f.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, ap.DeletedByStaffAt)
	assert.Nil(t, ap.DeletedByOwnerAt)
}
