package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/bookwell/appointments-api/internal/db"
	"github.com/bookwell/appointments-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, roleNames ...string) *models.User {
	t.Helper()

	var roles []models.Role
	require.NoError(t, db.Where("name IN ?", roleNames).Find(&roles).Error)
	require.Len(t, roles, len(roleNames))

	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Permalink:    "pl-" + name,
		ActiveRoleID: roles[0].ID,
		Roles:        roles,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCompany(t *testing.T, db *gorm.DB, ownerID uint) *models.Company {
	t.Helper()

	company := &models.Company{
		OwnerID:  ownerID,
		Name:     "Glow Studio",
		Timezone: "UTC",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func statusID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	id, err := NewAppointmentGormRepository(db).StatusIDByName(context.Background(), name)
	require.NoError(t, err)
	return id
}
