package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodiehub/entity"
	"foodiehub/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Jane@Example.com", "secret1", "Jane", "Doe", "555-0101")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)

	_, err = svc.Register("jane@example.com", "other", "J", "D", "")
	assert.Error(t, err, "duplicate email must be rejected")

	token, got, err := svc.Login("jane@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	_, _, err = svc.Login("jane@example.com", "wrong")
	assert.Error(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("jane@example.com", "secret1", "Jane", "Doe", "555-0101")
	require.NoError(t, err)

	got, err := svc.UpdateProfile(user.ID, map[string]any{"phone_number": "555-0199"})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.PhoneNumber)
	assert.Equal(t, "Jane", got.FirstName, "untouched fields keep their value")
	assert.Equal(t, "Doe", got.LastName)

	got, err = svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-0199", got.PhoneNumber)
}
