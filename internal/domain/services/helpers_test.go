package services_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	"github.com/ajju-1209/hostel-management/internal/domain/services"
	"github.com/ajju-1209/hostel-management/internal/infrastructure/database"
)

// newTestDB 每个测试使用独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db, "auto"))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	u := &models.User{
		Email:       email,
		FirstName:   "First",
		LastName:    "Last",
		PhoneNumber: "555-0100",
		Address:     "Block A",
		UserRole:    role,
	}
	require.NoError(t, services.NewUserService(db).CreateUser(context.Background(), u, "password"))
	return u
}

// fakeOTP 按顺序返回预设的验证码，用完后重复最后一个
type fakeOTP struct {
	codes []string
	calls int
}

func (f *fakeOTP) GenerateOTP() (string, error) {
	i := f.calls
	if i >= len(f.codes) {
		i = len(f.codes) - 1
	}
	f.calls++
	return f.codes[i], nil
}
