package company

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
)

func TestFreeShippingMinimum(t *testing.T) {
	repo, conn := newTestCompanyRepo(t)

	require.NoError(t, conn.Create(&models.Company{
		ID:                  1,
		Name:                "Softline",
		FreeShippingMinimum: decimal.RequireFromString("350.00"),
	}).Error)

	minimum, err := repo.FreeShippingMinimum(context.Background())
	require.NoError(t, err)
	require.True(t, minimum.Equal(decimal.RequireFromString("350.00")))
}

func TestFreeShippingMinimumWithoutCompanyRow(t *testing.T) {
	repo, _ := newTestCompanyRepo(t)

	minimum, err := repo.FreeShippingMinimum(context.Background())
	require.NoError(t, err)
	require.True(t, minimum.IsZero())
}

func newTestCompanyRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Company{}))

	return NewRepository(conn), conn
}
