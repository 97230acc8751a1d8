package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/enums"
)

func TestSalesBetweenCountsOnlySalesInsideTheWindow(t *testing.T) {
	repo, conn := newTestAnalyticsRepo(t)
	ctx := context.Background()

	seedSalesperson(t, conn, 1, "Ana")
	seedSalesperson(t, conn, 2, "Bruno")

	// Inside the window.
	seedOrder(t, conn, 100, day(2026, 3, 10), enums.OrderKindOrder, 1)
	seedOrder(t, conn, 101, day(2026, 3, 15), enums.OrderKindOrder, 1)
	seedOrder(t, conn, 102, day(2026, 3, 31), enums.OrderKindOrder, 2)
	// Proposals never count.
	seedOrder(t, conn, 103, day(2026, 3, 12), enums.OrderKindProposal, 1)
	// Outside the window.
	seedOrder(t, conn, 104, day(2026, 2, 28), enums.OrderKindOrder, 1)
	seedOrder(t, conn, 105, day(2026, 4, 1), enums.OrderKindOrder, 2)

	rows, err := repo.SalesBetween(ctx, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)

	require.Equal(t, []SalespersonSales{
		{Code: 1, Name: "Ana", Count: 2},
		{Code: 2, Name: "Bruno", Count: 1},
	}, rows)
}

func TestSalesBetweenEndDayIsInclusive(t *testing.T) {
	repo, conn := newTestAnalyticsRepo(t)
	ctx := context.Background()

	seedSalesperson(t, conn, 1, "Ana")
	seedOrder(t, conn, 100, day(2026, 3, 31), enums.OrderKindOrder, 1)

	rows, err := repo.SalesBetween(ctx, day(2026, 3, 31), day(2026, 3, 31))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].Count)
}

func TestSalesBetweenOrdersByCountDescending(t *testing.T) {
	repo, conn := newTestAnalyticsRepo(t)
	ctx := context.Background()

	seedSalesperson(t, conn, 1, "Ana")
	seedSalesperson(t, conn, 2, "Bruno")

	seedOrder(t, conn, 100, day(2026, 3, 10), enums.OrderKindOrder, 2)
	seedOrder(t, conn, 101, day(2026, 3, 11), enums.OrderKindOrder, 2)
	seedOrder(t, conn, 102, day(2026, 3, 12), enums.OrderKindOrder, 1)

	rows, err := repo.SalesBetween(ctx, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Code)
	require.Equal(t, int64(2), rows[0].Count)
	require.Equal(t, 1, rows[1].Code)
}

func TestSalesBetweenEmptyWindowReturnsNoRows(t *testing.T) {
	repo, conn := newTestAnalyticsRepo(t)
	ctx := context.Background()

	seedSalesperson(t, conn, 1, "Ana")

	rows, err := repo.SalesBetween(ctx, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedSalesperson(t *testing.T, conn *gorm.DB, code int, name string) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Salesperson{Code: code, Name: name}).Error)
}

func seedOrder(t *testing.T, conn *gorm.DB, number int64, placedOn time.Time, kind enums.OrderKind, salesperson int) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Order{
		OrderNumber:     number,
		PlacedOn:        placedOn,
		Kind:            kind,
		CustomerCode:    7,
		SalespersonCode: salesperson,
		PriceTier:       1,
		Status:          enums.OrderStatusSale,
		FreightTerm:     enums.FreightTermFree,
		Ecommerce:       true,
	}).Error)
}

func newTestAnalyticsRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(&models.Salesperson{}, &models.Order{}, &models.OrderItem{}))

	return NewRepository(conn), conn
}
