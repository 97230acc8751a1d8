package products

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db/models"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/pagination"
)

func TestFindByCode(t *testing.T) {
	repo, _ := newTestProductRepo(t, 3)

	product, err := repo.FindByCode(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, product.Code)
	require.Equal(t, "Product 2", product.Name)
}

func TestFindByCodeMissing(t *testing.T) {
	repo, _ := newTestProductRepo(t, 1)

	_, err := repo.FindByCode(context.Background(), 99)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestListPaginatesByCode(t *testing.T) {
	repo, _ := newTestProductRepo(t, 5)
	ctx := context.Background()

	first, next, err := repo.List(ctx, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, 1, first[0].Code)
	require.Equal(t, 2, first[1].Code)
	require.NotEmpty(t, next)

	second, next, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, 3, second[0].Code)
	require.NotEmpty(t, next)

	last, next, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, last, 1)
	require.Equal(t, 5, last[0].Code)
	require.Empty(t, next)
}

func TestListSkipsInactiveProducts(t *testing.T) {
	repo, conn := newTestProductRepo(t, 3)

	require.NoError(t, conn.Model(&models.Product{}).
		Where("code = ?", 2).
		Update("is_active", false).Error)

	rows, _, err := repo.List(context.Background(), pagination.Params{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotEqual(t, 2, row.Code)
	}
}

func TestListRejectsBadCursor(t *testing.T) {
	repo, _ := newTestProductRepo(t, 1)

	_, _, err := repo.List(context.Background(), pagination.Params{Cursor: "not-a-code"})
	require.Error(t, err)
}

func TestIncrementReservedStockAccumulates(t *testing.T) {
	repo, conn := newTestProductRepo(t, 1)
	ctx := context.Background()

	require.NoError(t, repo.IncrementReservedStock(ctx, 1, 2))
	require.NoError(t, repo.IncrementReservedStock(ctx, 1, 3))

	var product models.Product
	require.NoError(t, conn.Where("code = ?", 1).First(&product).Error)
	require.Equal(t, 5, product.ReservedStock)
}

func TestIncrementReservedStockUnknownCode(t *testing.T) {
	repo, _ := newTestProductRepo(t, 1)

	err := repo.IncrementReservedStock(context.Background(), 99, 1)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func newTestProductRepo(t *testing.T, count int) (*Repository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Product{}))

	for i := 1; i <= count; i++ {
		require.NoError(t, conn.Create(&models.Product{
			Code:     i,
			Name:     fmt.Sprintf("Product %d", i),
			Price1:   decimal.NewFromInt(int64(i * 10)),
			Stock:    100,
			IsActive: true,
		}).Error)
	}

	return NewRepository(conn), conn
}
