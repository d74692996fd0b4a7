package repository

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"products_service/internal/domain"
	"products_service/pkg/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

var productColumns = []string{"id", "name", "price", "available", "created_at", "updated_at"}

func newTestRepository(t *testing.T) (domain.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	gormDB, err := db.Open(postgres.New(postgres.Config{Conn: sqlDB}), logger)
	require.NoError(t, err)

	return NewPostgresProductRepository(gormDB, logger), mock
}

func TestPostgresProductRepository_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns id and marks product available", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "products"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		created, err := repo.CreateProduct(ctx, &domain.Product{ID: 50, Name: "Lamp", Price: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "Lamp", created.Name)
		assert.Equal(t, 10.0, created.Price)
		assert.True(t, created.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Constraint violation propagates", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "products"`)).
			WillReturnError(&pq.Error{Code: db.UniqueViolation, Message: "duplicate key value"})
		mock.ExpectRollback()

		created, err := repo.CreateProduct(ctx, &domain.Product{Name: "Lamp", Price: 10})
		assert.Nil(t, created)
		require.Error(t, err)
		assert.True(t, db.IsUniqueViolation(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresProductRepository_CountAvailable(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products" WHERE available = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.CountAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_ListAvailable(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Returns live rows", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE available = $1 LIMIT 2 OFFSET 20`)).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(3, "Lamp", 10.0, true, now, now).
				AddRow(4, "Desk", 120.0, true, now, now))

		products, err := repo.ListAvailable(ctx, 20, 2)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(3), products[0].ID)
		assert.Equal(t, "Desk", products[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty page is an empty slice", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE available = $1 LIMIT 10 OFFSET 100`)).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(productColumns))

		products, err := repo.ListAvailable(ctx, 100, 10)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("First page has no offset", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products" WHERE available = $1 LIMIT 10`)+`$`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(1, "Lamp", 10.0, true, now, now))

		products, err := repo.ListAvailable(ctx, 0, 10)
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnError(errors.New("connection reset"))

		products, err := repo.ListAvailable(ctx, 0, 10)
		assert.Nil(t, products)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestPostgresProductRepository_GetAvailableByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT * FROM "products" WHERE available = $1 AND id = $2`)

	t.Run("Found", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		now := time.Now()

		mock.ExpectQuery(query).
			WithArgs(true, int64(1)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(1, "Lamp", 10.0, true, now, now))

		product, err := repo.GetAvailableByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Lamp", product.Name)
		assert.True(t, product.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing or unavailable", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(query).
			WithArgs(true, int64(9)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.GetAvailableByID(ctx, 9)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Store error is not NotFound", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		product, err := repo.GetAvailableByID(ctx, 1)
		assert.Nil(t, product)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestPostgresProductRepository_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE "products" SET`)

	t.Run("Returns the written row", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "products" SET "available"=$1,"updated_at"=$2 WHERE id = $3 RETURNING *`)).
			WithArgs(false, sqlmock.AnyArg(), int64(1)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(1, "Lamp", 10.0, false, now, now))
		mock.ExpectCommit()

		changes := map[string]interface{}{"available": false, "id": int64(8)}
		product, err := repo.UpdateProduct(ctx, 1, changes)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.False(t, product.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, map[string]interface{}{"available": false, "id": int64(8)}, changes)
	})

	t.Run("Writes the patched columns only", func(t *testing.T) {
		repo, mock := newTestRepository(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "products" SET "name"=$1,"price"=$2,"updated_at"=$3 WHERE id = $4 RETURNING *`)).
			WithArgs("Desk lamp", 12.5, sqlmock.AnyArg(), int64(3)).
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(3, "Desk lamp", 12.5, true, now, now))
		mock.ExpectCommit()

		product, err := repo.UpdateProduct(ctx, 3, map[string]interface{}{"price": 12.5, "name": "Desk lamp", "id": int64(99)})
		require.NoError(t, err)
		assert.Equal(t, int64(3), product.ID)
		assert.Equal(t, "Desk lamp", product.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(productColumns))
		mock.ExpectCommit()

		product, err := repo.UpdateProduct(ctx, 77, map[string]interface{}{"name": "Lamp"})
		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Check violation propagates", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: db.CheckViolation, Message: "price_check"})
		mock.ExpectRollback()

		product, err := repo.UpdateProduct(ctx, 1, map[string]interface{}{"price": -1.0})
		assert.Nil(t, product)
		assert.True(t, db.IsIntegrityViolation(err))
		assert.False(t, db.IsUniqueViolation(err))
	})
}
