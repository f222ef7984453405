package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/model"
	catalogrepo "github.com/muhammadheryan/humidor-club/repository/catalog"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestSQL_FindOrCreateBrandTx(t *testing.T) {
	t.Run("existing brand is returned", func(t *testing.T) {
		db, mock := newDB(t)
		repo := catalogrepo.NewCatalogRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, name FROM brand WHERE name = \?`).WithArgs("Padron").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Padron"))

		tx, err := db.Beginx()
		require.NoError(t, err)
		b, err := repo.FindOrCreateBrandTx(context.Background(), tx, "Padron")
		require.NoError(t, err)
		assert.Equal(t, &model.Brand{ID: 3, Name: "Padron"}, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing brand is inserted", func(t *testing.T) {
		db, mock := newDB(t)
		repo := catalogrepo.NewCatalogRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM brand WHERE name = \?`).WithArgs("Oliva").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
		mock.ExpectExec(`INSERT INTO brand`).WithArgs("Oliva").WillReturnResult(sqlmock.NewResult(8, 1))

		tx, err := db.Beginx()
		require.NoError(t, err)
		b, err := repo.FindOrCreateBrandTx(context.Background(), tx, "Oliva")
		require.NoError(t, err)
		assert.Equal(t, &model.Brand{ID: 8, Name: "Oliva"}, b)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost insert race falls back to lookup", func(t *testing.T) {
		db, mock := newDB(t)
		repo := catalogrepo.NewCatalogRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM brand WHERE name = \?`).WithArgs("Oliva").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
		mock.ExpectExec(`INSERT INTO brand`).WithArgs("Oliva").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectQuery(`FROM brand WHERE name = \?`).WithArgs("Oliva").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(9, "Oliva"))

		tx, err := db.Beginx()
		require.NoError(t, err)
		b, err := repo.FindOrCreateBrandTx(context.Background(), tx, "Oliva")
		require.NoError(t, err)
		assert.Equal(t, uint64(9), b.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQL_ReplaceCigarImagesTx_KeepsOrder(t *testing.T) {
	db, mock := newDB(t)
	repo := catalogrepo.NewCatalogRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM cigar_image WHERE cigar_id = \?`).WithArgs(uint64(4)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO cigar_image`).WithArgs(uint64(4), 0, "https://img/a.jpg").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO cigar_image`).WithArgs(uint64(4), 1, "https://img/b.jpg").WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	err = repo.ReplaceCigarImagesTx(context.Background(), tx, 4, []string{"https://img/a.jpg", "https://img/b.jpg"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedRepository_GetCigar(t *testing.T) {
	db, mock := newDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := catalogrepo.NewCachedCatalogRepository(catalogrepo.NewCatalogRepository(db), rdb, time.Minute)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM cigar c`).WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "line_id", "name", "vitola", "msrp_cents", "typical_street_cents",
			"created_at", "line_name", "brand_id", "brand_name"}).
			AddRow(4, 2, "1964 Anniversary", "Robusto", 1800, 1500, created, "1964 Anniversary", 1, "Padron"))
	mock.ExpectQuery(`SELECT url FROM cigar_image`).WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"url"}).AddRow("https://img/a.jpg"))

	first, err := repo.GetCigar(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, []string{"https://img/a.jpg"}, first.ImageURLs)
	assert.True(t, mr.Exists("catalog:cigar:4"))

	// served from redis, no further SQL expected
	second, err := repo.GetCigar(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.ImageURLs, second.ImageURLs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
