package humidor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/model"
	humidorrepo "github.com/muhammadheryan/humidor-club/repository/humidor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (humidorrepo.HumidorRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return humidorrepo.NewHumidorRepository(sqlx.NewDb(db, "mysql")), mock
}

func newExactRepo(t *testing.T) (humidorrepo.HumidorRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return humidorrepo.NewHumidorRepository(sqlx.NewDb(db, "mysql")), mock
}

// The clamps read the pre-update quantity and available_for_sale, so their
// position ahead of the quantity assignment is part of the contract.
const wantSmokeStatement = `UPDATE humidor_item
SET available_for_trade = LEAST(available_for_trade, GREATEST(quantity - ? - available_for_sale, 0)),
    available_for_sale = LEAST(available_for_sale, quantity - ?),
    quantity = quantity - ?,
    smoked_count = smoked_count + ?,
    last_smoked_date = ?,
    updated_at = ?
WHERE id = ? AND user_id = ? AND quantity >= ?`

func TestSQL_Smoke(t *testing.T) {
	at := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)

	t.Run("applied when enough quantity", func(t *testing.T) {
		repo, mock := newExactRepo(t)
		mock.ExpectExec(wantSmokeStatement).
			WithArgs(int64(3), int64(3), int64(3), int64(3), at, at, uint64(7), uint64(1), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Smoke(context.Background(), &model.SmokeUpdate{ItemID: 7, UserID: 1, Count: 3, SmokedAt: at})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched means insufficient quantity", func(t *testing.T) {
		repo, mock := newExactRepo(t)
		mock.ExpectExec(wantSmokeStatement).
			WithArgs(int64(4), int64(4), int64(4), int64(4), at, at, uint64(7), uint64(1), int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Smoke(context.Background(), &model.SmokeUpdate{ItemID: 7, UserID: 1, Count: 4, SmokedAt: at})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`UPDATE humidor_item`).WillReturnError(errors.New("conn reset"))

		_, err := repo.Smoke(context.Background(), &model.SmokeUpdate{ItemID: 7, UserID: 1, Count: 1, SmokedAt: at})
		assert.Error(t, err)
	})
}

func TestSQL_SetAvailability(t *testing.T) {
	repo, mock := newExactRepo(t)
	at := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	stmt := `UPDATE humidor_item
SET available_for_sale = ?, available_for_trade = ?, updated_at = ?
WHERE id = ? AND user_id = ? AND quantity >= ?`

	// the last argument is the quantity floor the row must satisfy
	mock.ExpectExec(stmt).
		WithArgs(int64(4), int64(3), at, uint64(7), uint64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(stmt).
		WithArgs(int64(8), int64(3), at, uint64(7), uint64(1), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.SetAvailability(context.Background(), &model.AvailabilityUpdate{ItemID: 7, UserID: 1, ForSale: 4, ForTrade: 3, UpdatedAt: at})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetAvailability(context.Background(), &model.AvailabilityUpdate{ItemID: 7, UserID: 1, ForSale: 8, ForTrade: 3, UpdatedAt: at})
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Create(t *testing.T) {
	repo, mock := newRepo(t)
	price := int64(1250)
	mock.ExpectExec(`INSERT INTO humidor_item`).
		WithArgs(uint64(1), uint64(9), int64(5), price, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	got, err := repo.Create(context.Background(), &model.HumidorItem{
		UserID: 1, CigarID: 9, Quantity: 5, PurchasePriceCents: &price, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	cols := []string{"id", "user_id", "cigar_id", "quantity", "smoked_count", "available_for_sale", "available_for_trade",
		"purchase_price_cents", "purchase_date", "last_smoked_date", "created_at", "updated_at"}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM humidor_item WHERE id = \?`).WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 1, 9, 10, 2, 4, 3, nil, nil, nil, created, nil))
	mock.ExpectQuery(`FROM humidor_item WHERE id = \?`).WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows(cols))

	item, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(10), item.Quantity)
	assert.Equal(t, int64(4), item.AvailableForSale)
	assert.Nil(t, item.PurchasePriceCents)

	missing, err := repo.GetByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListValuationRows(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT h.cigar_id, h.quantity`).WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"cigar_id", "quantity", "smoked_count", "purchase_price_cents", "typical_street_cents", "msrp_cents"}).
			AddRow(9, 5, 1, nil, 1500, 1800).
			AddRow(10, 2, 0, 900, nil, nil))

	rows, err := repo.ListValuationRows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1500), rows[0].UnitPriceCents())
	assert.Equal(t, int64(900), rows[1].UnitPriceCents())
	assert.NoError(t, mock.ExpectationsWereMet())
}
