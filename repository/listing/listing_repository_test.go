package listing_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	listingrepo "github.com/muhammadheryan/humidor-club/repository/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (listingrepo.ListingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return listingrepo.NewListingRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_IncrementViewCount(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(`UPDATE listing SET view_count = view_count \+ 1 WHERE id = \?`).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE listing SET view_count = view_count \+ 1 WHERE id = \?`).
		WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.IncrementViewCount(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IncrementViewCount(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List_AppliesFiltersAndPagination(t *testing.T) {
	repo, mock := newRepo(t)
	cols := []string{"id", "user_id", "type", "status", "title", "description", "qty", "price_cents", "humidor_item_id",
		"cigar_id", "view_count", "published_at", "sold_at", "created_at", "updated_at"}
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM listing WHERE true AND type = \? AND status = \? ORDER BY id DESC LIMIT \? OFFSET \?`).
		WithArgs(constant.ListingTypeWTS, constant.ListingStatusActive, 10, 10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, 1, "WTS", "ACTIVE", "Padron 1964", "box of 5", 5, 1000, nil, 9, 0, now, nil, now, nil))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listing WHERE true AND type = \? AND status = \?`).
		WithArgs(constant.ListingTypeWTS, constant.ListingStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	items, total, err := repo.List(context.Background(), &model.ListingFilter{
		Type: constant.ListingTypeWTS, Status: constant.ListingStatusActive, Page: 2, PerPage: 10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(11), total)
	assert.Equal(t, constant.ListingTypeWTS, items[0].Type)
	require.NotNil(t, items[0].PriceCents)
	assert.Equal(t, int64(1000), *items[0].PriceCents)
	assert.Nil(t, items[0].HumidorItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListSoldComps(t *testing.T) {
	repo, mock := newRepo(t)
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sold := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT sold_at AS date, price_cents, qty FROM listing`).
		WithArgs(uint64(9), constant.ListingTypeWTS, constant.ListingStatusSold, since).
		WillReturnRows(sqlmock.NewRows([]string{"date", "price_cents", "qty"}).AddRow(sold, 1100, 2))

	comps, err := repo.ListSoldComps(context.Background(), 9, since)
	require.NoError(t, err)
	assert.Equal(t, []model.Comp{{Date: sold, PriceCents: 1100, Qty: 2}}, comps)
	assert.NoError(t, mock.ExpectationsWereMet())
}
