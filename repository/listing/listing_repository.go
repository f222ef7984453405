package listing

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) (*model.Listing, error)
	GetByID(ctx context.Context, id uint64) (*model.Listing, error)
	// Update writes the mutable columns of an owned listing.
	Update(ctx context.Context, listing *model.Listing) error
	IncrementViewCount(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, filter *model.ListingFilter) ([]model.Listing, int64, error)
	ListSoldComps(ctx context.Context, cigarID uint64, since time.Time) ([]model.Comp, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	listingColumns = `id, user_id, type, status, title, description, qty, price_cents, humidor_item_id, cigar_id,
view_count, published_at, sold_at, created_at, updated_at`

	insertListingQuery = `INSERT INTO listing (user_id, type, status, title, description, qty, price_cents, humidor_item_id, cigar_id,
view_count, published_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	getListingQuery = `SELECT ` + listingColumns + ` FROM listing WHERE id = ?`

	updateListingQuery = `UPDATE listing
SET title = ?, description = ?, qty = ?, price_cents = ?, status = ?, published_at = ?, sold_at = ?, updated_at = ?
WHERE id = ? AND user_id = ?`

	incrementViewCountQuery = `UPDATE listing SET view_count = view_count + 1 WHERE id = ?`

	listListingsBase  = `SELECT ` + listingColumns + ` FROM listing WHERE true`
	countListingsBase = `SELECT COUNT(*) FROM listing WHERE true`

	// WTS prices are unit prices; every sold listing is one comp.
	listSoldCompsQuery = `SELECT sold_at AS date, price_cents, qty FROM listing
WHERE cigar_id = ? AND type = ? AND status = ? AND sold_at IS NOT NULL AND sold_at >= ? AND price_cents IS NOT NULL
ORDER BY sold_at`
)

func (r *SQL) Create(ctx context.Context, l *model.Listing) (*model.Listing, error) {
	res, err := r.conn.ExecContext(ctx, insertListingQuery,
		l.UserID, l.Type, l.Status, l.Title, l.Description, l.Qty, l.PriceCents, l.HumidorItemID, l.CigarID,
		l.PublishedAt, l.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	l.ID = uint64(id)
	return l, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Listing, error) {
	var l model.Listing
	if err := r.conn.GetContext(ctx, &l, getListingQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) Update(ctx context.Context, l *model.Listing) error {
	_, err := r.conn.ExecContext(ctx, updateListingQuery,
		l.Title, l.Description, l.Qty, l.PriceCents, l.Status, l.PublishedAt, l.SoldAt, l.UpdatedAt,
		l.ID, l.UserID)
	return err
}

func (r *SQL) IncrementViewCount(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, incrementViewCountQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) List(ctx context.Context, filter *model.ListingFilter) ([]model.Listing, int64, error) {
	where, args := listingWhere(filter)

	items := make([]model.Listing, 0)
	offset := (filter.Page - 1) * filter.PerPage
	query := listListingsBase + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	if err := r.conn.SelectContext(ctx, &items, query, append(args, filter.PerPage, offset)...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countListingsBase+where, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func listingWhere(filter *model.ListingFilter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 4)
	if filter.Type != "" {
		sb.WriteString(" AND type = ?")
		args = append(args, filter.Type)
	}
	if filter.Status != "" {
		sb.WriteString(" AND status = ?")
		args = append(args, filter.Status)
	}
	if filter.CigarID != 0 {
		sb.WriteString(" AND cigar_id = ?")
		args = append(args, filter.CigarID)
	}
	if filter.UserID != 0 {
		sb.WriteString(" AND user_id = ?")
		args = append(args, filter.UserID)
	}
	return sb.String(), args
}

func (r *SQL) ListSoldComps(ctx context.Context, cigarID uint64, since time.Time) ([]model.Comp, error) {
	comps := make([]model.Comp, 0)
	err := r.conn.SelectContext(ctx, &comps, listSoldCompsQuery,
		cigarID, constant.ListingTypeWTS, constant.ListingStatusSold, since)
	if err != nil {
		return nil, err
	}
	return comps, nil
}
