package humidor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/model"
)

type HumidorRepository interface {
	Create(ctx context.Context, item *model.HumidorItem) (*model.HumidorItem, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.HumidorItem) (*model.HumidorItem, error)
	GetByID(ctx context.Context, id uint64) (*model.HumidorItem, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.HumidorItemDetail, error)
	ListValuationRows(ctx context.Context, userID uint64) ([]model.HumidorValuationRow, error)
	// Smoke reports false when the row is missing, not owned by the user or
	// holds fewer than Count cigars; nothing is written in that case.
	Smoke(ctx context.Context, req *model.SmokeUpdate) (bool, error)
	// SetAvailability reports false when ForSale+ForTrade exceeds the row's
	// quantity (or the row is missing / not owned); nothing is written then.
	SetAvailability(ctx context.Context, req *model.AvailabilityUpdate) (bool, error)
	GetFirstByUserCigarTx(ctx context.Context, tx *sqlx.Tx, userID, cigarID uint64) (*model.HumidorItem, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewHumidorRepository(conn *sqlx.DB) HumidorRepository {
	return &SQL{conn: conn}
}

const (
	humidorColumns = `id, user_id, cigar_id, quantity, smoked_count, available_for_sale, available_for_trade,
purchase_price_cents, purchase_date, last_smoked_date, created_at, updated_at`

	insertHumidorItemQuery = `INSERT INTO humidor_item (user_id, cigar_id, quantity, smoked_count, available_for_sale, available_for_trade,
purchase_price_cents, purchase_date, created_at) VALUES (?, ?, ?, 0, 0, 0, ?, ?, ?)`

	getHumidorItemQuery = `SELECT ` + humidorColumns + ` FROM humidor_item WHERE id = ?`

	getFirstByUserCigarQuery = `SELECT ` + humidorColumns + ` FROM humidor_item
WHERE user_id = ? AND cigar_id = ? ORDER BY id LIMIT 1 FOR UPDATE`

	listHumidorByUserQuery = `SELECT h.id, h.user_id, h.cigar_id, h.quantity, h.smoked_count, h.available_for_sale, h.available_for_trade,
h.purchase_price_cents, h.purchase_date, h.last_smoked_date, h.created_at, h.updated_at,
c.name AS cigar_name, c.vitola, l.name AS line_name, b.name AS brand_name
FROM humidor_item h
JOIN cigar c ON c.id = h.cigar_id
JOIN line l ON l.id = c.line_id
JOIN brand b ON b.id = l.brand_id
WHERE h.user_id = ?
ORDER BY h.id`

	listValuationRowsQuery = `SELECT h.cigar_id, h.quantity, h.smoked_count, h.purchase_price_cents, c.typical_street_cents, c.msrp_cents
FROM humidor_item h
LEFT JOIN cigar c ON c.id = h.cigar_id
WHERE h.user_id = ?`

	// MySQL evaluates single-table SET assignments left to right, so the
	// reservation clamps come first and read pre-update quantity and
	// available_for_sale. Trade is cut before sale; model.HumidorItem.AfterSmoke
	// is the same arithmetic.
	smokeQuery = `UPDATE humidor_item
SET available_for_trade = LEAST(available_for_trade, GREATEST(quantity - ? - available_for_sale, 0)),
    available_for_sale = LEAST(available_for_sale, quantity - ?),
    quantity = quantity - ?,
    smoked_count = smoked_count + ?,
    last_smoked_date = ?,
    updated_at = ?
WHERE id = ? AND user_id = ? AND quantity >= ?`

	setAvailabilityQuery = `UPDATE humidor_item
SET available_for_sale = ?, available_for_trade = ?, updated_at = ?
WHERE id = ? AND user_id = ? AND quantity >= ?`

	deleteHumidorItemQuery = `DELETE FROM humidor_item WHERE id = ?`
)

func (r *SQL) Create(ctx context.Context, item *model.HumidorItem) (*model.HumidorItem, error) {
	return insertItem(ctx, r.conn, item)
}

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, item *model.HumidorItem) (*model.HumidorItem, error) {
	return insertItem(ctx, tx, item)
}

func insertItem(ctx context.Context, exec sqlx.ExecerContext, item *model.HumidorItem) (*model.HumidorItem, error) {
	res, err := exec.ExecContext(ctx, insertHumidorItemQuery,
		item.UserID, item.CigarID, item.Quantity, item.PurchasePriceCents, item.PurchaseDate, item.CreatedAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	item.ID = uint64(id)
	return item, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.HumidorItem, error) {
	var item model.HumidorItem
	if err := r.conn.GetContext(ctx, &item, getHumidorItemQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.HumidorItemDetail, error) {
	items := make([]model.HumidorItemDetail, 0)
	if err := r.conn.SelectContext(ctx, &items, listHumidorByUserQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListValuationRows(ctx context.Context, userID uint64) ([]model.HumidorValuationRow, error) {
	rows := make([]model.HumidorValuationRow, 0)
	if err := r.conn.SelectContext(ctx, &rows, listValuationRowsQuery, userID); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQL) Smoke(ctx context.Context, req *model.SmokeUpdate) (bool, error) {
	res, err := r.conn.ExecContext(ctx, smokeQuery,
		req.Count, req.Count, req.Count, req.Count, req.SmokedAt, req.SmokedAt,
		req.ItemID, req.UserID, req.Count)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *SQL) SetAvailability(ctx context.Context, req *model.AvailabilityUpdate) (bool, error) {
	res, err := r.conn.ExecContext(ctx, setAvailabilityQuery,
		req.ForSale, req.ForTrade, req.UpdatedAt, req.ItemID, req.UserID, req.ForSale+req.ForTrade)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *SQL) GetFirstByUserCigarTx(ctx context.Context, tx *sqlx.Tx, userID, cigarID uint64) (*model.HumidorItem, error) {
	var item model.HumidorItem
	if err := tx.GetContext(ctx, &item, getFirstByUserCigarQuery, userID, cigarID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteHumidorItemQuery, id)
	return err
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
