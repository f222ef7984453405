package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/model"
)

type CatalogRepository interface {
	FindOrCreateBrandTx(ctx context.Context, tx *sqlx.Tx, name string) (*model.Brand, error)
	FindOrCreateLineTx(ctx context.Context, tx *sqlx.Tx, brandID uint64, name string) (*model.Line, error)
	// FindOrCreateCigarTx reports created=true only when a new row was inserted.
	FindOrCreateCigarTx(ctx context.Context, tx *sqlx.Tx, cigar *model.Cigar) (*model.Cigar, bool, error)
	ReplaceCigarImagesTx(ctx context.Context, tx *sqlx.Tx, cigarID uint64, urls []string) error
	GetCigar(ctx context.Context, id uint64) (*model.CigarDetail, error)
	SearchCigars(ctx context.Context, query string, page, perPage int) ([]model.CigarDetail, int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

const (
	findBrandQuery   = `SELECT id, name FROM brand WHERE name = ?`
	insertBrandQuery = `INSERT INTO brand (name) VALUES (?)`

	findLineQuery   = `SELECT id, brand_id, name FROM line WHERE brand_id = ? AND name = ?`
	insertLineQuery = `INSERT INTO line (brand_id, name) VALUES (?, ?)`

	findCigarQuery = `SELECT id, line_id, name, vitola, msrp_cents, typical_street_cents, created_at
FROM cigar WHERE line_id = ? AND name = ? AND vitola = ?`
	insertCigarQuery = `INSERT INTO cigar (line_id, name, vitola, msrp_cents, typical_street_cents, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	deleteCigarImagesQuery = `DELETE FROM cigar_image WHERE cigar_id = ?`
	insertCigarImageQuery  = `INSERT INTO cigar_image (cigar_id, position, url) VALUES (?, ?, ?)`
	listCigarImagesQuery   = `SELECT url FROM cigar_image WHERE cigar_id = ? ORDER BY position`

	cigarDetailBase = `SELECT c.id, c.line_id, c.name, c.vitola, c.msrp_cents, c.typical_street_cents, c.created_at,
l.name AS line_name, b.id AS brand_id, b.name AS brand_name
FROM cigar c
JOIN line l ON l.id = c.line_id
JOIN brand b ON b.id = l.brand_id`

	searchCigarWhere = ` WHERE c.name LIKE ? OR l.name LIKE ? OR b.name LIKE ? OR c.vitola LIKE ?`
	countCigarsBase  = `SELECT COUNT(*) FROM cigar c JOIN line l ON l.id = c.line_id JOIN brand b ON b.id = l.brand_id`
)

func (r *SQL) FindOrCreateBrandTx(ctx context.Context, tx *sqlx.Tx, name string) (*model.Brand, error) {
	var b model.Brand
	err := findOrInsert(
		func() error { return tx.GetContext(ctx, &b, findBrandQuery, name) },
		func() (sql.Result, error) { return tx.ExecContext(ctx, insertBrandQuery, name) },
		func(id uint64) { b = model.Brand{ID: id, Name: name} },
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SQL) FindOrCreateLineTx(ctx context.Context, tx *sqlx.Tx, brandID uint64, name string) (*model.Line, error) {
	var l model.Line
	err := findOrInsert(
		func() error { return tx.GetContext(ctx, &l, findLineQuery, brandID, name) },
		func() (sql.Result, error) { return tx.ExecContext(ctx, insertLineQuery, brandID, name) },
		func(id uint64) { l = model.Line{ID: id, BrandID: brandID, Name: name} },
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *SQL) FindOrCreateCigarTx(ctx context.Context, tx *sqlx.Tx, cigar *model.Cigar) (*model.Cigar, bool, error) {
	var c model.Cigar
	created := false
	err := findOrInsert(
		func() error { return tx.GetContext(ctx, &c, findCigarQuery, cigar.LineID, cigar.Name, cigar.Vitola) },
		func() (sql.Result, error) {
			return tx.ExecContext(ctx, insertCigarQuery,
				cigar.LineID, cigar.Name, cigar.Vitola, cigar.MsrpCents, cigar.TypicalStreetCents, cigar.CreatedAt)
		},
		func(id uint64) {
			c = *cigar
			c.ID = id
			created = true
		},
	)
	if err != nil {
		return nil, false, err
	}
	return &c, created, nil
}

// findOrInsert runs find, inserts on a miss, and falls back to find again
// when a concurrent request won the unique key.
func findOrInsert(find func() error, insert func() (sql.Result, error), inserted func(id uint64)) error {
	err := find()
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	res, err := insert()
	if err != nil {
		if isDuplicate(err) {
			return find()
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inserted(uint64(id))
	return nil
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

func (r *SQL) ReplaceCigarImagesTx(ctx context.Context, tx *sqlx.Tx, cigarID uint64, urls []string) error {
	if _, err := tx.ExecContext(ctx, deleteCigarImagesQuery, cigarID); err != nil {
		return err
	}
	for i, url := range urls {
		if _, err := tx.ExecContext(ctx, insertCigarImageQuery, cigarID, i, url); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetCigar(ctx context.Context, id uint64) (*model.CigarDetail, error) {
	var detail model.CigarDetail
	if err := r.conn.GetContext(ctx, &detail, cigarDetailBase+" WHERE c.id = ?", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	urls := make([]string, 0)
	if err := r.conn.SelectContext(ctx, &urls, listCigarImagesQuery, id); err != nil {
		return nil, err
	}
	detail.ImageURLs = urls
	return &detail, nil
}

func (r *SQL) SearchCigars(ctx context.Context, query string, page, perPage int) ([]model.CigarDetail, int64, error) {
	offset := (page - 1) * perPage
	like := "%" + query + "%"

	items := make([]model.CigarDetail, 0)
	q := cigarDetailBase + searchCigarWhere + " ORDER BY b.name, l.name, c.name LIMIT ? OFFSET ?"
	if err := r.conn.SelectContext(ctx, &items, q, like, like, like, like, perPage, offset); err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].ImageURLs = []string{}
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countCigarsBase+searchCigarWhere, like, like, like, like); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
