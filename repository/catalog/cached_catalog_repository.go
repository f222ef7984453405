package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/redis/go-redis/v9"
)

// CachedRepository wraps the SQL catalog with a Redis read-through cache for
// cigar details. Writes go to the primary and drop the cached entry.
type CachedRepository struct {
	CatalogRepository
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedCatalogRepository(primary CatalogRepository, rdb *redis.Client, ttl time.Duration) CatalogRepository {
	return &CachedRepository{CatalogRepository: primary, rdb: rdb, ttl: ttl}
}

func (c *CachedRepository) GetCigar(ctx context.Context, id uint64) (*model.CigarDetail, error) {
	if data, err := c.rdb.Get(ctx, cigarKey(id)).Bytes(); err == nil {
		var detail model.CigarDetail
		if json.Unmarshal(data, &detail) == nil {
			return &detail, nil
		}
	}

	detail, err := c.CatalogRepository.GetCigar(ctx, id)
	if err != nil || detail == nil {
		return detail, err
	}

	if data, err := json.Marshal(detail); err == nil {
		c.rdb.Set(ctx, cigarKey(id), data, c.ttl)
	}
	return detail, nil
}

func (c *CachedRepository) ReplaceCigarImagesTx(ctx context.Context, tx *sqlx.Tx, cigarID uint64, urls []string) error {
	if err := c.CatalogRepository.ReplaceCigarImagesTx(ctx, tx, cigarID, urls); err != nil {
		return err
	}
	c.rdb.Del(ctx, cigarKey(cigarID))
	return nil
}

func cigarKey(id uint64) string { return fmt.Sprintf("catalog:cigar:%d", id) }
