package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	catalogrepo "github.com/muhammadheryan/humidor-club/repository/catalog"
	humidorrepo "github.com/muhammadheryan/humidor-club/repository/humidor"
	txrepo "github.com/muhammadheryan/humidor-club/repository/tx"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type CatalogApp interface {
	ResolveCigar(ctx context.Context, userID uint64, req *model.ResolveCigarRequest) (*model.ResolveCigarResponse, error)
	GetCigar(ctx context.Context, id uint64) (*model.CigarDetail, error)
	SearchCigars(ctx context.Context, query string, page, perPage int) (*model.CigarSearchResponse, error)
}

type catalogAppImpl struct {
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
	humidorRepo humidorrepo.HumidorRepository
}

func NewCatalogApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository, humidorRepo humidorrepo.HumidorRepository) CatalogApp {
	return &catalogAppImpl{txRepo: txRepo, catalogRepo: catalogRepo, humidorRepo: humidorRepo}
}

// ResolveCigar finds or creates brand, line and cigar in one transaction and
// optionally records the cigar in the caller's humidor. Prices and images are
// only taken from the request when the cigar is new.
func (s *catalogAppImpl) ResolveCigar(ctx context.Context, userID uint64, req *model.ResolveCigarRequest) (*model.ResolveCigarResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	brandName := strings.TrimSpace(req.BrandName)
	lineName := strings.TrimSpace(req.LineName)
	cigarName := strings.TrimSpace(req.CigarName)
	if brandName == "" || lineName == "" || cigarName == "" {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "brand, line and cigar names are required")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResolveCigar] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	brand, err := s.catalogRepo.FindOrCreateBrandTx(ctx, tx, brandName)
	if err != nil {
		logger.Error("[ResolveCigar] err FindOrCreateBrandTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	line, err := s.catalogRepo.FindOrCreateLineTx(ctx, tx, brand.ID, lineName)
	if err != nil {
		logger.Error("[ResolveCigar] err FindOrCreateLineTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now().UTC()
	cigar, created, err := s.catalogRepo.FindOrCreateCigarTx(ctx, tx, &model.Cigar{
		LineID:             line.ID,
		Name:               cigarName,
		Vitola:             strings.TrimSpace(req.Vitola),
		MsrpCents:          req.MsrpCents,
		TypicalStreetCents: req.TypicalStreetCents,
		CreatedAt:          now,
	})
	if err != nil {
		logger.Error("[ResolveCigar] err FindOrCreateCigarTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if created && len(req.ImageURLs) > 0 {
		if err := s.catalogRepo.ReplaceCigarImagesTx(ctx, tx, cigar.ID, req.ImageURLs); err != nil {
			logger.Error("[ResolveCigar] err ReplaceCigarImagesTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	res := &model.ResolveCigarResponse{Created: created}
	if req.AddToHumidor {
		item, err := s.humidorRepo.CreateTx(ctx, tx, &model.HumidorItem{
			UserID:             userID,
			CigarID:            cigar.ID,
			Quantity:           max(1, req.Quantity),
			PurchasePriceCents: req.PurchasePriceCents,
			CreatedAt:          now,
		})
		if err != nil {
			logger.Error("[ResolveCigar] err humidorRepo.CreateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		res.HumidorItem = item
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResolveCigar] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	detail, err := s.catalogRepo.GetCigar(ctx, cigar.ID)
	if err != nil || detail == nil {
		// the write is committed; answer from what was resolved
		if err != nil {
			logger.Warn("[ResolveCigar] reload cigar", zap.String("error", err.Error()))
		}
		detail = &model.CigarDetail{
			Cigar:     *cigar,
			LineName:  line.Name,
			BrandID:   brand.ID,
			BrandName: brand.Name,
			ImageURLs: []string{},
		}
	}
	res.Cigar = detail
	return res, nil
}

func (s *catalogAppImpl) GetCigar(ctx context.Context, id uint64) (*model.CigarDetail, error) {
	cigar, err := s.catalogRepo.GetCigar(ctx, id)
	if err != nil {
		logger.Error("[GetCigar] err catalogRepo.GetCigar", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cigar == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "cigar not found")
	}
	return cigar, nil
}

func (s *catalogAppImpl) SearchCigars(ctx context.Context, query string, page, perPage int) (*model.CigarSearchResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	items, total, err := s.catalogRepo.SearchCigars(ctx, strings.TrimSpace(query), page, perPage)
	if err != nil {
		logger.Error("[SearchCigars] err catalogRepo.SearchCigars", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CigarSearchResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}
