package humidor

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	catalogrepo "github.com/muhammadheryan/humidor-club/repository/catalog"
	humidorrepo "github.com/muhammadheryan/humidor-club/repository/humidor"
	txrepo "github.com/muhammadheryan/humidor-club/repository/tx"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"github.com/muhammadheryan/humidor-club/utils/metrics"
	"go.uber.org/zap"
)

// HumidorApp is the humidor ledger. Every write checks ownership and the
// quantity invariants before the store is touched.
type HumidorApp interface {
	AddToHumidor(ctx context.Context, userID uint64, req *model.AddToHumidorRequest) (*model.HumidorItem, error)
	SmokeCigars(ctx context.Context, userID, itemID uint64, req *model.SmokeRequest) (*model.HumidorItem, error)
	SetMarketplaceAvailability(ctx context.Context, userID, itemID uint64, req *model.AvailabilityRequest) (*model.HumidorItem, error)
	ToggleHumidorMembership(ctx context.Context, userID, cigarID uint64) (*model.ToggleHumidorResponse, error)
	GetHumidorStats(ctx context.Context, userID uint64) (*model.HumidorStats, error)
	ListHumidor(ctx context.Context, userID uint64) ([]model.HumidorItemDetail, error)
	GetHumidorItem(ctx context.Context, userID, itemID uint64) (*model.HumidorItem, error)
}

type humidorAppImpl struct {
	txRepo      txrepo.TxRepository
	humidorRepo humidorrepo.HumidorRepository
	catalogRepo catalogrepo.CatalogRepository
}

func NewHumidorApp(txRepo txrepo.TxRepository, humidorRepo humidorrepo.HumidorRepository, catalogRepo catalogrepo.CatalogRepository) HumidorApp {
	return &humidorAppImpl{txRepo: txRepo, humidorRepo: humidorRepo, catalogRepo: catalogRepo}
}

func (s *humidorAppImpl) AddToHumidor(ctx context.Context, userID uint64, req *model.AddToHumidorRequest) (*model.HumidorItem, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.ensureCigar(ctx, "[AddToHumidor]", req.CigarID); err != nil {
		return nil, err
	}

	item, err := s.humidorRepo.Create(ctx, &model.HumidorItem{
		UserID:             userID,
		CigarID:            req.CigarID,
		Quantity:           max(1, req.Quantity),
		PurchasePriceCents: req.PurchasePriceCents,
		PurchaseDate:       req.PurchaseDate,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[AddToHumidor] err humidorRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return item, nil
}

func (s *humidorAppImpl) SmokeCigars(ctx context.Context, userID, itemID uint64, req *model.SmokeRequest) (*model.HumidorItem, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if req.Count < 1 {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "count must be at least 1")
	}

	item, err := s.ownedItem(ctx, "[SmokeCigars]", userID, itemID)
	if err != nil {
		return nil, err
	}
	if req.Count > item.Quantity {
		metrics.HumidorRejections.WithLabelValues("smoke").Inc()
		return nil, insufficient(item.Quantity)
	}

	smokedAt := time.Now().UTC()
	if req.Date != nil {
		smokedAt = req.Date.UTC()
	}
	applied, err := s.humidorRepo.Smoke(ctx, &model.SmokeUpdate{
		ItemID:   itemID,
		UserID:   userID,
		Count:    req.Count,
		SmokedAt: smokedAt,
	})
	if err != nil {
		logger.Error("[SmokeCigars] err humidorRepo.Smoke", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !applied {
		// another request smoked from the same row in between
		metrics.HumidorRejections.WithLabelValues("smoke").Inc()
		return nil, s.reloadInsufficient(ctx, itemID, item.Quantity)
	}
	metrics.CigarsSmoked.Add(float64(req.Count))

	return s.reload(ctx, "[SmokeCigars]", itemID)
}

func (s *humidorAppImpl) SetMarketplaceAvailability(ctx context.Context, userID, itemID uint64, req *model.AvailabilityRequest) (*model.HumidorItem, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if req.ForSale < 0 || req.ForTrade < 0 {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "availability cannot be negative")
	}

	item, err := s.ownedItem(ctx, "[SetMarketplaceAvailability]", userID, itemID)
	if err != nil {
		return nil, err
	}
	if req.ForSale+req.ForTrade > item.Quantity {
		metrics.HumidorRejections.WithLabelValues("availability").Inc()
		return nil, exceedsAvailable(item.Quantity)
	}

	applied, err := s.humidorRepo.SetAvailability(ctx, &model.AvailabilityUpdate{
		ItemID:    itemID,
		UserID:    userID,
		ForSale:   req.ForSale,
		ForTrade:  req.ForTrade,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Error("[SetMarketplaceAvailability] err humidorRepo.SetAvailability", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !applied {
		metrics.HumidorRejections.WithLabelValues("availability").Inc()
		current, err := s.reload(ctx, "[SetMarketplaceAvailability]", itemID)
		if err != nil {
			return nil, err
		}
		return nil, exceedsAvailable(current.Quantity)
	}

	return s.reload(ctx, "[SetMarketplaceAvailability]", itemID)
}

func (s *humidorAppImpl) ToggleHumidorMembership(ctx context.Context, userID, cigarID uint64) (*model.ToggleHumidorResponse, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.ensureCigar(ctx, "[ToggleHumidorMembership]", cigarID); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ToggleHumidorMembership] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// with duplicate rows only the oldest one is removed
	existing, err := s.humidorRepo.GetFirstByUserCigarTx(ctx, tx, userID, cigarID)
	if err != nil {
		logger.Error("[ToggleHumidorMembership] err GetFirstByUserCigarTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.ToggleHumidorResponse{}
	if existing != nil {
		if err := s.humidorRepo.DeleteTx(ctx, tx, existing.ID); err != nil {
			logger.Error("[ToggleHumidorMembership] err DeleteTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		res.Action = model.ToggleRemoved
		res.Item = existing
	} else {
		item, err := s.humidorRepo.CreateTx(ctx, tx, &model.HumidorItem{
			UserID:    userID,
			CigarID:   cigarID,
			Quantity:  1,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			logger.Error("[ToggleHumidorMembership] err CreateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		res.Action = model.ToggleAdded
		res.Item = item
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ToggleHumidorMembership] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return res, nil
}

func (s *humidorAppImpl) GetHumidorStats(ctx context.Context, userID uint64) (*model.HumidorStats, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	rows, err := s.humidorRepo.ListValuationRows(ctx, userID)
	if err != nil {
		logger.Error("[GetHumidorStats] err ListValuationRows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stats := &model.HumidorStats{}
	unique := make(map[uint64]struct{}, len(rows))
	for _, r := range rows {
		stats.TotalCigars += r.Quantity
		stats.TotalSmoked += r.SmokedCount
		stats.TotalValueCents += r.Quantity * r.UnitPriceCents()
		unique[r.CigarID] = struct{}{}
	}
	stats.UniqueCigars = int64(len(unique))
	return stats, nil
}

func (s *humidorAppImpl) ListHumidor(ctx context.Context, userID uint64) ([]model.HumidorItemDetail, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	items, err := s.humidorRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListHumidor] err ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *humidorAppImpl) GetHumidorItem(ctx context.Context, userID, itemID uint64) (*model.HumidorItem, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return s.ownedItem(ctx, "[GetHumidorItem]", userID, itemID)
}

func (s *humidorAppImpl) ownedItem(ctx context.Context, op string, userID, itemID uint64) (*model.HumidorItem, error) {
	item, err := s.humidorRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Error(op+" err humidorRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "humidor item not found")
	}
	if item.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return item, nil
}

func (s *humidorAppImpl) reload(ctx context.Context, op string, itemID uint64) (*model.HumidorItem, error) {
	item, err := s.humidorRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Error(op+" err reload humidor item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "humidor item not found")
	}
	return item, nil
}

func (s *humidorAppImpl) reloadInsufficient(ctx context.Context, itemID uint64, fallback int64) error {
	current, err := s.reload(ctx, "[SmokeCigars]", itemID)
	if err != nil {
		return err
	}
	if current.Quantity < fallback {
		fallback = current.Quantity
	}
	return insufficient(fallback)
}

func (s *humidorAppImpl) ensureCigar(ctx context.Context, op string, cigarID uint64) error {
	cigar, err := s.catalogRepo.GetCigar(ctx, cigarID)
	if err != nil {
		logger.Error(op+" err catalogRepo.GetCigar", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if cigar == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "cigar not found")
	}
	return nil
}

func insufficient(quantity int64) error {
	return errors.SetCustomErrorMessage(constant.ErrInsufficientQuantity,
		fmt.Sprintf("only %d cigars left in this humidor item", quantity))
}

func exceedsAvailable(quantity int64) error {
	return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
		fmt.Sprintf("cannot exceed available quantity (%d)", quantity))
}
