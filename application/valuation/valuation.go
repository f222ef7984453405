package valuation

import (
	"context"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	catalogrepo "github.com/muhammadheryan/humidor-club/repository/catalog"
	listingrepo "github.com/muhammadheryan/humidor-club/repository/listing"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"go.uber.org/zap"
)

type ValuationApp interface {
	GetCigarValuation(ctx context.Context, cigarID uint64, ref time.Time) (*model.CigarValuation, error)
}

type valuationAppImpl struct {
	listingRepo listingrepo.ListingRepository
	catalogRepo catalogrepo.CatalogRepository
	window      time.Duration
}

// NewValuationApp loads comps from sold WTS listings no older than window.
// The window must cover the 90 day scoring range plus the 90 day delta.
func NewValuationApp(listingRepo listingrepo.ListingRepository, catalogRepo catalogrepo.CatalogRepository, window time.Duration) ValuationApp {
	if window < 2*maxAgeDays*day {
		window = 2 * maxAgeDays * day
	}
	return &valuationAppImpl{listingRepo: listingRepo, catalogRepo: catalogRepo, window: window}
}

func (s *valuationAppImpl) GetCigarValuation(ctx context.Context, cigarID uint64, ref time.Time) (*model.CigarValuation, error) {
	if ref.IsZero() {
		ref = time.Now()
	}
	ref = ref.UTC()

	cigar, err := s.catalogRepo.GetCigar(ctx, cigarID)
	if err != nil {
		logger.Error("[GetCigarValuation] err catalogRepo.GetCigar", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cigar == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "cigar not found")
	}

	comps, err := s.listingRepo.ListSoldComps(ctx, cigarID, ref.Add(-s.window))
	if err != nil {
		logger.Error("[GetCigarValuation] err ListSoldComps", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CigarValuation{
		CigarID:       cigarID,
		ReferenceDate: ref,
		Valuation:     Calculate(comps, ref),
	}, nil
}
