package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	humidorrepo "github.com/muhammadheryan/humidor-club/repository/humidor"
	listingrepo "github.com/muhammadheryan/humidor-club/repository/listing"
	"github.com/muhammadheryan/humidor-club/thirdparty/rabbitmq"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"github.com/muhammadheryan/humidor-club/utils/metrics"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type ListingApp interface {
	CreateListing(ctx context.Context, userID uint64, req *model.CreateListingRequest) (*model.Listing, error)
	UpdateListing(ctx context.Context, userID, listingID uint64, req *model.UpdateListingRequest) (*model.Listing, error)
	WithdrawListing(ctx context.Context, userID, listingID uint64) (*model.Listing, error)
	ViewListing(ctx context.Context, listingID uint64) (*model.Listing, error)
	ListListings(ctx context.Context, filter *model.ListingFilter) (*model.ListingListResponse, error)
}

// EventPublisher receives marketplace events after a listing write commits.
type EventPublisher interface {
	PublishListingEvent(ctx context.Context, evt rabbitmq.ListingEvent) error
}

type listingAppImpl struct {
	listingRepo listingrepo.ListingRepository
	humidorRepo humidorrepo.HumidorRepository
	publisher   EventPublisher
}

// NewListingApp wires the marketplace. publisher may be nil.
func NewListingApp(listingRepo listingrepo.ListingRepository, humidorRepo humidorrepo.HumidorRepository, publisher EventPublisher) ListingApp {
	return &listingAppImpl{listingRepo: listingRepo, humidorRepo: humidorRepo, publisher: publisher}
}

func (s *listingAppImpl) CreateListing(ctx context.Context, userID uint64, req *model.CreateListingRequest) (*model.Listing, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := validatePrice(req.Type, req.PriceCents); err != nil {
		return nil, err
	}
	if req.Status != constant.ListingStatusDraft && req.Status != constant.ListingStatusActive {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "status must be DRAFT or ACTIVE")
	}

	cigarID := req.CigarID
	if req.HumidorItemID != nil {
		item, err := s.ownedItem(ctx, "[CreateListing]", userID, *req.HumidorItemID)
		if err != nil {
			return nil, err
		}
		if limit := item.ListingCap(req.Type); req.Qty > limit {
			return nil, exceedsCap(limit)
		}
		if cigarID == nil {
			cigarID = &item.CigarID
		}
	}

	now := time.Now().UTC()
	listing := &model.Listing{
		UserID:        userID,
		Type:          req.Type,
		Status:        req.Status,
		Title:         req.Title,
		Description:   req.Description,
		Qty:           req.Qty,
		PriceCents:    req.PriceCents,
		HumidorItemID: req.HumidorItemID,
		CigarID:       cigarID,
		CreatedAt:     now,
	}
	if listing.Status == constant.ListingStatusActive {
		listing.PublishedAt = &now
	}

	listing, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		logger.Error("[CreateListing] err listingRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	metrics.ListingsCreated.WithLabelValues(string(listing.Type), string(listing.Status)).Inc()
	s.publish(ctx, rabbitmq.EventListingCreated, listing, "")

	return listing, nil
}

func (s *listingAppImpl) UpdateListing(ctx context.Context, userID, listingID uint64, req *model.UpdateListingRequest) (*model.Listing, error) {
	if userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	listing, err := s.ownedListing(ctx, "[UpdateListing]", userID, listingID)
	if err != nil {
		return nil, err
	}
	previous := listing.Status
	now := time.Now().UTC()

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.PriceCents != nil {
		listing.PriceCents = req.PriceCents
	}
	if err := validatePrice(listing.Type, listing.PriceCents); err != nil {
		return nil, err
	}

	if req.Qty != nil && *req.Qty != listing.Qty {
		if *req.Qty <= 0 {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "qty must be greater than 0")
		}
		if listing.HumidorItemID != nil {
			item, err := s.ownedItem(ctx, "[UpdateListing]", userID, *listing.HumidorItemID)
			if err != nil {
				return nil, err
			}
			if limit := item.ListingCap(listing.Type); *req.Qty > limit {
				return nil, exceedsCap(limit)
			}
		}
		listing.Qty = *req.Qty
	}

	if req.Status != nil && *req.Status != previous {
		if !canTransition(previous, *req.Status) {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
				fmt.Sprintf("cannot move listing from %s to %s", previous, *req.Status))
		}
		listing.Status = *req.Status
		switch listing.Status {
		case constant.ListingStatusActive:
			listing.PublishedAt = &now
		case constant.ListingStatusSold:
			listing.SoldAt = &now
		}
	}

	listing.UpdatedAt = &now
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		logger.Error("[UpdateListing] err listingRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if listing.Status != previous {
		metrics.ListingTransitions.WithLabelValues(string(previous), string(listing.Status)).Inc()
		s.publish(ctx, rabbitmq.EventListingStatusChanged, listing, previous)
	}
	return listing, nil
}

// WithdrawListing is the soft delete; the row is kept with status WITHDRAWN.
func (s *listingAppImpl) WithdrawListing(ctx context.Context, userID, listingID uint64) (*model.Listing, error) {
	status := constant.ListingStatusWithdrawn
	return s.UpdateListing(ctx, userID, listingID, &model.UpdateListingRequest{Status: &status})
}

func (s *listingAppImpl) ViewListing(ctx context.Context, listingID uint64) (*model.Listing, error) {
	found, err := s.listingRepo.IncrementViewCount(ctx, listingID)
	if err != nil {
		logger.Error("[ViewListing] err IncrementViewCount", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "listing not found")
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[ViewListing] err listingRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "listing not found")
	}
	return listing, nil
}

func (s *listingAppImpl) ListListings(ctx context.Context, filter *model.ListingFilter) (*model.ListingListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	items, total, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListListings] err listingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ListingListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *listingAppImpl) ownedListing(ctx context.Context, op string, userID, listingID uint64) (*model.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error(op+" err listingRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "listing not found")
	}
	if listing.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return listing, nil
}

func (s *listingAppImpl) ownedItem(ctx context.Context, op string, userID, itemID uint64) (*model.HumidorItem, error) {
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

func (s *listingAppImpl) publish(ctx context.Context, event string, l *model.Listing, previous constant.ListingStatus) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishListingEvent(ctx, rabbitmq.ListingEvent{
		Event:          event,
		ListingID:      l.ID,
		UserID:         l.UserID,
		Type:           l.Type,
		Status:         l.Status,
		PreviousStatus: previous,
		CigarID:        l.CigarID,
		Qty:            l.Qty,
		PriceCents:     l.PriceCents,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		// the listing write already succeeded
		logger.Error("[Listing] publish event", zap.String("event", event), zap.String("error", err.Error()))
	}
}

// canTransition reports whether a listing may move from one status to another.
// FROZEN and PENDING are only entered out of band.
func canTransition(from, to constant.ListingStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case constant.ListingStatusActive:
		return from == constant.ListingStatusDraft
	case constant.ListingStatusSold:
		return from == constant.ListingStatusActive
	case constant.ListingStatusWithdrawn:
		return true
	}
	return false
}

func validatePrice(t constant.ListingType, price *int64) error {
	if price != nil && *price < 0 {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "price_cents cannot be negative")
	}
	if t == constant.ListingTypeWTS && (price == nil || *price <= 0) {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "price_cents must be greater than 0 for WTS listings")
	}
	return nil
}

func exceedsCap(limit int64) error {
	return errors.SetCustomErrorMessage(constant.ErrInvalidRequest,
		fmt.Sprintf("qty cannot exceed available quantity (%d)", limit))
}
