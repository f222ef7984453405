package transport

import (
	"net/http"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	validatorx "github.com/muhammadheryan/humidor-club/utils/validator"
)

type listingQuery struct {
	Type   string `validate:"omitempty,oneof=WTS WTB WTT"`
	Status string `validate:"omitempty,oneof=DRAFT ACTIVE PENDING SOLD WITHDRAWN FROZEN"`
}

// ListListings handler
// @Summary Browse marketplace listings
// @Tags Listings
// @Produce json
// @Param type query string false "WTS, WTB or WTT"
// @Param status query string false "Listing status"
// @Param cigar_id query int false "Cigar ID"
// @Param user_id query int false "Seller ID"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Page size, default 10, max 100"
// @Success 200 {object} model.ListingListResponse
// @Failure 400 {object} ErrorResponse
// @Router /listings [get]
func (s *RestHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lq := listingQuery{Type: q.Get("type"), Status: q.Get("status")}
	if err := validatorx.ValidateStruct(&lq); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Describe(err)))
		return
	}

	filter := &model.ListingFilter{
		Type:   constant.ListingType(lq.Type),
		Status: constant.ListingStatus(lq.Status),
	}
	var err error
	if filter.CigarID, err = queryUint(r, "cigar_id"); err != nil {
		writeError(w, err)
		return
	}
	if filter.UserID, err = queryUint(r, "user_id"); err != nil {
		writeError(w, err)
		return
	}
	if filter.Page, err = queryInt(r, "page", 1); err != nil {
		writeError(w, err)
		return
	}
	if filter.PerPage, err = queryInt(r, "per_page", 0); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.ListListings(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateListing handler
// @Summary Create a listing
// @Description WTS listings need a positive price; a humidor-backed listing cannot offer more than is reserved
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body model.CreateListingRequest true "Create Listing Request"
// @Success 201 {object} model.Listing
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateListingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.CreateListing(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ViewListing handler
// @Summary View a listing
// @Description Returns the listing and counts the view
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 404 {object} ErrorResponse
// @Router /listings/{id} [get]
func (s *RestHandler) ViewListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.ViewListing(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateListing handler
// @Summary Edit a listing or change its status
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body model.UpdateListingRequest true "Update Listing Request"
// @Success 200 {object} model.Listing
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [patch]
func (s *RestHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateListingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.UpdateListing(r.Context(), userID, listingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// WithdrawListing handler
// @Summary Withdraw a listing
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (s *RestHandler) WithdrawListing(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	listingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.WithdrawListing(r.Context(), userID, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
