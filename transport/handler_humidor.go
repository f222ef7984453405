package transport

import (
	"net/http"

	"github.com/muhammadheryan/humidor-club/model"
)

// ListHumidor handler
// @Summary List humidor items
// @Tags Humidor
// @Produce json
// @Success 200 {array} model.HumidorItemDetail
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /humidor [get]
func (s *RestHandler) ListHumidor(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.ListHumidor(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddToHumidor handler
// @Summary Add cigars to the humidor
// @Description Creates a new humidor row; quantity below 1 is stored as 1
// @Tags Humidor
// @Accept json
// @Produce json
// @Param request body model.AddToHumidorRequest true "Add Request"
// @Success 201 {object} model.HumidorItem
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /humidor [post]
func (s *RestHandler) AddToHumidor(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AddToHumidorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.AddToHumidor(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetHumidorStats handler
// @Summary Humidor totals and estimated value
// @Tags Humidor
// @Produce json
// @Success 200 {object} model.HumidorStats
// @Security BearerAuth
// @Router /humidor/stats [get]
func (s *RestHandler) GetHumidorStats(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.GetHumidorStats(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ToggleHumidorMembership handler
// @Summary Add or remove a cigar from the humidor
// @Tags Humidor
// @Accept json
// @Produce json
// @Param request body model.ToggleHumidorRequest true "Toggle Request"
// @Success 200 {object} model.ToggleHumidorResponse
// @Security BearerAuth
// @Router /humidor/toggle [post]
func (s *RestHandler) ToggleHumidorMembership(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ToggleHumidorRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.ToggleHumidorMembership(r.Context(), userID, req.CigarID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetHumidorItem handler
// @Summary Get one humidor item
// @Tags Humidor
// @Produce json
// @Param id path int true "Humidor item ID"
// @Success 200 {object} model.HumidorItem
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /humidor/{id} [get]
func (s *RestHandler) GetHumidorItem(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.GetHumidorItem(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SmokeCigars handler
// @Summary Record smoked cigars
// @Tags Humidor
// @Accept json
// @Produce json
// @Param id path int true "Humidor item ID"
// @Param request body model.SmokeRequest true "Smoke Request"
// @Success 200 {object} model.HumidorItem
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /humidor/{id}/smoke [post]
func (s *RestHandler) SmokeCigars(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SmokeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.SmokeCigars(r.Context(), userID, itemID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetMarketplaceAvailability handler
// @Summary Reserve cigars for sale and trade
// @Tags Humidor
// @Accept json
// @Produce json
// @Param id path int true "Humidor item ID"
// @Param request body model.AvailabilityRequest true "Availability Request"
// @Success 200 {object} model.HumidorItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /humidor/{id}/availability [put]
func (s *RestHandler) SetMarketplaceAvailability(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AvailabilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.HumidorApp.SetMarketplaceAvailability(r.Context(), userID, itemID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
