package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/muhammadheryan/humidor-club/utils/errors"
)

// SearchCigars handler
// @Summary Search the cigar catalog
// @Tags Catalog
// @Produce json
// @Param q query string false "Matches brand, line, name or vitola"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Page size, default 20, max 100"
// @Success 200 {object} model.CigarSearchResponse
// @Router /cigars [get]
func (s *RestHandler) SearchCigars(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, err)
		return
	}
	perPage, err := queryInt(r, "per_page", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.SearchCigars(r.Context(), r.URL.Query().Get("q"), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCigar handler
// @Summary Get a catalog cigar
// @Tags Catalog
// @Produce json
// @Param id path int true "Cigar ID"
// @Success 200 {object} model.CigarDetail
// @Failure 404 {object} ErrorResponse
// @Router /cigars/{id} [get]
func (s *RestHandler) GetCigar(w http.ResponseWriter, r *http.Request) {
	cigarID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetCigar(r.Context(), cigarID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResolveCigar handler
// @Summary Find or create a cigar by brand, line and name
// @Description Optionally adds the resolved cigar to the caller's humidor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.ResolveCigarRequest true "Resolve Request"
// @Success 200 {object} model.ResolveCigarResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cigars/resolve [post]
func (s *RestHandler) ResolveCigar(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ResolveCigarRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.ResolveCigar(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCigarValuation handler
// @Summary Market valuation from recent sales
// @Tags Catalog
// @Produce json
// @Param id path int true "Cigar ID"
// @Param as_of query string false "Reference date, YYYY-MM-DD; defaults to today"
// @Success 200 {object} model.CigarValuation
// @Failure 404 {object} ErrorResponse
// @Router /cigars/{id}/valuation [get]
func (s *RestHandler) GetCigarValuation(w http.ResponseWriter, r *http.Request) {
	cigarID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var ref time.Time
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		ref, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "as_of must be YYYY-MM-DD"))
			return
		}
	}

	res, err := s.ValuationApp.GetCigarValuation(r.Context(), cigarID, ref)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
