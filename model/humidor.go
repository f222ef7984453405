package model

import (
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
)

// HumidorItem is one acquisition batch of a cigar owned by a user.
// Quantity is what remains on hand; smoking moves units into SmokedCount.
type HumidorItem struct {
	ID                 uint64     `db:"id" json:"id"`
	UserID             uint64     `db:"user_id" json:"user_id"`
	CigarID            uint64     `db:"cigar_id" json:"cigar_id"`
	Quantity           int64      `db:"quantity" json:"quantity"`
	SmokedCount        int64      `db:"smoked_count" json:"smoked_count"`
	AvailableForSale   int64      `db:"available_for_sale" json:"available_for_sale"`
	AvailableForTrade  int64      `db:"available_for_trade" json:"available_for_trade"`
	PurchasePriceCents *int64     `db:"purchase_price_cents" json:"purchase_price_cents,omitempty"`
	PurchaseDate       *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	LastSmokedDate     *time.Time `db:"last_smoked_date" json:"last_smoked_date,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AfterSmoke is the row the smoke statement leaves behind: count units move
// from Quantity to SmokedCount and the reservations are clamped to what is
// left, trade first, so AvailableForSale+AvailableForTrade <= Quantity.
func (h HumidorItem) AfterSmoke(count int64) HumidorItem {
	left := h.Quantity - count
	h.AvailableForTrade = min(h.AvailableForTrade, max(left-h.AvailableForSale, 0))
	h.AvailableForSale = min(h.AvailableForSale, left)
	h.Quantity = left
	h.SmokedCount += count
	return h
}

// ListingCap is the most a listing of type t may offer from this item: the
// matching reservation when one has been set, bounded by what is on hand.
func (h *HumidorItem) ListingCap(t constant.ListingType) int64 {
	var reserved int64
	switch t {
	case constant.ListingTypeWTS:
		reserved = h.AvailableForSale
	case constant.ListingTypeWTT:
		reserved = h.AvailableForTrade
	}
	if reserved > 0 && reserved < h.Quantity {
		return reserved
	}
	return h.Quantity
}

// HumidorItemDetail is a humidor row joined with its catalog names.
type HumidorItemDetail struct {
	HumidorItem
	CigarName string `db:"cigar_name" json:"cigar_name"`
	Vitola    string `db:"vitola" json:"vitola"`
	LineName  string `db:"line_name" json:"line_name"`
	BrandName string `db:"brand_name" json:"brand_name"`
}

// HumidorValuationRow carries what GetHumidorStats needs per humidor row.
type HumidorValuationRow struct {
	CigarID            uint64 `db:"cigar_id"`
	Quantity           int64  `db:"quantity"`
	SmokedCount        int64  `db:"smoked_count"`
	PurchasePriceCents *int64 `db:"purchase_price_cents"`
	TypicalStreetCents *int64 `db:"typical_street_cents"`
	MsrpCents          *int64 `db:"msrp_cents"`
}

// UnitPriceCents picks purchase price, then typical street, then MSRP; the
// first value that is set and non-zero wins.
func (r HumidorValuationRow) UnitPriceCents() int64 {
	for _, p := range []*int64{r.PurchasePriceCents, r.TypicalStreetCents, r.MsrpCents} {
		if p != nil && *p != 0 {
			return *p
		}
	}
	return 0
}

type HumidorStats struct {
	TotalCigars     int64 `json:"total_cigars"`
	TotalSmoked     int64 `json:"total_smoked"`
	UniqueCigars    int64 `json:"unique_cigars"`
	TotalValueCents int64 `json:"total_value_cents"`
}

type AddToHumidorRequest struct {
	CigarID            uint64     `json:"cigar_id" validate:"required"`
	Quantity           int64      `json:"quantity" validate:"gte=0"`
	PurchasePriceCents *int64     `json:"purchase_price_cents" validate:"omitempty,gte=0"`
	PurchaseDate       *time.Time `json:"purchase_date"`
}

type SmokeRequest struct {
	Count int64      `json:"count" validate:"gte=1"`
	Date  *time.Time `json:"date"`
}

type AvailabilityRequest struct {
	ForSale  int64 `json:"available_for_sale" validate:"gte=0"`
	ForTrade int64 `json:"available_for_trade" validate:"gte=0"`
}

type ToggleHumidorRequest struct {
	CigarID uint64 `json:"cigar_id" validate:"required"`
}

type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleRemoved ToggleAction = "removed"
)

type ToggleHumidorResponse struct {
	Action ToggleAction `json:"action"`
	Item   *HumidorItem `json:"item,omitempty"`
}

// SmokeUpdate is the input of the atomic smoke statement.
type SmokeUpdate struct {
	ItemID   uint64
	UserID   uint64
	Count    int64
	SmokedAt time.Time
}

// AvailabilityUpdate is the input of the atomic reservation statement.
type AvailabilityUpdate struct {
	ItemID    uint64
	UserID    uint64
	ForSale   int64
	ForTrade  int64
	UpdatedAt time.Time
}
