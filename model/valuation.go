package model

import (
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
)

// Comp is a comparable sale: a unit price observed on a date.
type Comp struct {
	Date       time.Time `db:"date" json:"date"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	Qty        int64     `db:"qty" json:"qty"`
}

// ValuationDeltas are percentage changes of the current score against the
// score recomputed 7, 30 and 90 days earlier. Nil when either side has no score.
type ValuationDeltas struct {
	Day7  *float64 `json:"day_7"`
	Day30 *float64 `json:"day_30"`
	Day90 *float64 `json:"day_90"`
}

type Valuation struct {
	Score      *int64              `json:"score_cents"`
	Confidence constant.Confidence `json:"confidence"`
	CompCount  int                 `json:"comp_count"`
	Deltas     ValuationDeltas     `json:"deltas"`
}

type CigarValuation struct {
	CigarID       uint64    `json:"cigar_id"`
	ReferenceDate time.Time `json:"reference_date"`
	Valuation
}
