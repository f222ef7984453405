package valuation

import (
	"sort"
	"time"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/shopspring/decimal"
)

const (
	day = 24 * time.Hour

	// MinComps is the smallest comp set that produces a score.
	MinComps = 3
	// HighConfidenceComps is where confidence becomes HIGH.
	HighConfidenceComps = 10

	maxAgeDays = 90
)

type bucket struct {
	maxAge int
	weight decimal.Decimal
}

// recent, medium, old
var buckets = []bucket{
	{maxAge: 30, weight: decimal.RequireFromString("0.6")},
	{maxAge: 60, weight: decimal.RequireFromString("0.3")},
	{maxAge: 90, weight: decimal.RequireFromString("0.1")},
}

// Calculate scores comps against ref. It has no side effects: the same comps
// and ref always give the same result.
func Calculate(comps []model.Comp, ref time.Time) model.Valuation {
	score, n := index(comps, ref)
	v := model.Valuation{
		Score:      score,
		CompCount:  n,
		Confidence: confidence(n),
	}

	v.Deltas = model.ValuationDeltas{
		Day7:  delta(score, comps, ref.Add(-7*day)),
		Day30: delta(score, comps, ref.Add(-30*day)),
		Day90: delta(score, comps, ref.Add(-90*day)),
	}
	return v
}

// index returns the weighted median score in cents and the number of comps
// inside the window. The score is nil below MinComps. Age is counted in whole
// days, truncated: a comp 90d23h old is still in the window and one 30d23h
// old is still recent.
func index(comps []model.Comp, ref time.Time) (*int64, int) {
	prices := make([][]int64, len(buckets))
	n := 0
	for _, c := range comps {
		if c.Date.After(ref) {
			continue
		}
		age := int(ref.Sub(c.Date) / day)
		if age > maxAgeDays {
			continue
		}
		for i, b := range buckets {
			if age <= b.maxAge {
				prices[i] = append(prices[i], c.PriceCents)
				break
			}
		}
		n++
	}
	if n < MinComps {
		return nil, n
	}

	sum, weights := decimal.Zero, decimal.Zero
	for i, b := range buckets {
		if len(prices[i]) == 0 {
			continue
		}
		sum = sum.Add(median(prices[i]).Mul(b.weight))
		weights = weights.Add(b.weight)
	}

	// Round is half away from zero.
	score := sum.Div(weights).Round(0).IntPart()
	return &score, n
}

func median(values []int64) decimal.Decimal {
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return decimal.NewFromInt(sorted[mid])
	}
	return decimal.NewFromInt(sorted[mid-1]).Add(decimal.NewFromInt(sorted[mid])).Div(decimal.NewFromInt(2))
}

func confidence(n int) constant.Confidence {
	switch {
	case n >= HighConfidenceComps:
		return constant.ConfidenceHigh
	case n >= MinComps:
		return constant.ConfidenceMedium
	default:
		return constant.ConfidenceLow
	}
}

func delta(current *int64, comps []model.Comp, past time.Time) *float64 {
	if current == nil {
		return nil
	}
	prev, _ := index(comps, past)
	if prev == nil {
		return nil
	}
	if *prev == 0 {
		zero := 0.0
		return &zero
	}

	pct, _ := decimal.NewFromInt(*current - *prev).
		Div(decimal.NewFromInt(*prev)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return &pct
}
