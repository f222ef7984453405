package valuation_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/humidor-club/application/valuation"
	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int, price int64) model.Comp {
	return model.Comp{Date: ref.AddDate(0, 0, -d), PriceCents: price, Qty: 1}
}

func TestCalculate_WeightedMedians(t *testing.T) {
	comps := []model.Comp{daysAgo(10, 1000), daysAgo(20, 1100), daysAgo(70, 900)}

	got := valuation.Calculate(comps, ref)

	require.NotNil(t, got.Score)
	// (1050*0.6 + 900*0.1) / 0.7 = 1028.57
	assert.Equal(t, int64(1029), *got.Score)
	assert.Equal(t, constant.ConfidenceMedium, got.Confidence)
	assert.Equal(t, 3, got.CompCount)
}

func TestCalculate_Thresholds(t *testing.T) {
	tests := []struct {
		name           string
		comps          []model.Comp
		wantScore      bool
		wantConfidence constant.Confidence
	}{
		{
			name:           "two comps are not enough",
			comps:          []model.Comp{daysAgo(1, 1000), daysAgo(2, 1000)},
			wantConfidence: constant.ConfidenceLow,
		},
		{
			name:           "three comps score with medium confidence",
			comps:          []model.Comp{daysAgo(1, 1000), daysAgo(2, 1000), daysAgo(3, 1000)},
			wantScore:      true,
			wantConfidence: constant.ConfidenceMedium,
		},
		{
			name: "ten comps are high confidence",
			comps: []model.Comp{
				daysAgo(1, 1000), daysAgo(2, 1000), daysAgo(3, 1000), daysAgo(4, 1000), daysAgo(5, 1000),
				daysAgo(6, 1000), daysAgo(7, 1000), daysAgo(8, 1000), daysAgo(9, 1000), daysAgo(10, 1000),
			},
			wantScore:      true,
			wantConfidence: constant.ConfidenceHigh,
		},
		{
			name:           "old and future comps are discarded",
			comps:          []model.Comp{daysAgo(1, 1000), daysAgo(2, 1000), daysAgo(91, 1000), daysAgo(-1, 1000)},
			wantConfidence: constant.ConfidenceLow,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := valuation.Calculate(tt.comps, ref)
			assert.Equal(t, tt.wantScore, got.Score != nil)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
		})
	}
}

func TestCalculate_BucketBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		comps     []model.Comp
		wantScore int64
		wantCount int
	}{
		{
			// 1000 recent, 2000 medium: (1000*0.6 + 2000*0.3) / 0.9
			name:      "day 30 is recent and day 31 is medium",
			comps:     []model.Comp{daysAgo(30, 1000), daysAgo(30, 1000), daysAgo(31, 2000)},
			wantScore: 1333,
			wantCount: 3,
		},
		{
			// 1000 medium, 2000 old: (1000*0.3 + 2000*0.1) / 0.4
			name:      "day 60 is medium and day 61 is old",
			comps:     []model.Comp{daysAgo(60, 1000), daysAgo(60, 1000), daysAgo(61, 2000)},
			wantScore: 1250,
			wantCount: 3,
		},
		{
			name:      "day 90 is still counted",
			comps:     []model.Comp{daysAgo(1, 1000), daysAgo(2, 1000), daysAgo(90, 1000)},
			wantScore: 1000,
			wantCount: 3,
		},
		{
			name:      "truncation keeps a comp 90 days and 23 hours old",
			comps:     []model.Comp{daysAgo(1, 1000), daysAgo(2, 1000), {Date: ref.Add(-90*24*time.Hour - 23*time.Hour), PriceCents: 1000, Qty: 1}},
			wantScore: 1000,
			wantCount: 3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := valuation.Calculate(tt.comps, ref)
			require.NotNil(t, got.Score)
			assert.Equal(t, tt.wantScore, *got.Score)
			assert.Equal(t, tt.wantCount, got.CompCount)
		})
	}
}

func TestCalculate_Day91IsDropped(t *testing.T) {
	got := valuation.Calculate([]model.Comp{daysAgo(1, 1000), daysAgo(2, 1000), daysAgo(91, 1000)}, ref)

	assert.Nil(t, got.Score)
	assert.Equal(t, 2, got.CompCount)
	assert.Equal(t, constant.ConfidenceLow, got.Confidence)
}

func TestCalculate_MedianIgnoresOutlier(t *testing.T) {
	comps := []model.Comp{daysAgo(1, 1000), daysAgo(2, 1010), daysAgo(3, 50000)}

	got := valuation.Calculate(comps, ref)

	require.NotNil(t, got.Score)
	assert.Equal(t, int64(1010), *got.Score)
}

func TestCalculate_RenormalisesMissingBuckets(t *testing.T) {
	// medium bucket only: its median is the score
	comps := []model.Comp{daysAgo(40, 800), daysAgo(45, 900), daysAgo(50, 1000)}

	got := valuation.Calculate(comps, ref)

	require.NotNil(t, got.Score)
	assert.Equal(t, int64(900), *got.Score)
}

func TestCalculate_Deltas(t *testing.T) {
	comps := []model.Comp{
		// visible from ref-7d as well
		daysAgo(20, 1000), daysAgo(21, 1000), daysAgo(22, 1000),
		// only visible from ref
		daysAgo(1, 1200), daysAgo(2, 1200), daysAgo(3, 1200),
	}

	got := valuation.Calculate(comps, ref)

	require.NotNil(t, got.Score)
	assert.Equal(t, int64(1100), *got.Score)
	require.NotNil(t, got.Deltas.Day7)
	assert.InDelta(t, 10.0, *got.Deltas.Day7, 0.001)
	// 30 and 90 days back there are fewer than three comps
	assert.Nil(t, got.Deltas.Day30)
	assert.Nil(t, got.Deltas.Day90)
}

func TestCalculate_ZeroPastScoreGivesZeroDelta(t *testing.T) {
	comps := []model.Comp{
		daysAgo(10, 0), daysAgo(11, 0), daysAgo(12, 0),
		daysAgo(1, 500), daysAgo(2, 500), daysAgo(3, 500),
	}

	got := valuation.Calculate(comps, ref)

	require.NotNil(t, got.Deltas.Day7)
	assert.Equal(t, 0.0, *got.Deltas.Day7)
}

func TestCalculate_NoScoreMeansNoDeltas(t *testing.T) {
	got := valuation.Calculate(nil, ref)

	assert.Nil(t, got.Score)
	assert.Equal(t, model.ValuationDeltas{}, got.Deltas)
}

func TestCalculate_IsPure(t *testing.T) {
	comps := []model.Comp{daysAgo(3, 1300), daysAgo(1, 1000), daysAgo(35, 1100), daysAgo(80, 900), daysAgo(2, 1250)}
	snapshot := append([]model.Comp(nil), comps...)

	first := valuation.Calculate(comps, ref)
	second := valuation.Calculate(comps, ref)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, comps, "input must not be reordered")
}
