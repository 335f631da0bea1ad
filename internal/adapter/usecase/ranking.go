package usecase

import (
	"math"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
)

// Tuned serving constants. The overdelivery tolerance and the overshoot
// penalty step are fixed contract values; concurrent requests may push a
// campaign slightly past its impression cap before counters catch up, and
// the tolerance bounds that overshoot.
const (
	overdeliveryTolerance = 1.03
	underdeliveryTarget   = 0.95
	maxCatchupBoost       = 0.85
	overshootStep         = 0.01
	overshootPenalty      = 0.10

	profitWeight    = 0.5
	relevanceWeight = 0.25
	pacingWeight    = 0.15

	// Below this candidate count min-max normalization collapses tiny
	// samples (two near-equal values become {0,1}), so max-normalization
	// is used instead.
	minMaxSampleSize = 10
)

// filterEligible removes campaigns the client has already been shown and
// campaigns past their impression cap plus tolerance. An empty result is
// a valid no-fill outcome.
func filterEligible(candidates []domain.Campaign, seen map[uuid.UUID]struct{}) []domain.Campaign {
	filtered := make([]domain.Campaign, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		if float64(c.ImpressionsCount) > float64(c.ImpressionsLimit)*overdeliveryTolerance {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// pacingFactor weighs a campaign by delivery progress against remaining
// window time. Under-delivering campaigns are boosted up to +0.85, on-pace
// campaigns are neutral, and each 1% of overshoot past the cap cuts the
// factor by 10%, floored at zero.
func pacingFactor(c domain.Campaign, currentDay int) float64 {
	limit := c.ImpressionsLimit
	if limit == 0 {
		limit = 1
	}
	progress := float64(c.ImpressionsCount) / float64(limit)

	totalDays := float64(c.EndDate - c.StartDate + 1)
	daysLeft := float64(c.EndDate-currentDay+1) / totalDays

	switch {
	case progress < underdeliveryTarget:
		return 1.0 + math.Min(maxCatchupBoost, (underdeliveryTarget-progress)*daysLeft)
	case progress <= 1.0:
		return 1.0
	default:
		excess := (progress - 1.0) / overshootStep
		return math.Max(0, 1.0-excess*overshootPenalty)
	}
}

// linearNormalization rescales values to [0,1] via min-max. When every
// value is equal the spread is undefined and all values normalize to 1.0.
func linearNormalization(values []float64) []float64 {
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	norms := make([]float64, len(values))
	if minV == maxV {
		for i := range norms {
			norms[i] = 1.0
		}
		return norms
	}
	for i, v := range values {
		norms[i] = (v - minV) / (maxV - minV)
	}
	return norms
}

// maxNormalization divides each value by the set's maximum, guarding a
// zero maximum so an all-zero set stays all-zero.
func maxNormalization(values []float64) []float64 {
	maxV := values[0]
	for _, v := range values[1:] {
		maxV = math.Max(maxV, v)
	}
	if maxV == 0 {
		maxV = 1
	}
	norms := make([]float64, len(values))
	for i, v := range values {
		norms[i] = v / maxV
	}
	return norms
}

// selectBestCampaign ranks the eligible candidates and returns the winner,
// or nil when the filtered set is empty. relevance maps advertiser id to
// the client's ML score; absent advertisers count as zero.
//
// Per candidate the score blends normalized expected profit, normalized
// relevance and the pacing factor with weights 0.5/0.25/0.15. The pacing
// factor is bounded by construction and is deliberately not normalized
// across the set. Ties resolve to the earliest candidate in input order,
// which callers must keep deterministic.
func selectBestCampaign(candidates []domain.Campaign, seen map[uuid.UUID]struct{}, relevance map[uuid.UUID]int, currentDay int) *domain.Campaign {
	filtered := filterEligible(candidates, seen)
	if len(filtered) == 0 {
		return nil
	}

	relevances := make([]float64, len(filtered))
	for i, c := range filtered {
		relevances[i] = float64(relevance[c.AdvertiserID])
	}

	maxRelevance := 0.0
	for _, r := range relevances {
		maxRelevance = math.Max(maxRelevance, r)
	}
	if maxRelevance == 0 {
		maxRelevance = 1
	}

	profits := make([]float64, len(filtered))
	pacing := make([]float64, len(filtered))
	for i, c := range filtered {
		clickProb := relevances[i] / maxRelevance
		profits[i] = c.CostPerImpression + clickProb*c.CostPerClick
		pacing[i] = pacingFactor(c, currentDay)
	}

	var profitNorms, relevanceNorms []float64
	if len(filtered) < minMaxSampleSize {
		profitNorms = maxNormalization(profits)
		relevanceNorms = maxNormalization(relevances)
	} else {
		profitNorms = linearNormalization(profits)
		relevanceNorms = linearNormalization(relevances)
	}

	best, bestScore := -1, math.Inf(-1)
	for i := range filtered {
		score := profitWeight*profitNorms[i] +
			relevanceWeight*relevanceNorms[i] +
			pacingWeight*pacing[i]
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return &filtered[best]
}
