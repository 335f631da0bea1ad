package usecase

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"orbit-ads/internal/core/domain"
)

func campaignFixture(impLimit, impCount int) domain.Campaign {
	return domain.Campaign{
		ID:               uuid.New(),
		AdvertiserID:     uuid.New(),
		ImpressionsLimit: impLimit,
		ImpressionsCount: impCount,
		StartDate:        0,
		EndDate:          9,
	}
}

func TestFilterEligibleSkipsSeen(t *testing.T) {
	a := campaignFixture(100, 0)
	b := campaignFixture(100, 0)
	seen := map[uuid.UUID]struct{}{a.ID: {}}

	filtered := filterEligible([]domain.Campaign{a, b}, seen)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(filtered))
	}
	if filtered[0].ID != b.ID {
		t.Fatalf("expected the unseen campaign to survive the filter")
	}
}

// A campaign sitting exactly at limit*1.03 impressions is still servable;
// one impression past that is not.
func TestFilterEligibleOverdeliveryBoundary(t *testing.T) {
	atBoundary := campaignFixture(100, 103)
	pastBoundary := campaignFixture(100, 104)

	filtered := filterEligible([]domain.Campaign{atBoundary, pastBoundary}, nil)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 campaign, got %d", len(filtered))
	}
	if filtered[0].ID != atBoundary.ID {
		t.Fatalf("expected the at-boundary campaign to survive the filter")
	}
}

func TestPacingFactor(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		count    int
		day      int
		expected float64
	}{
		{"fresh campaign on day one gets the full boost", 100, 0, 0, 1.85},
		{"on pace at the target", 100, 95, 0, 1.0},
		{"exactly at the limit", 100, 100, 0, 1.0},
		{"one percent overshoot", 100, 101, 0, 0.9},
		{"ten percent overshoot floors at zero", 100, 110, 0, 0.0},
		{"twenty percent overshoot stays at zero", 100, 120, 0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := campaignFixture(tt.limit, tt.count)
			got := pacingFactor(c, tt.day)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Fatalf("pacingFactor = %v, want %v", got, tt.expected)
			}
		})
	}
}

// Little window time left shrinks the catch-up boost proportionally.
func TestPacingFactorBoostShrinksNearWindowEnd(t *testing.T) {
	c := campaignFixture(100, 0)
	// Last day of a ten-day window: daysLeft = 1/10.
	got := pacingFactor(c, 9)
	want := 1.0 + 0.95*0.1
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("pacingFactor = %v, want %v", got, want)
	}
}

func TestMaxNormalization(t *testing.T) {
	got := maxNormalization([]float64{1.0, 2.0})
	if math.Abs(got[0]-0.5) > 1e-9 || math.Abs(got[1]-1.0) > 1e-9 {
		t.Fatalf("maxNormalization = %v, want [0.5 1.0]", got)
	}

	zeros := maxNormalization([]float64{0, 0, 0})
	for _, v := range zeros {
		if v != 0 {
			t.Fatalf("all-zero input must stay all-zero, got %v", zeros)
		}
	}
}

func TestLinearNormalizationEqualValues(t *testing.T) {
	got := linearNormalization([]float64{3, 3, 3, 3})
	for _, v := range got {
		if v != 1.0 {
			t.Fatalf("equal values must normalize to 1.0, got %v", got)
		}
	}
}

func TestLinearNormalizationSpread(t *testing.T) {
	got := linearNormalization([]float64{1, 2, 3})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("linearNormalization = %v, want %v", got, want)
		}
	}
}

func TestSelectBestCampaignEmpty(t *testing.T) {
	if got := selectBestCampaign(nil, nil, nil, 0); got != nil {
		t.Fatalf("expected nil for no candidates, got %v", got)
	}

	only := campaignFixture(100, 0)
	seen := map[uuid.UUID]struct{}{only.ID: {}}
	if got := selectBestCampaign([]domain.Campaign{only}, seen, nil, 0); got != nil {
		t.Fatalf("expected nil when every candidate is filtered out, got %v", got)
	}
}

// The higher-profit, higher-relevance campaign wins the blended score.
func TestSelectBestCampaignPrefersProfitAndRelevance(t *testing.T) {
	strong := campaignFixture(100, 0)
	strong.CostPerImpression = 0.2
	strong.CostPerClick = 1.5
	weak := campaignFixture(100, 0)
	weak.CostPerImpression = 0.1
	weak.CostPerClick = 1.0

	relevance := map[uuid.UUID]int{
		strong.AdvertiserID: 90,
		weak.AdvertiserID:   80,
	}

	got := selectBestCampaign([]domain.Campaign{weak, strong}, nil, relevance, 0)
	if got == nil {
		t.Fatal("expected a winner")
	}
	if got.ID != strong.ID {
		t.Fatalf("expected the stronger campaign to win, got %v", got.ID)
	}
}

// A badly overshooting campaign loses to a modest one because its pacing
// factor collapses to zero.
func TestSelectBestCampaignPenalizesOvershoot(t *testing.T) {
	overshooting := campaignFixture(100, 102)
	overshooting.CostPerImpression = 1.0
	modest := campaignFixture(100, 0)
	modest.CostPerImpression = 1.0

	got := selectBestCampaign([]domain.Campaign{overshooting, modest}, nil, nil, 0)
	if got == nil {
		t.Fatal("expected a winner")
	}
	if got.ID != modest.ID {
		t.Fatalf("expected the modest campaign to win, got %v", got.ID)
	}
}

// When scores tie exactly the first candidate in input order wins.
func TestSelectBestCampaignTieBreak(t *testing.T) {
	first := campaignFixture(100, 0)
	first.CostPerImpression = 1.0
	second := campaignFixture(100, 0)
	second.CostPerImpression = 1.0

	got := selectBestCampaign([]domain.Campaign{first, second}, nil, nil, 0)
	if got == nil {
		t.Fatal("expected a winner")
	}
	if got.ID != first.ID {
		t.Fatalf("expected the first candidate to win the tie, got %v", got.ID)
	}
}

// Ten or more candidates switch profit and relevance to min-max
// normalization, which zeroes the weakest candidate's contribution.
func TestSelectBestCampaignLargeSample(t *testing.T) {
	relevance := make(map[uuid.UUID]int)
	candidates := make([]domain.Campaign, 0, 10)
	for i := 0; i < 10; i++ {
		c := campaignFixture(100, 0)
		c.CostPerImpression = float64(i + 1)
		relevance[c.AdvertiserID] = (i + 1) * 10
		candidates = append(candidates, c)
	}

	got := selectBestCampaign(candidates, nil, relevance, 0)
	if got == nil {
		t.Fatal("expected a winner")
	}
	if got.ID != candidates[9].ID {
		t.Fatalf("expected the top candidate to win, got %v", got.ID)
	}
}
