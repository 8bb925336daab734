package analytics_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/analytics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

func outletsIn(stages ...domain.Stage) []domain.Outlet {
	out := make([]domain.Outlet, len(stages))
	for i, s := range stages {
		out[i] = domain.Outlet{ID: fmt.Sprintf("O%d", i), Stage: s}
	}
	return out
}

func TestCompute_EmptyBoard(t *testing.T) {
	r := analytics.Compute(nil, domain.Stages, domain.Cities)

	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0, r.LiveCount)
	assert.Equal(t, 0, r.PipelineHealth)
	assert.True(t, r.BottleneckClear)
	assert.Equal(t, analytics.Clear, r.Bottleneck)
	require.Len(t, r.Stages, len(domain.Stages))
	require.Len(t, r.Cities, len(domain.Cities))
	for _, sc := range r.Stages {
		assert.Zero(t, sc.Count, sc.Stage)
	}
}

func TestCompute_Counts(t *testing.T) {
	records := []domain.Outlet{
		{ID: "1", Stage: domain.StageOnboardingRequest, City: "Bengaluru"},
		{ID: "2", Stage: domain.StageOverlapCheck, City: "Mumbai"},
		{ID: "3", Stage: domain.StageOverlapCheck, City: "Mumbai"},
		{ID: "4", Stage: domain.StageOutletLive, City: "Delhi"},
		{ID: "5", Stage: domain.StageOutletLive},
	}

	r := analytics.Compute(records, domain.Stages, domain.Cities)

	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 2, r.LiveCount)
	assert.Equal(t, 40, r.PipelineHealth)
	assert.Equal(t, 1, r.StageCount(domain.StageOnboardingRequest))
	assert.Equal(t, 2, r.StageCount(domain.StageOverlapCheck))
	assert.Equal(t, 0, r.StageCount(domain.StageMOUSign))
	assert.Equal(t, 2, r.CityCount("Mumbai"))
	assert.Equal(t, 0, r.CityCount("Pune"))
	assert.Equal(t, 1, r.Unassigned)
	assert.Equal(t, domain.StageOverlapCheck, r.Bottleneck)
	assert.False(t, r.BottleneckClear)

	for i, sc := range r.Stages {
		assert.Equal(t, domain.Stages[i].ID, sc.Stage, "stages follow catalog order")
	}
}

func TestCompute_PipelineHealthRounding(t *testing.T) {
	tests := []struct {
		live, total, want int
	}{
		{live: 0, total: 3, want: 0},
		{live: 1, total: 3, want: 33},
		{live: 2, total: 3, want: 67},
		{live: 1, total: 8, want: 13},  // 12.5 rounds up
		{live: 1, total: 200, want: 1}, // 0.5 rounds up
		{live: 3, total: 3, want: 100},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tc.live, tc.total), func(t *testing.T) {
			stages := make([]domain.Stage, 0, tc.total)
			for i := 0; i < tc.total; i++ {
				if i < tc.live {
					stages = append(stages, domain.StageOutletLive)
				} else {
					stages = append(stages, domain.StageMOUSign)
				}
			}
			r := analytics.Compute(outletsIn(stages...), domain.Stages, domain.Cities)
			assert.Equal(t, tc.want, r.PipelineHealth)
		})
	}
}

func TestCompute_BottleneckTieGoesToCatalogOrder(t *testing.T) {
	records := outletsIn(
		domain.StageIntegration, domain.StageIntegration,
		domain.StageChefApproval, domain.StageChefApproval,
	)
	r := analytics.Compute(records, domain.Stages, domain.Cities)
	assert.Equal(t, domain.StageChefApproval, r.Bottleneck)
}

func TestCompute_BottleneckIgnoresTerminal(t *testing.T) {
	records := outletsIn(domain.StageOutletLive, domain.StageOutletLive, domain.StageOutletLive)
	r := analytics.Compute(records, domain.Stages, domain.Cities)

	assert.True(t, r.BottleneckClear)
	assert.Equal(t, analytics.Clear, r.Bottleneck)
	assert.Equal(t, 100, r.PipelineHealth)

	records = append(records, domain.Outlet{ID: "x", Stage: domain.StageLocationChange})
	r = analytics.Compute(records, domain.Stages, domain.Cities)
	assert.Equal(t, domain.StageLocationChange, r.Bottleneck)
}

// Three stages A, B, C with one record each; dragging B's record to C
// yields {A:1, B:0, C:2}.
func TestCompute_DragExample(t *testing.T) {
	catalog := domain.StageCatalog{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "LIVE"}}
	records := []domain.Outlet{
		{ID: "1", Stage: "A"},
		{ID: "2", Stage: "B"},
		{ID: "3", Stage: "C"},
	}
	before := analytics.Compute(records, catalog, nil)
	assert.Equal(t, domain.Stage("A"), before.Bottleneck, "three-way tie goes to the first stage")

	records[1].Stage = "C"
	after := analytics.Compute(records, catalog, nil)
	assert.Equal(t, 1, after.StageCount("A"))
	assert.Equal(t, 0, after.StageCount("B"))
	assert.Equal(t, 2, after.StageCount("C"))
	assert.Equal(t, domain.Stage("C"), after.Bottleneck)
}

func TestCompute_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 200; iter++ {
		n := rng.IntN(30)
		records := make([]domain.Outlet, n)
		for i := range records {
			records[i] = domain.Outlet{
				ID:    fmt.Sprintf("%d-%d", iter, i),
				Stage: domain.Stages[rng.IntN(len(domain.Stages))].ID,
				City:  domain.Cities[rng.IntN(len(domain.Cities))],
			}
		}

		r := analytics.Compute(records, domain.Stages, domain.Cities)

		sum := 0
		nonTerminal := 0
		for _, sc := range r.Stages {
			sum += sc.Count
			if sc.Stage != domain.Stages.Terminal() {
				nonTerminal += sc.Count
			}
		}
		assert.Equal(t, r.Total, sum, "stage counts sum to total")
		assert.GreaterOrEqual(t, r.PipelineHealth, 0)
		assert.LessOrEqual(t, r.PipelineHealth, 100)
		assert.NotEqual(t, domain.Stages.Terminal(), r.Bottleneck, "bottleneck is never terminal")
		assert.Equal(t, nonTerminal == 0, r.BottleneckClear, "clear iff every non-terminal stage is empty")
		if n == 0 {
			assert.Equal(t, 0, r.PipelineHealth)
		}
	}
}

func TestMemo_RecomputesOnlyOnNewRevision(t *testing.T) {
	var m analytics.Memo
	calls := 0
	compute := func() analytics.Report {
		calls++
		return analytics.Report{Total: calls}
	}

	assert.Equal(t, 1, m.Get(0, compute).Total)
	assert.Equal(t, 1, m.Get(0, compute).Total)
	assert.Equal(t, 2, m.Get(1, compute).Total)
	assert.Equal(t, 2, m.Get(1, compute).Total)
	assert.Equal(t, 2, calls)
}
