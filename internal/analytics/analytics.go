// Package analytics derives board-wide figures from the record list.
// Compute is pure; Memo caches the last result per store revision.
package analytics

import (
	"sync"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

// Clear is reported as the bottleneck when no non-terminal stage holds a record.
const Clear domain.Stage = "CLEAR"

// StageCount is the number of outlets in one stage.
type StageCount struct {
	Stage domain.Stage `json:"stage"`
	Count int          `json:"count"`
}

// CityCount is the number of outlets assigned to one city.
type CityCount struct {
	City  domain.City `json:"city"`
	Count int         `json:"count"`
}

// Report is the derived analytics snapshot for one version of the board.
type Report struct {
	Total     int `json:"total"`
	LiveCount int `json:"liveCount"`
	// Stages has one entry per catalog stage, in catalog order.
	Stages []StageCount `json:"stages"`
	// Cities has one entry per catalog city, in catalog order.
	Cities []CityCount `json:"cities"`
	// Unassigned counts outlets with no (or an unknown) city.
	Unassigned int `json:"unassigned"`
	// PipelineHealth is the rounded percentage of outlets in the terminal stage.
	PipelineHealth  int          `json:"pipelineHealth"`
	Bottleneck      domain.Stage `json:"bottleneck"`
	BottleneckClear bool         `json:"bottleneckClear"`
}

// StageCount returns the count for s, or 0 when s is not in the report.
func (r Report) StageCount(s domain.Stage) int {
	for _, sc := range r.Stages {
		if sc.Stage == s {
			return sc.Count
		}
	}
	return 0
}

// CityCount returns the count for c, or 0 when c is not in the report.
func (r Report) CityCount(c domain.City) int {
	for _, cc := range r.Cities {
		if cc.City == c {
			return cc.Count
		}
	}
	return 0
}

// Compute derives the report for records against the given catalogs.
//
// The bottleneck is the non-terminal stage with the strictly highest count;
// ties go to the stage that comes first in the catalog. When every
// non-terminal stage is empty the bottleneck is Clear.
func Compute(records []domain.Outlet, stages domain.StageCatalog, cities domain.CityCatalog) Report {
	terminal := stages.Terminal()

	byStage := make(map[domain.Stage]int, len(stages))
	byCity := make(map[domain.City]int, len(cities))
	live := 0
	for _, o := range records {
		byStage[o.Stage]++
		byCity[o.City]++
		if o.Stage == terminal {
			live++
		}
	}

	r := Report{
		Total:     len(records),
		LiveCount: live,
		Stages:    make([]StageCount, len(stages)),
		Cities:    make([]CityCount, len(cities)),
	}
	for i, cfg := range stages {
		r.Stages[i] = StageCount{Stage: cfg.ID, Count: byStage[cfg.ID]}
	}
	assigned := 0
	for i, c := range cities {
		r.Cities[i] = CityCount{City: c, Count: byCity[c]}
		assigned += byCity[c]
	}
	r.Unassigned = r.Total - assigned
	r.PipelineHealth = health(live, r.Total)

	best, bestCount := domain.Stage(""), 0
	for _, sc := range r.Stages {
		if sc.Stage == terminal {
			continue
		}
		if sc.Count > bestCount {
			best, bestCount = sc.Stage, sc.Count
		}
	}
	if bestCount == 0 {
		r.Bottleneck, r.BottleneckClear = Clear, true
	} else {
		r.Bottleneck = best
	}
	return r
}

// health is round(live/total*100) with halves rounded up, and 0 for an empty board.
func health(live, total int) int {
	if total == 0 {
		return 0
	}
	return (live*200 + total) / (2 * total)
}

// Memo caches the report for the most recent revision.
// The zero value is ready to use.
type Memo struct {
	mu       sync.Mutex
	valid    bool
	revision uint64
	report   Report
}

// Get returns the cached report when revision matches the last call,
// otherwise it calls compute and caches the result.
func (m *Memo) Get(revision uint64, compute func() Report) Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.revision == revision {
		return m.report
	}
	m.report = compute()
	m.revision = revision
	m.valid = true
	return m.report
}
