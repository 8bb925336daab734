package domain

// Stage is one discrete phase of the onboarding workflow. The board renders
// one column per stage, in catalog order.
type Stage string

// Workflow stages, in pipeline order.
const (
	StageOnboardingRequest Stage = "ONBOARDING REQUEST"
	StageOverlapCheck      Stage = "OVERLAP CHECK"
	StageChefApproval      Stage = "CHEF APPROVAL"
	StageFassiApply        Stage = "FASSI APPLY"
	StageIDCreation        Stage = "ID CREATION"
	StageCommissionUpdate  Stage = "COMMISSION UPDATE"
	StageMOUSign           Stage = "MOU SIGN"
	StageLocationChange    Stage = "LOCATION CHANGE"
	StageIntegration       Stage = "INTEGRATION"
	StageOutletLive        Stage = "OUTLET LIVE"
)

// StageConfig pairs a stage with the color token its column is drawn with.
type StageConfig struct {
	ID    Stage  `json:"id"`
	Color string `json:"color"`
}

// StageCatalog is the ordered, immutable list of workflow stages.
// Order is significant: the first entry is where new outlets start and the
// last entry is the terminal "live" stage.
type StageCatalog []StageConfig

// Stages is the catalog used by the board.
var Stages = StageCatalog{
	{ID: StageOnboardingRequest, Color: "blue"},
	{ID: StageOverlapCheck, Color: "amber"},
	{ID: StageChefApproval, Color: "purple"},
	{ID: StageFassiApply, Color: "pink"},
	{ID: StageIDCreation, Color: "indigo"},
	{ID: StageCommissionUpdate, Color: "cyan"},
	{ID: StageMOUSign, Color: "orange"},
	{ID: StageLocationChange, Color: "teal"},
	{ID: StageIntegration, Color: "rose"},
	{ID: StageOutletLive, Color: "emerald"},
}

// First returns the stage new outlets are created in.
// Returns "" for an empty catalog.
func (c StageCatalog) First() Stage {
	if len(c) == 0 {
		return ""
	}
	return c[0].ID
}

// Terminal returns the last stage of the pipeline ("live").
// Returns "" for an empty catalog.
func (c StageCatalog) Terminal() Stage {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].ID
}

// Contains reports whether s is a member of the catalog.
func (c StageCatalog) Contains(s Stage) bool {
	return c.Index(s) >= 0
}

// Index returns the position of s in the catalog, or -1.
func (c StageCatalog) Index(s Stage) int {
	for i, cfg := range c {
		if cfg.ID == s {
			return i
		}
	}
	return -1
}

// IDs returns the stage identifiers in catalog order.
func (c StageCatalog) IDs() []Stage {
	out := make([]Stage, len(c))
	for i, cfg := range c {
		out[i] = cfg.ID
	}
	return out
}
