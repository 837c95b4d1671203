package sanctuary

// Stage is the discrete growth stage of the gratitude tree.
type Stage uint8

const (
	StageSprouting Stage = iota
	StageGrowing
	StageBlooming
	StageFlourishing
	StageAncient
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSprouting:
		return "Sprouting"
	case StageGrowing:
		return "Growing"
	case StageBlooming:
		return "Blooming"
	case StageFlourishing:
		return "Flourishing"
	case StageAncient:
		return "Ancient"
	}
	return "Unknown"
}

// Growth thresholds in gratitude entries.
const (
	growingAt     = 5
	bloomingAt    = 10
	flourishingAt = 15
	ancientAt     = 20

	rootsAt   = growingAt
	flowersAt = bloomingAt

	maxTrunkHeight = 280
	maxBranchCount = 12
	// MaxDrawnBranches caps how many branches the renderer actually draws.
	MaxDrawnBranches = 10
)

// TreeMorphology is the structural description of the tree for a given
// gratitude count. It is derived on every render and never stored.
type TreeMorphology struct {
	LeafCount      int
	Stage          Stage
	TrunkHeight    float64
	TrunkWidth     float64
	BranchCount    int
	HasRoots       bool
	FlowersEnabled bool
}

// MorphologyFor maps a gratitude-entry count to a TreeMorphology. It has no
// hidden state: equal counts always produce equal values. Negative counts
// are treated as zero.
func MorphologyFor(leafCount int) TreeMorphology {
	n := max(leafCount, 0)

	stage := StageSprouting
	switch {
	case n >= ancientAt:
		stage = StageAncient
	case n >= flourishingAt:
		stage = StageFlourishing
	case n >= bloomingAt:
		stage = StageBlooming
	case n >= growingAt:
		stage = StageGrowing
	}

	return TreeMorphology{
		LeafCount:      n,
		Stage:          stage,
		TrunkHeight:    min(float64(n)*10+60, maxTrunkHeight),
		TrunkWidth:     25 + float64(n)*1.5,
		BranchCount:    min(n/2, maxBranchCount),
		HasRoots:       n >= rootsAt,
		FlowersEnabled: n >= flowersAt,
	}
}

// DrawnBranches returns the number of branches the renderer will draw.
func (m TreeMorphology) DrawnBranches() int {
	return min(m.BranchCount, MaxDrawnBranches)
}
