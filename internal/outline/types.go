package outline

// AudienceBand selects the grade-band linguistic rule set applied to all
// generated content for a unit.
type AudienceBand string

const (
	BandElementary AudienceBand = "elementary"
	BandMiddle     AudienceBand = "middle"
	BandHighSchool AudienceBand = "high-school"
)

// LengthTier fixes the number of discrete steps in a unit.
type LengthTier string

const (
	TierShort  LengthTier = "short"
	TierMedium LengthTier = "medium"
	TierLong   LengthTier = "long"
)

// StepCount returns the fixed step count for a tier. Unknown tiers get the
// medium count.
func (t LengthTier) StepCount() int {
	switch t {
	case TierShort:
		return 3
	case TierLong:
		return 7
	default:
		return 5
	}
}

// Mode adjusts the generation register.
type Mode string

const (
	// ModeStandard keeps the content close to the source text.
	ModeStandard Mode = "standard"
	// ModeCreative allows examples and framing beyond the source.
	ModeCreative Mode = "creative"
)

// UnitSkeleton is the high-level plan of a content unit before per-step
// detail is generated.
type UnitSkeleton struct {
	Title string
	Steps []SkeletonStep
}

// SkeletonStep is one planned step. NarrativeFocus is the step's allowed
// topic; ForbiddenTopics is the union of every other step's focus, so the
// steps are non-overlapping by construction.
type SkeletonStep struct {
	Index                int
	Title                string
	NarrativeFocus       string
	ForbiddenTopics      []string
	BloomLevel           string
	SuggestedInteraction string
}

// bloomDistributions assigns a cognitive-level tag to each step position,
// keyed by step count. The ramp always starts at recall and ends at
// creation; longer units fill in the middle of the taxonomy.
var bloomDistributions = map[int][]string{
	3: {"Remember", "Analyze", "Create"},
	5: {"Remember", "Understand", "Apply", "Analyze", "Create"},
	7: {"Remember", "Understand", "Apply", "Analyze", "Analyze", "Evaluate", "Create"},
}

// BloomLevels returns the cognitive-level distribution for n steps.
// Counts outside the table ramp linearly between recall and creation.
func BloomLevels(n int) []string {
	if levels, ok := bloomDistributions[n]; ok {
		return levels
	}
	ramp := []string{"Remember", "Understand", "Apply", "Analyze", "Evaluate", "Create"}
	out := make([]string, n)
	for i := range n {
		idx := i * (len(ramp) - 1) / max(n-1, 1)
		out[i] = ramp[idx]
	}
	return out
}
