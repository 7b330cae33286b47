package brief

import "strings"

// Tier is the requested article length class.
type Tier int

// Article length tiers.
const (
	TierShort Tier = iota
	TierMedium
	TierLong
)

// String returns the display name of the tier.
func (t Tier) String() string {
	switch t {
	case TierShort:
		return "Short"
	case TierMedium:
		return "Medium"
	case TierLong:
		return "Long"
	}
	return ""
}

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	for _, t := range []Tier{TierShort, TierMedium, TierLong} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown article tier %q (want short, medium or long)", s)
}

// Competitor heading totals above this threshold raise the target range.
const extraHeadingThreshold = 20

// extraHeadingStep is the number of competitor headings per bonus heading.
const extraHeadingStep = 10

type tierBounds struct {
	min, max  int
	wordCount string
}

var tierTable = map[Tier]tierBounds{
	TierShort:  {min: 5, max: 8, wordCount: "800-1,200 words"},
	TierMedium: {min: 8, max: 12, wordCount: "1,500-2,000 words"},
	TierLong:   {min: 12, max: 20, wordCount: "2,500-3,500 words"},
}

// SizePolicy is the target heading-count range and length guidance derived
// from the tier and the competitors' heading density.
type SizePolicy struct {
	Tier              Tier   `yaml:"-"`
	BaseMin           int    `yaml:"base_min"`
	BaseMax           int    `yaml:"base_max"`
	Extra             int    `yaml:"extra"`
	EffectiveMin      int    `yaml:"effective_min"`
	EffectiveMax      int    `yaml:"effective_max"`
	WordCountGuidance string `yaml:"word_count_guidance"`
}

// NewSizePolicy derives the sizing policy for a tier. Every ten competitor
// headings beyond twenty add one heading to both bounds, capped at the
// width of the tier's base range.
func NewSizePolicy(tier Tier, totalHeadingCount int) SizePolicy {
	b, ok := tierTable[tier]
	if !ok {
		b = tierTable[TierLong]
	}

	var extra int
	if totalHeadingCount > extraHeadingThreshold {
		extra = min((totalHeadingCount-extraHeadingThreshold)/extraHeadingStep, b.max-b.min)
	}

	p := SizePolicy{
		Tier:              tier,
		BaseMin:           b.min,
		BaseMax:           b.max,
		Extra:             extra,
		EffectiveMin:      b.min + extra,
		EffectiveMax:      b.max + extra,
		WordCountGuidance: b.wordCount,
	}
	p.EffectiveMin = min(p.EffectiveMin, p.EffectiveMax)
	return p
}
