// Package engine scores a short text post against a fixed set of heuristics.
//
// Analyze is a pure function: the same input always produces the same
// Result, no state is kept between calls, and it is safe to call from
// multiple goroutines.
package engine

// MaxPostLength is the character budget callers enforce on post bodies.
// The engine still scores longer input; overlength is a scoring factor,
// not an error.
const MaxPostLength = 280

// FactorName identifies one of the six scoring factors.
type FactorName string

const (
	FactorLength     FactorName = "length"
	FactorHashtags   FactorName = "hashtags"
	FactorEmojis     FactorName = "emojis"
	FactorEngagement FactorName = "engagement"
	FactorSentiment  FactorName = "sentiment"
	FactorStructure  FactorName = "structure"
)

// Factor is one heuristic sub-score. Score is always in [1,10] and Weight
// is the factor's fixed share of the overall score.
type Factor struct {
	Name   FactorName `json:"name"`
	Weight float64    `json:"weight"`
	Score  int        `json:"score"`
}

// EngagementLevel is the categorical engagement label derived from the
// overall score.
type EngagementLevel string

const (
	EngagementVeryLow  EngagementLevel = "Very Low"
	EngagementLow      EngagementLevel = "Low"
	EngagementMedium   EngagementLevel = "Medium"
	EngagementHigh     EngagementLevel = "High"
	EngagementVeryHigh EngagementLevel = "Very High"
)

// ReachLevel is the categorical reach label derived from the overall score.
type ReachLevel string

const (
	ReachLow     ReachLevel = "Low Reach"
	ReachLimited ReachLevel = "Limited Reach"
	ReachGood    ReachLevel = "Good Reach"
	ReachHigh    ReachLevel = "High Reach"
	ReachViral   ReachLevel = "Viral Potential"
)

// TimeSlot is a recommended posting window.
type TimeSlot string

const (
	SlotMorning TimeSlot = "8:00 AM - 10:00 AM"
	SlotLunch   TimeSlot = "12:00 PM - 1:00 PM"
	// SlotAfternoon is defined for forward compatibility but the current
	// decision tree never selects it.
	SlotAfternoon TimeSlot = "3:00 PM - 5:00 PM"
	SlotEvening   TimeSlot = "6:00 PM - 9:00 PM"
)

// Result is the complete analysis of one post. It has no identity beyond
// the call that produced it.
type Result struct {
	OverallScore       int             `json:"overallScore"`
	EngagementLevel    EngagementLevel `json:"engagementLevel"`
	ReachLevel         ReachLevel      `json:"reachLevel"`
	Narrative          string          `json:"narrative"`
	Suggestions        []string        `json:"suggestions"`
	OptimalPostingTime TimeSlot        `json:"optimalPostingTime"`
	Factors            []Factor        `json:"factors"`
}

// engagementFor maps a 0-100 overall score to its engagement band.
// Bands are evaluated high to low, first match wins.
func engagementFor(overall int) EngagementLevel {
	switch {
	case overall >= 80:
		return EngagementVeryHigh
	case overall >= 65:
		return EngagementHigh
	case overall >= 50:
		return EngagementMedium
	case overall >= 35:
		return EngagementLow
	default:
		return EngagementVeryLow
	}
}

// reachFor maps a 0-100 overall score to its reach band using the same
// thresholds as engagementFor.
func reachFor(overall int) ReachLevel {
	switch {
	case overall >= 80:
		return ReachViral
	case overall >= 65:
		return ReachHigh
	case overall >= 50:
		return ReachGood
	case overall >= 35:
		return ReachLimited
	default:
		return ReachLow
	}
}
