package engine

import "math"

// Factor weights. They sum to 1.0, so the weighted average stays on the
// same 1-10 scale as the individual factor scores.
const (
	weightLength     = 0.20
	weightHashtags   = 0.15
	weightEmojis     = 0.15
	weightEngagement = 0.20
	weightSentiment  = 0.15
	weightStructure  = 0.15
)

// analyzers is the fixed dispatch table for the six factors. Each analyzer
// is a pure function of the text; none may depend on another's result. The
// order here is also the tie-break order used by the suggestion checklist.
var analyzers = []struct {
	name   FactorName
	weight float64
	score  func(string) int
}{
	{FactorLength, weightLength, scoreLength},
	{FactorHashtags, weightHashtags, scoreHashtags},
	{FactorEmojis, weightEmojis, scoreEmojis},
	{FactorEngagement, weightEngagement, scoreEngagement},
	{FactorSentiment, weightSentiment, scoreSentiment},
	{FactorStructure, weightStructure, scoreStructure},
}

// Analyze scores a post body and returns the full analysis. It is total
// over strings: empty input, input with no letters, and input beyond
// MaxPostLength all score through the analyzers' base branches.
func Analyze(text string) Result {
	factors := make([]Factor, len(analyzers))
	weighted := 0.0
	for i, a := range analyzers {
		score := a.score(text)
		factors[i] = Factor{Name: a.name, Weight: a.weight, Score: score}
		weighted += float64(score) * a.weight
	}

	// Rescale the 1-10 weighted average to 0-100 for display.
	overall := int(math.Round(weighted * 10))

	return Result{
		OverallScore:       overall,
		EngagementLevel:    engagementFor(overall),
		ReachLevel:         reachFor(overall),
		Narrative:          buildNarrative(overall, factors),
		Suggestions:        buildSuggestions(text, factors, overall),
		OptimalPostingTime: bestPostingTime(text),
		Factors:            factors,
	}
}
