package engine

import (
	"strings"
	"unicode/utf8"
)

// maxSuggestions caps the suggestion list; later checklist entries are
// dropped once the cap is reached.
const maxSuggestions = 4

// buildSuggestions walks a fixed checklist over the already-computed
// factor scores. Evaluation order is the factor order (length, hashtags,
// emojis, engagement, sentiment, structure) followed by two generic
// fallbacks for low overall scores, truncated to maxSuggestions.
func buildSuggestions(text string, factors []Factor, overall int) []string {
	scores := make(map[FactorName]int, len(factors))
	for _, f := range factors {
		scores[f.Name] = f.Score
	}

	var out []string
	length := utf8.RuneCountInString(text)

	if scores[FactorLength] < 7 {
		if length < 50 {
			out = append(out, "Add more context; very short posts give readers little to engage with.")
		} else if length > 200 {
			out = append(out, "Shorten the post; tighter writing performs better in the feed.")
		}
	}

	if scores[FactorHashtags] < 7 {
		switch n := countHashtags(text); {
		case n == 0:
			out = append(out, "Add 1-2 relevant hashtags to improve discoverability.")
		case n > 3:
			out = append(out, "Reduce hashtags to 2-3; more than that reads as spam.")
		}
	}

	if scores[FactorEmojis] < 7 {
		switch n := countEmojis(text); {
		case n == 0:
			out = append(out, "Add one or two emojis to give the post visual personality.")
		case n > 3:
			out = append(out, "Cut back on emojis; a few go further than a crowd.")
		}
	}

	if scores[FactorEngagement] < 7 {
		out = append(out,
			"Ask a question or add a call to action to invite replies.",
			"Try phrases like \"what do you think\", \"share your experience\", or \"agree or disagree\".")
	}

	if scores[FactorSentiment] < 7 {
		out = append(out, "Use more positive language; upbeat posts travel further.")
	}

	if scores[FactorStructure] < 7 {
		out = append(out, "Break up long sentences or add line breaks for easier scanning.")
	}

	if overall < 60 {
		out = append(out,
			"Share a personal story or lesson; first-hand experience draws people in.",
			"Include a number or statistic to make the post concrete.")
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// bestPostingTime picks a posting window with a fixed decision tree:
// questions do best in the evening, tagged content over lunch, and
// everything else in the morning. The afternoon slot is never chosen.
func bestPostingTime(text string) TimeSlot {
	if strings.Contains(text, "?") {
		return SlotEvening
	}
	if countHashtags(text) >= 1 {
		return SlotLunch
	}
	return SlotMorning
}
