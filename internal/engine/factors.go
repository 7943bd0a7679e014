package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	hashtagPattern  = regexp.MustCompile(`#\w+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// scoreLength rates the post's character count. Bands overlap on purpose
// and are evaluated in priority order, first match wins: a 100-char post
// scores 10 even though it also sits inside the 50-140 band.
func scoreLength(text string) int {
	n := utf8.RuneCountInString(text)
	switch {
	case n >= 71 && n <= 100:
		return 10
	case n >= 50 && n <= 140:
		return 8
	case n >= 140 && n <= 200:
		return 7
	case n < 30:
		return 4
	case n > 250:
		return 3
	default:
		return 5
	}
}

// scoreHashtags rates hashtag usage. One or two tags is the sweet spot;
// none is a missed opportunity, more than three reads as spam.
func scoreHashtags(text string) int {
	switch n := countHashtags(text); {
	case n >= 1 && n <= 2:
		return 10
	case n == 3:
		return 8
	case n == 0:
		return 6
	case n > 3:
		return 4
	default:
		return 5
	}
}

// scoreEmojis rates emoji usage with the same shape as hashtags, except
// that a count of exactly 4 falls through to the base score.
func scoreEmojis(text string) int {
	switch n := countEmojis(text); {
	case n >= 1 && n <= 2:
		return 10
	case n == 3:
		return 8
	case n == 0:
		return 6
	case n > 4:
		return 4
	default:
		return 5
	}
}

// scoreEngagement rates interaction prompts: questions, measured
// exclamation, and engagement vocabulary. Three or more exclamation marks
// earn nothing extra; that is a deliberate non-bonus, not a penalty.
func scoreEngagement(text string) int {
	score := 5

	questions := strings.Count(text, "?")
	exclamations := strings.Count(text, "!")
	terms := countContainedTerms(text, engagementVocabulary)

	if questions >= 1 {
		score += 2
	}
	if exclamations >= 1 && exclamations <= 2 {
		score++
	}
	if terms >= 1 {
		score += 2
	}
	if terms >= 3 {
		score++
	}

	if score > 10 {
		score = 10
	}
	return score
}

// scoreSentiment compares distinct positive-word matches against distinct
// negative-word matches. Ties, including no matches at all, stay neutral.
func scoreSentiment(text string) int {
	pos := countContainedTerms(text, positiveWords)
	neg := countContainedTerms(text, negativeWords)

	score := 5
	switch {
	case pos > neg:
		score = 8 + min(pos, 2)
	case neg > pos:
		score = 4 - min(neg, 2)
	}
	return clampScore(score)
}

// scoreStructure rates sentence rhythm and casing. The lowercase penalty
// requires non-empty text; the all-uppercase (shouting) penalty is checked
// independently, so text with no cased letters takes both.
func scoreStructure(text string) int {
	score := 5

	if n := countSentences(text); n >= 2 && n <= 4 {
		score += 2
	}
	if strings.Contains(text, "\n") && utf8.RuneCountInString(text) > 100 {
		score++
	}
	if strings.ContainsFunc(text, unicode.IsDigit) {
		score++
	}
	if strings.ContainsFunc(text, unicode.IsUpper) {
		score++
	}
	if text != "" && text == strings.ToLower(text) {
		score -= 2
	}
	if text == strings.ToUpper(text) {
		score -= 3
	}

	return clampScore(score)
}

// countHashtags counts tokens of the form #word.
func countHashtags(text string) int {
	return len(hashtagPattern.FindAllString(text, -1))
}

// countEmojis counts runes falling inside the common emoji blocks.
func countEmojis(text string) int {
	n := 0
	for _, r := range text {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				n++
				break
			}
		}
	}
	return n
}

// countContainedTerms reports how many distinct terms from the list appear
// in the text, case-insensitively. Repeats of one term count once.
func countContainedTerms(text string, terms []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			n++
		}
	}
	return n
}

// countSentences splits on runs of sentence-terminal punctuation and
// counts the non-empty segments.
func countSentences(text string) int {
	n := 0
	for _, seg := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// clampScore bounds a factor score to [1,10].
func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
