package engine

// Fixed word tables and character ranges used by the analyzers. These are
// domain knowledge, not configuration; they load once and never change.

// engagementVocabulary lists terms whose presence signals a prompt for
// interaction: interrogatives, calls to action, superlatives, and social
// verbs. Matching is case-insensitive substring containment.
var engagementVocabulary = []string{
	"what", "how", "why", "when", "who", "which",
	"think", "thoughts", "opinion", "agree", "disagree",
	"share", "retweet", "comment", "reply", "tag", "follow",
	"join", "try", "check out", "learn", "discover",
	"amazing", "incredible", "unbelievable", "best", "worst",
	"poll", "vote",
}

// positiveWords and negativeWords drive the sentiment factor.
var positiveWords = []string{
	"good", "great", "awesome", "amazing", "excellent", "fantastic",
	"wonderful", "love", "happy", "excited", "beautiful", "brilliant",
	"perfect", "incredible", "inspiring", "success", "win", "achieve",
	"proud", "grateful", "joy", "celebrate", "thrilled",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "hate", "sad", "angry",
	"fail", "failure", "worst", "disappointing", "ugly", "annoying",
	"frustrated", "broken", "problem", "wrong",
}

// emojiRanges covers the common emoji blocks: emoticons, symbols and
// pictographs, transport and map symbols, regional indicators,
// miscellaneous symbols, and dingbats.
var emojiRanges = [][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E6, 0x1F1FF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}
