package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, a := range analyzers {
		sum += a.weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("factor weights sum to %v, want 1.0", sum)
	}
}

func TestAnalyzeLaunchPost(t *testing.T) {
	text := "Just launched my side project after 6 months of late nights! \U0001F680 " +
		"It's a simple tool that solves a problem I had daily. " +
		"Sometimes the best ideas come from your own frustrations. " +
		"What problem are you solving? #BuildInPublic"

	res := Analyze(text)

	// length 5 (219 runes, between 200 and 250), hashtags 10 (one tag),
	// emojis 10 (one rocket), engagement 10 (question + one exclamation +
	// vocabulary), sentiment 3 ("problem" outweighs nothing positive),
	// structure 7 (digit + uppercase, five sentences miss the 2-4 band).
	// Weighted: 1.0 + 1.5 + 1.5 + 2.0 + 0.45 + 1.05 = 7.5 -> 75.
	wantScores := map[FactorName]int{
		FactorLength:     5,
		FactorHashtags:   10,
		FactorEmojis:     10,
		FactorEngagement: 10,
		FactorSentiment:  3,
		FactorStructure:  7,
	}
	for _, f := range res.Factors {
		if f.Score != wantScores[f.Name] {
			t.Errorf("%s score = %d, want %d", f.Name, f.Score, wantScores[f.Name])
		}
	}

	if res.OverallScore != 75 {
		t.Errorf("OverallScore = %d, want 75", res.OverallScore)
	}
	if res.EngagementLevel != EngagementHigh {
		t.Errorf("EngagementLevel = %q, want %q", res.EngagementLevel, EngagementHigh)
	}
	if res.ReachLevel != ReachHigh {
		t.Errorf("ReachLevel = %q, want %q", res.ReachLevel, ReachHigh)
	}
	if res.OptimalPostingTime != SlotEvening {
		t.Errorf("OptimalPostingTime = %q, want %q (post asks a question)", res.OptimalPostingTime, SlotEvening)
	}
}

func TestAnalyzeBreakfastPost(t *testing.T) {
	res := Analyze("Had breakfast this morning. It was okay I guess.")

	// length 5 (48 runes), hashtags 6, emojis 6, engagement 5,
	// sentiment 5, structure 8 (two sentences + uppercase).
	// Weighted: 1.0 + 0.9 + 0.9 + 1.0 + 0.75 + 1.2 = 5.75 -> 58.
	if res.OverallScore != 58 {
		t.Errorf("OverallScore = %d, want 58", res.OverallScore)
	}
	if res.EngagementLevel != EngagementMedium {
		t.Errorf("EngagementLevel = %q, want %q", res.EngagementLevel, EngagementMedium)
	}
	if res.OptimalPostingTime != SlotMorning {
		t.Errorf("OptimalPostingTime = %q, want %q (no question, no hashtag)", res.OptimalPostingTime, SlotMorning)
	}
}

func TestAnalyzeEmptyString(t *testing.T) {
	res := Analyze("")

	// length 4, hashtags 6, emojis 6, engagement 5, sentiment 5,
	// structure 2. Weighted sum lands just under 4.65 -> 46.
	if res.OverallScore != 46 {
		t.Errorf("OverallScore = %d, want 46", res.OverallScore)
	}
	if res.EngagementLevel != EngagementLow {
		t.Errorf("EngagementLevel = %q, want %q", res.EngagementLevel, EngagementLow)
	}
	if res.ReachLevel != ReachLimited {
		t.Errorf("ReachLevel = %q, want %q", res.ReachLevel, ReachLimited)
	}
	if len(res.Suggestions) > maxSuggestions {
		t.Errorf("got %d suggestions, cap is %d", len(res.Suggestions), maxSuggestions)
	}
	if res.Narrative == "" {
		t.Error("Narrative is empty")
	}
}

func TestAnalyzeNeverExceedsSuggestionCap(t *testing.T) {
	inputs := []string{
		"",
		"hi",
		strings.Repeat("a", 300),
		"#a #b #c #d #e \U0001F600\U0001F600\U0001F600\U0001F600\U0001F600 bad awful terrible",
		"no punctuation no caps no numbers just a long stretch of lowercase words going on and on",
	}
	for _, in := range inputs {
		if got := len(Analyze(in).Suggestions); got > maxSuggestions {
			t.Errorf("Analyze(%.20q...) produced %d suggestions, cap is %d", in, got, maxSuggestions)
		}
	}
}

func TestAnalyzeBounds(t *testing.T) {
	inputs := []string{
		"", " ", "?", "!!!", "\n\n\n", "1234 5678",
		strings.Repeat("\U0001F600", 50),
		strings.Repeat("a", 1000),
		"ALL CAPS SHOUTING WITH NOTHING ELSE",
	}
	for _, in := range inputs {
		res := Analyze(in)
		// All factor scores sit in [1,10], so the weighted overall can
		// never leave [10,100].
		if res.OverallScore < 10 || res.OverallScore > 100 {
			t.Errorf("Analyze(%q).OverallScore = %d, outside [10,100]", in, res.OverallScore)
		}
		for _, f := range res.Factors {
			if f.Score < 1 || f.Score > 10 {
				t.Errorf("Analyze(%q) factor %s = %d, outside [1,10]", in, f.Name, f.Score)
			}
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	text := "Shipping v2 today! \U0001F389 What feature should we build next? #golang"

	first := Analyze(text)
	second := Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two sequential calls with identical input differ")
	}

	// The engine documents itself as safe for concurrent use; hammer it
	// from several goroutines and require byte-identical JSON.
	want, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 100 {
				got, err := json.Marshal(Analyze(text))
				if err != nil {
					return err
				}
				if string(got) != string(want) {
					t.Errorf("concurrent Analyze diverged: %s", got)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyzeIdealLengthBand(t *testing.T) {
	for _, n := range []int{71, 85, 100} {
		res := Analyze(strings.Repeat("a", n))
		for _, f := range res.Factors {
			if f.Name == FactorLength && f.Score != 10 {
				t.Errorf("length %d: factor score = %d, want 10", n, f.Score)
			}
		}
	}
}

func TestFactorOrderIsStable(t *testing.T) {
	want := []FactorName{
		FactorLength, FactorHashtags, FactorEmojis,
		FactorEngagement, FactorSentiment, FactorStructure,
	}
	res := Analyze("anything")
	for i, f := range res.Factors {
		if f.Name != want[i] {
			t.Fatalf("factor %d = %s, want %s", i, f.Name, want[i])
		}
	}
}
