package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/feedforge/tweetscore/internal/engine"
	"github.com/feedforge/tweetscore/internal/output"
	"github.com/feedforge/tweetscore/internal/quota"
	"github.com/feedforge/tweetscore/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Score a post and get improvement suggestions",
	Long: `Analyze scores a post on six factors (length, hashtags, emojis,
engagement hooks, sentiment, structure), reports the weighted overall
score with suggestions, and records the analysis in your history.

The post text can be passed as an argument or piped on stdin:

  tweetscore analyze "Shipped a new release today! #golang"
  echo "Shipped a new release today!" | tweetscore analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readPostText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to analyze: pass the post text as an argument or on stdin")
	}

	svc, err := openServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	user, err := svc.auth.Current()
	if err != nil {
		return err
	}

	decision, err := svc.quota.Check(user)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return fmt.Errorf("%s", decision.Reason)
	}

	result := engine.Analyze(text)
	log.Debug().Int("score", result.OverallScore).
		Int("runes", utf8.RuneCountInString(text)).
		Msg("analysis complete")

	if err := persistAnalysis(svc, user.ID, text, result); err != nil {
		return err
	}
	if err := svc.quota.Consume(user, fmt.Sprintf("score=%d", result.OverallScore)); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(result)
	}
	renderResult(text, result, decision)
	return nil
}

// readPostText takes the post body from the argument when given, otherwise
// from stdin.
func readPostText(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func persistAnalysis(svc *services, userID int64, text string, r engine.Result) error {
	suggestions, err := json.Marshal(r.Suggestions)
	if err != nil {
		return fmt.Errorf("encoding suggestions: %w", err)
	}
	factors, err := json.Marshal(r.Factors)
	if err != nil {
		return fmt.Errorf("encoding factors: %w", err)
	}

	_, err = svc.db.InsertAnalysis(&store.AnalysisRecord{
		UserID:          userID,
		Body:            text,
		OverallScore:    r.OverallScore,
		EngagementLevel: string(r.EngagementLevel),
		ReachLevel:      string(r.ReachLevel),
		Narrative:       r.Narrative,
		SuggestionsJSON: string(suggestions),
		OptimalTime:     string(r.OptimalPostingTime),
		FactorsJSON:     string(factors),
	})
	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

func renderResult(text string, r engine.Result, decision quota.Decision) {
	fmt.Println(output.Section("Post Score"))
	fmt.Println()
	fmt.Printf(" %s\n", output.ScoreBar(r.OverallScore, 20))
	fmt.Printf(" Engagement: %s   Reach: %s\n",
		output.StyleBold.Render(string(r.EngagementLevel)),
		output.StyleBold.Render(string(r.ReachLevel)))
	fmt.Printf(" Length: %d/%d characters\n", utf8.RuneCountInString(text), engine.MaxPostLength)

	fmt.Println(output.Section("Factors"))
	fmt.Println()
	tbl := output.NewTable("Factor", "Score", "Weight")
	for _, f := range r.Factors {
		tbl.AddRow(string(f.Name), output.FactorBar(f.Score), fmt.Sprintf("%.0f%%", f.Weight*100))
	}
	fmt.Print(indent(tbl.Render()))

	fmt.Println(output.Section("Assessment"))
	fmt.Println()
	fmt.Printf(" %s\n", r.Narrative)

	if len(r.Suggestions) > 0 {
		fmt.Println(output.Section("Suggestions"))
		fmt.Println()
		for _, s := range r.Suggestions {
			fmt.Printf(" %s %s\n", output.StyleWarning.Render("•"), s)
		}
	}

	fmt.Println()
	fmt.Printf(" Best time to post: %s\n",
		output.StyleBold.Render(string(r.OptimalPostingTime)))
	if decision.Remaining != quota.Unlimited {
		// Remaining was measured before this analysis was charged.
		fmt.Printf(" %s\n", output.StyleMuted.Render(
			fmt.Sprintf("Analyses left: %d", decision.Remaining-1)))
	}
	fmt.Println()
}

// indent prefixes each non-empty line with a single space to line up with
// Section output.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = " " + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
