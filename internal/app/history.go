package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedforge/tweetscore/internal/output"
	"github.com/feedforge/tweetscore/internal/store"
)

var (
	historyLimit int
	historyPage  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse your past analyses",
	Long: `History lists your saved analyses newest-first. Use --limit and
--page to page through older entries.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Entries per page")
	historyCmd.Flags().IntVar(&historyPage, "page", 1, "Page number (1-based)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit < 1 {
		return fmt.Errorf("--limit must be at least 1")
	}
	if historyPage < 1 {
		return fmt.Errorf("--page must be at least 1")
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

	offset := (historyPage - 1) * historyLimit
	records, err := svc.db.ListAnalyses(user.ID, historyLimit, offset)
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}
	total, err := svc.db.CountAnalyses(user.ID)
	if err != nil {
		return fmt.Errorf("counting analyses: %w", err)
	}

	if flagJSON {
		return printJSON(struct {
			Total   int                    `json:"total"`
			Page    int                    `json:"page"`
			Limit   int                    `json:"limit"`
			Entries []store.AnalysisRecord `json:"entries"`
		}{total, historyPage, historyLimit, records})
	}

	if len(records) == 0 {
		if total == 0 {
			fmt.Println("No analyses yet. Run 'tweetscore analyze' to score your first post.")
		} else {
			fmt.Printf("No entries on page %d (%d total).\n", historyPage, total)
		}
		return nil
	}

	fmt.Println(output.Section("Analysis History"))
	fmt.Println()
	tbl := output.NewTable("When", "Score", "Engagement", "Post")
	for _, r := range records {
		tbl.AddRow(
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", r.OverallScore),
			r.EngagementLevel,
			truncate(r.Body, 48),
		)
	}
	fmt.Print(indent(tbl.Render()))

	pages := (total + historyLimit - 1) / historyLimit
	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render(
		fmt.Sprintf("Page %d of %d (%d total)", historyPage, pages, total)))
	fmt.Println()
	return nil
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
// Line breaks are flattened so table rows stay single-line.
func truncate(s string, n int) string {
	flat := make([]rune, 0, n+1)
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		flat = append(flat, r)
		if len(flat) > n {
			return string(flat[:n]) + "…"
		}
	}
	return string(flat)
}
