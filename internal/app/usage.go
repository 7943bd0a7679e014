package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feedforge/tweetscore/internal/output"
	"github.com/feedforge/tweetscore/internal/quota"
	"github.com/feedforge/tweetscore/internal/store"
)

var usageEvents int

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show your plan and remaining allowance",
	RunE:  runUsage,
}

func init() {
	usageCmd.Flags().IntVar(&usageEvents, "events", 10, "Number of recent activity events to show")
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
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
	total, err := svc.db.CountAnalyses(user.ID)
	if err != nil {
		return fmt.Errorf("counting analyses: %w", err)
	}
	events, err := svc.db.ListUsageEvents(user.ID, usageEvents)
	if err != nil {
		return fmt.Errorf("listing usage events: %w", err)
	}

	if flagJSON {
		return printJSON(struct {
			Email         string             `json:"email"`
			Plan          string             `json:"plan"`
			Remaining     int                `json:"remaining"`
			TotalAnalyses int                `json:"totalAnalyses"`
			Events        []store.UsageEvent `json:"events"`
		}{user.Email, user.Plan, decision.Remaining, total, events})
	}

	fmt.Println(output.Section("Usage"))
	fmt.Println()
	fmt.Printf(" Account:  %s\n", user.Email)
	fmt.Printf(" Plan:     %s\n", output.StyleBold.Render(user.Plan))
	switch {
	case decision.Remaining == quota.Unlimited:
		fmt.Printf(" Allowance: %s\n", output.StyleSuccess.Render("unlimited"))
	case decision.Remaining == 0:
		fmt.Printf(" Allowance: %s\n", output.StyleError.Render("exhausted"))
		if decision.Reason != "" {
			fmt.Printf(" %s\n", output.StyleMuted.Render(decision.Reason))
		}
	default:
		fmt.Printf(" Allowance: %d analyses remaining\n", decision.Remaining)
	}
	fmt.Printf(" Analyses: %d total\n", total)

	if len(events) > 0 {
		fmt.Println(output.Section("Recent Activity"))
		fmt.Println()
		tbl := output.NewTable("When", "Event", "Detail")
		for _, e := range events {
			tbl.AddRow(e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Event, e.Detail)
		}
		fmt.Print(indent(tbl.Render()))
	}
	fmt.Println()
	return nil
}
