package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/netprep/internal/interview"
	"github.com/abhisek/netprep/internal/store"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show review coverage per category and study views per topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.loadBank()
			if err != nil {
				return err
			}
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			repo := st.EventRepo()

			reveals, err := repo.RevealCounts(ctx)
			if err != nil {
				return fmt.Errorf("query reveals: %w", err)
			}
			views, err := repo.StudyCounts(ctx)
			if err != nil {
				return fmt.Errorf("query study views: %w", err)
			}

			byCat := make(map[string]store.RevealCount, len(reveals))
			for _, rc := range reveals {
				byCat[rc.Category] = rc
			}
			totals := make(map[string]int)
			for _, q := range b.Questions {
				totals[string(q.Category)]++
			}

			out := cmd.OutOrStdout()
			sep := strings.Repeat("─", 60)

			fmt.Fprintln(out, "Interview Coverage")
			fmt.Fprintln(out, sep)
			fmt.Fprintf(out, "%-16s  %9s  %8s  %7s  %8s\n", "Category", "Questions", "Reviewed", "Reveals", "Coverage")
			fmt.Fprintln(out, sep)

			var allQ, allReviewed, allReveals int
			for _, cat := range interview.Categories(b.Questions)[1:] {
				rc := byCat[cat]
				total := totals[cat]
				fmt.Fprintf(out, "%-16s  %9d  %8d  %7d  %7.0f%%\n", cat, total, rc.Questions, rc.Reveals, percent(rc.Questions, total))
				allQ += total
				allReviewed += rc.Questions
				allReveals += rc.Reveals
			}
			fmt.Fprintln(out, sep)
			fmt.Fprintf(out, "%-16s  %9d  %8d  %7d  %7.0f%%\n", "TOTAL", allQ, allReviewed, allReveals, percent(allReviewed, allQ))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Study Views")
			fmt.Fprintln(out, sep)
			for _, t := range b.Topics {
				fmt.Fprintf(out, "%-36s  %5d\n", truncate(t.Title, 36), views[t.ID])
			}
			return nil
		},
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
