package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/netprep/internal/llm"
	"github.com/abhisek/netprep/internal/store"
	"github.com/spf13/cobra"
)

func newLLMCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect LLM request/response events",
	}
	cmd.AddCommand(newLLMListCmd(c), newLLMViewCmd(c), newLLMStatsCmd(c))
	return cmd
}

func newLLMListCmd(c *cli) *cobra.Command {
	var (
		limit   int
		purpose string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent LLM events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}

			fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
				"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
			fmt.Fprintln(out, strings.Repeat("─", 96))

			for _, e := range events {
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
					e.ID,
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					truncate(e.Model, 28),
					e.InputTokens,
					e.OutputTokens,
					e.LatencyMs,
					ok,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of events to show")
	cmd.Flags().StringVarP(&purpose, "purpose", "p", "", "Filter by purpose (e.g. explain)")
	return cmd
}

func newLLMViewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "View full request/response for an LLM event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("event %d not found", id)
			}
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", e.ID)
			fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
			fmt.Fprintf(out, "Model:     %s\n", e.Model)
			fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
			fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
			fmt.Fprintf(out, "Success:   %v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
			}

			fmt.Fprintln(out)
			printBody(out, "REQUEST", e.RequestBody)
			printBody(out, "RESPONSE", e.ResponseBody)
			return nil
		},
	}
}

func printBody(out io.Writer, title, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(out, body)
}

func newLLMStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated LLM token usage and estimated cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			line := strings.Repeat("─", 72)

			stats, err := s.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(stats) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			fmt.Fprintln(out, "Usage by Purpose")
			fmt.Fprintln(out, line)
			fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
				"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			fmt.Fprintln(out, line)

			var totalCalls, totalIn, totalOut int
			for _, st := range stats {
				fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
					st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
				totalCalls += st.Calls
				totalIn += st.InputTokens
				totalOut += st.OutputTokens
			}
			fmt.Fprintln(out, line)
			fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n",
				"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

			modelUsage, err := s.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(modelUsage) == 0 {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Estimated Cost (USD)")
			fmt.Fprintln(out, line)
			fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
			fmt.Fprintln(out, line)

			var totalCost float64
			var unknown []string
			for _, mu := range modelUsage {
				price, ok := llm.PriceFor(mu.Model)
				if !ok {
					unknown = append(unknown, mu.Model)
					fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
						truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
					continue
				}
				usd := price.USD(mu.InputTokens, mu.OutputTokens)
				totalCost += usd
				fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(usd))
			}

			fmt.Fprintln(out, line)
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))
			if len(unknown) > 0 {
				fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
