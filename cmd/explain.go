package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/netprep/internal/tutor"
)

func newExplainCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <id>",
		Short: "Ask the LLM tutor for a deeper explanation of a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := c.loadBank()
			if err != nil {
				return err
			}
			q, ok := b.Question(id)
			if !ok {
				return fmt.Errorf("question %d not found", id)
			}

			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			tut, err := c.newTutor(cmd.Context(), st.EventRepo())
			if err != nil {
				return err
			}

			exp, err := tut.Explain(cmd.Context(), q)
			if errors.Is(err, tutor.ErrUnavailable) {
				return fmt.Errorf("%w (set ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY)", err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d [%s] %s\n\n", q.ID, q.Category, q.Question)
			fmt.Fprintf(out, "%s\n\n", exp.Summary)
			for _, p := range exp.KeyPoints {
				fmt.Fprintf(out, "  • %s\n", p)
			}
			if exp.Example != "" {
				fmt.Fprintf(out, "\nExample: %s\n", exp.Example)
			}
			if exp.FollowUp != "" {
				fmt.Fprintf(out, "Follow-up: %s\n", exp.FollowUp)
			}
			return nil
		},
	}
}
