package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/netprep/internal/study"
)

func newTopicsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List study topics and their sub-topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.loadBank()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range b.Topics {
				fmt.Fprintf(out, "%-12s %s\n", t.ID, t.Title)
				for _, s := range t.SubTopics {
					fmt.Fprintf(out, "  %-18s %s\n", s.ID, s.Title)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <topic> [subtopic]",
		Short: "Print study content for a topic or one sub-topic",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.loadBank()
			if err != nil {
				return err
			}
			t, ok := study.FindTopic(b.Topics, args[0])
			if !ok {
				return fmt.Errorf("topic %q not found", args[0])
			}

			subs := t.SubTopics
			if len(args) == 2 {
				s, ok := t.SubTopic(args[1])
				if !ok {
					return fmt.Errorf("topic %q has no sub-topic %q", t.ID, args[1])
				}
				subs = []study.SubTopic{s}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", t.Title)
			for _, s := range subs {
				fmt.Fprintf(out, "\n== %s ==\n\n%s\n", s.Title, s.Content)
			}
			return nil
		},
	})
	return cmd
}
