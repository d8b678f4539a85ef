package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/netprep/internal/bank"
)

func newBankCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Work with question bank files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an external question bank YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			b, err := bank.LoadFile(args[0])

			var verr *bank.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s: %d problem(s)\n", args[0], len(verr.Problems))
				for _, p := range verr.Problems {
					fmt.Fprintf(out, "  - %s\n", p)
				}
				return fmt.Errorf("%s is not a valid bank", args[0])
			}
			if err != nil {
				return err
			}

			subs := 0
			for _, t := range b.Topics {
				subs += len(t.SubTopics)
			}
			fmt.Fprintf(out, "%s: ok (version %s, %d questions, %d topics, %d sub-topics)\n",
				args[0], b.Version, len(b.Questions), len(b.Topics), subs)
			c.log.Info("bank validated")
			return nil
		},
	})
	return cmd
}
