package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/netprep/internal/interview"
)

func newQuestionsCmd(c *cli) *cobra.Command {
	var search, category string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List interview questions, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.loadBank()
			if err != nil {
				return err
			}
			visible := interview.Visible(b.Questions, interview.Filter{Search: search, Category: category})
			printQuestions(cmd.OutOrStdout(), visible)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive substring of the question text")
	cmd.Flags().StringVarP(&category, "category", "c", interview.AllCategories, "Category to show (see 'questions categories')")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "categories",
			Short: "List the category index",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := c.loadBank()
				if err != nil {
					return err
				}
				counts := make(map[string]int)
				for _, q := range b.Questions {
					counts[string(q.Category)]++
				}
				out := cmd.OutOrStdout()
				for _, cat := range interview.Categories(b.Questions) {
					n := len(b.Questions)
					if cat != interview.AllCategories {
						n = counts[cat]
					}
					fmt.Fprintf(out, "%-16s %3d\n", cat, n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one question with its answer",
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
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "#%d [%s]\n\n", q.ID, q.Category)
				fmt.Fprintf(out, "Q: %s\n", q.Question)
				fmt.Fprintf(out, "A: %s\n", q.Answer)
				return nil
			},
		},
	)
	return cmd
}

func printQuestions(out io.Writer, qs []interview.Question) {
	if len(qs) == 0 {
		fmt.Fprintln(out, interview.EmptyMessage)
		return
	}
	for _, q := range qs {
		fmt.Fprintf(out, "%-4s %-16s %s\n", "#"+strconv.Itoa(q.ID), "["+string(q.Category)+"]", q.Question)
	}
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintf(out, "%d question(s)\n", len(qs))
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q: must be a positive integer", s)
	}
	return id, nil
}
