package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newResetCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all recorded progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := c.resolveDBPath()
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintf(out, "This deletes %s and every session it records.\nRe-run with --yes to confirm.\n", dbPath)
				return nil
			}

			removed := 0
			for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
				err := os.Remove(p)
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				if err != nil {
					return fmt.Errorf("remove %s: %w", p, err)
				}
				removed++
			}
			if removed == 0 {
				fmt.Fprintln(out, "Nothing to reset.")
				return nil
			}
			c.log.Info("progress reset", zap.String("path", dbPath))
			fmt.Fprintf(out, "Removed %s\n", dbPath)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
