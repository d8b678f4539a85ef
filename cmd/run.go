package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func (c *cli) runApp(cmd *cobra.Command) error {
	b, err := c.loadBank()
	if err != nil {
		return err
	}

	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Bank:      b,
		EventRepo: eventRepo,
		Log:       c.log,
	}

	tut, err := c.newTutor(cmd.Context(), eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor explanations will be unavailable.")
		c.log.Warn("tutor disabled", zap.Error(err))
	} else {
		opts.Tutor = tut
	}

	c.log.Info("starting tui",
		zap.Int("questions", len(b.Questions)),
		zap.Int("topics", len(b.Topics)),
		zap.Bool("tutor", opts.Tutor.Available()),
	)
	return app.Run(opts)
}
