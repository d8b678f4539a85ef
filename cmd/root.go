package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/netprep/internal/bank"
	"github.com/abhisek/netprep/internal/config"
	"github.com/abhisek/netprep/internal/llm"
	"github.com/abhisek/netprep/internal/logger"
	"github.com/abhisek/netprep/internal/store"
	"github.com/abhisek/netprep/internal/tutor"
)

// cli carries flag values and the config and logger every subcommand shares.
type cli struct {
	configPath string
	dbPath     string
	bankPath   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "netprep",
		Short: "Computer networking interview prep in your terminal",
		Long: "NetPrep is a terminal study companion for computer networking interviews.\n" +
			"Browse study topics, search the interview question bank and ask an LLM tutor\n" +
			"for deeper explanations (set ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY).",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApp(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/netprep/config.yaml)")
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "Path to SQLite database file (overrides NETPREP_DB env var)")
	root.PersistentFlags().StringVar(&c.bankPath, "bank", "", "Path to an external question bank YAML (overrides NETPREP_BANK env var)")

	root.AddCommand(
		newQuestionsCmd(c),
		newTopicsCmd(c),
		newExplainCmd(c),
		newBankCmd(c),
		newStatsCmd(c),
		newResetCmd(c),
		newLLMCmd(c),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = log
	c.log.Debug("config loaded", zap.String("env", cfg.Env), zap.String("log_file", cfg.LogFile))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NETPREP_DB / db_path, then the default XDG path.
func (c *cli) resolveDBPath() (string, error) {
	p := c.dbPath
	if p == "" {
		p = c.cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func (c *cli) openStore() (*store.Store, error) {
	dbPath, err := c.resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	c.log.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}

// loadBank returns the bank from --bank, then NETPREP_BANK / bank_path, then
// the embedded bundle.
func (c *cli) loadBank() (*bank.Bank, error) {
	p := c.bankPath
	if p == "" {
		p = c.cfg.BankPath
	}
	if p == "" {
		return bank.Default()
	}
	b, err := bank.LoadFile(p)
	if err != nil {
		return nil, err
	}
	c.log.Info("external bank loaded", zap.String("path", p), zap.String("version", b.Version))
	return b, nil
}

// newTutor builds the tutor. Without a configured provider the tutor is
// returned unavailable rather than failing.
func (c *cli) newTutor(ctx context.Context, repo store.EventRepo) (*tutor.Service, error) {
	llmCfg, ok := c.cfg.LLMConfig()
	tcfg := tutor.DefaultConfig()
	if !ok {
		c.log.Info("no LLM provider configured; tutor disabled")
		return tutor.NewService(nil, tcfg, c.log), nil
	}

	provider, err := llm.NewProvider(ctx, llmCfg, repo, c.log)
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}
	tcfg.Timeout = llmCfg.Timeout
	return tutor.NewService(provider, tcfg, c.log), nil
}
