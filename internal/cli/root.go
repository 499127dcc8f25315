package cli

import (
	"fmt"

	"github.com/a11ykit/achecker-client/internal/achecker"
	"github.com/a11ykit/achecker-client/internal/checker"
	"github.com/a11ykit/achecker-client/internal/config"
	"github.com/a11ykit/achecker-client/internal/messages"
	"github.com/a11ykit/achecker-client/internal/observability"

	"github.com/spf13/cobra"
)

var Version = "dev"

type globalFlags struct {
	debug    bool
	endpoint string
	messages string
}

// NewRootCmd builds the achecker command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "achecker",
		Short:         "Check web pages for accessibility problems with AChecker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&g.endpoint, "endpoint", "", "checking service endpoint (overrides ACHECKER_ENDPOINT)")
	root.PersistentFlags().StringVar(&g.messages, "messages", "", "YAML message catalog (overrides ACHECKER_MESSAGES_FILE)")

	root.AddCommand(newCheckCmd(g))
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newGuidesCmd())

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

type deps struct {
	cfg     *config.Config
	logger  *observability.Logger
	checker *checker.Checker
}

func (g *globalFlags) load() (*deps, error) {
	cfg := config.Load()
	if g.endpoint != "" {
		cfg.Endpoint = g.endpoint
	}
	if g.messages != "" {
		cfg.MessagesFile = g.messages
	}
	if g.debug {
		cfg.LogLevel = "debug"
	}

	logger, err := observability.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	catalog := messages.Default()
	if cfg.MessagesFile != "" {
		catalog, err = messages.LoadFile(cfg.MessagesFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("message catalog loaded", "file", cfg.MessagesFile, "messages", catalog.Len())
	}

	fetcher := achecker.NewFetcher(cfg, logger)

	return &deps{
		cfg:     cfg,
		logger:  logger,
		checker: checker.New(fetcher, catalog, logger),
	}, nil
}
