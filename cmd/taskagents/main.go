package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/taskagents/internal/agent"
	"github.com/dusk-indust/taskagents/internal/config"
	"github.com/dusk-indust/taskagents/internal/llm"
)

// version is set by goreleaser at build time.
var version = "dev"

// CompleterFactory builds the completion client from the loaded config.
// Tests replace it with a fake.
type CompleterFactory func(cfg *config.Config) llm.Completer

// DefaultCompleterFactory returns the OpenAI-backed client.
func DefaultCompleterFactory(cfg *config.Config) llm.Completer {
	return llm.NewClient(llm.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.RequestTimeout,
	})
}

// cliFlags holds the persistent flags shared by every command.
type cliFlags struct {
	ConfigDir string
	Verbose   bool
	Topic     string
}

// app is the wiring shared by the commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	reg    *agent.Registry
}

func main() {
	root := newRootCmd(DefaultCompleterFactory, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(newCompleter CompleterFactory, stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	setup := func() (*app, error) {
		cfg, err := config.Load(flags.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		level := cfg.SlogLevel()
		if flags.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		factory := agent.NewFactory(newCompleter(cfg), logger)
		return &app{
			cfg:    cfg,
			logger: logger,
			reg:    agent.NewRegistry(factory, logger),
		}, nil
	}

	root := &cobra.Command{
		Use:           "taskagents",
		Short:         "Run research, writing and analysis agents against a chat completion API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), a, flags, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&flags.ConfigDir, "config-dir", ".", "directory holding taskagents.yml and .env")
	root.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "enable debug logging and progress output")
	root.Flags().StringVar(&flags.Topic, "topic", "Latest developments in artificial intelligence", "research topic for the demo chain")

	root.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "List the agent kinds that can be created",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, k := range agent.Kinds() {
				fmt.Fprintln(stdout, k)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve the agent registry as MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return runServeMCP(cmd.Context(), a)
		},
	})

	return root
}
