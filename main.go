package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"searchbox/internal/config"
	"searchbox/internal/eventbus"
	"searchbox/internal/logging"
	"searchbox/internal/suggest"
	"searchbox/internal/ui"
)

type rootOptions struct {
	configPath string
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "searchbox",
		Short: "A terminal search box with debounced autocomplete",
		Long: `searchbox renders a search input whose suggestions are filtered from a
candidate list once typing pauses. Arrow keys move through suggestions,
enter picks one, esc dismisses them.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "searchbox.log", "log file; empty disables logging")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newSuggestCmd(opts), newConfigCmd(opts))
	return cmd
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Print the suggestions for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigService(opts.configPath, nil).Load()
			if err != nil {
				return err
			}
			src := suggest.NewStaticSource(cfg.Candidates)
			matches, err := src.Suggest(cmd.Context(), args[0], cfg.Search.MaxSuggestions)
			if err != nil {
				return err
			}
			for _, s := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(opts.configPath, nil)
			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", svc.Path())
			}
			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigService(opts.configPath, nil).Path())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func runTUI(parent context.Context, opts *rootOptions) error {
	closer, err := logging.Setup(logging.Options{Path: opts.logFile, Debug: opts.debug})
	if err != nil {
		return err
	}
	defer closer.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	subscribeLogging(bus)

	cfg, err := config.NewConfigService(opts.configPath, bus).Load()
	if err != nil {
		logging.Errorf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	logging.Infof("Creating UI model...")
	uiModel := ui.NewModel(cfg, bus)

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	logging.Infof("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logging.Errorf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Infof("UI exited normally")
	return nil
}

// subscribeLogging records what the search box reports
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSuggestionsUpdated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SuggestionsUpdatedEvent); ok {
			logging.Debugf("Suggestions for %q: [%s]", event.Query, strings.Join(event.Suggestions, ", "))
		}
	})
	bus.Subscribe(eventbus.EventSuggestionSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SuggestionSelectedEvent); ok {
			logging.Infof("Selected %q (row %d, %s)", event.Text, event.Index, event.Source)
		}
	})
	bus.Subscribe(eventbus.EventQuerySubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QuerySubmittedEvent); ok {
			logging.Infof("Submitted %q", event.Query)
		}
	})
	bus.Subscribe(eventbus.EventQueryCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QueryClearedEvent); ok {
			logging.Infof("Cleared %q", event.Previous)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logging.Errorf("%s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logging.Infof("Config loaded from %s (%d candidates)", event.Path, event.CandidateCount)
		}
	})
}
