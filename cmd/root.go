package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/nconklindev/stockcell/internal/catalog"
	"github.com/nconklindev/stockcell/internal/config"
	"github.com/nconklindev/stockcell/internal/importer"
	"github.com/nconklindev/stockcell/internal/logging"
	"github.com/nconklindev/stockcell/internal/notify"
	"github.com/nconklindev/stockcell/internal/types"
	"github.com/nconklindev/stockcell/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// BuildInfo is stamped at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var errNoInventory = errors.New("no inventory: pass --file or --demo")

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// NewRootCommand builds the stockcell command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "stockcell",
		Short: "Find the storage cell of a product in a warehouse spreadsheet",
		Long: `Stockcell loads an inventory spreadsheet (xlsx or csv) and lets you look up
products by code or article to find their storage cell and quantity.

Without a subcommand it starts the interactive lookup screen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		RunE: a.runTUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./stockcell.yaml)")
	flags.StringP("file", "f", "", "inventory spreadsheet to load (.xlsx, .xlsm or .csv)")
	flags.String("variant", "classic", "column layout: classic (zone and quantity) or extended (keeps extra columns)")
	flags.Bool("demo", false, "start with sample products")
	flags.Bool("watch", false, "reload the file when it changes on disk")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file")

	_ = a.v.BindPFlag("file", flags.Lookup("file"))
	_ = a.v.BindPFlag("variant", flags.Lookup("variant"))
	_ = a.v.BindPFlag("demo", flags.Lookup("demo"))
	_ = a.v.BindPFlag("watch", flags.Lookup("watch"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.file", flags.Lookup("log-file"))

	rootCmd.AddCommand(
		newFindCmd(a),
		newListCmd(a),
		newTemplateCmd(a),
		newVersionCmd(info),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(info BuildInfo) {
	if err := NewRootCommand(info).Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(a.cfg.Log, false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := catalog.NewStore()
	if a.cfg.Demo {
		store.Replace(catalog.SampleProducts())
	}

	toasts := &notify.Recorder{}
	variant := a.cfg.ParsedVariant()
	loader := &importer.Loader{
		Store:    store,
		Notifier: notify.Multi{toasts, notify.LogNotifier{Logger: logger}},
		Logger:   logger,
		Variant:  variant,
	}

	model := ui.NewModel(ui.Options{
		Store:   store,
		Loader:  loader,
		Toasts:  toasts,
		Logger:  logger,
		Variant: variant,
		File:    a.cfg.File,
		Watch:   a.cfg.Watch,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// inventory loads the configured file, or the sample products with --demo,
// for the non-interactive subcommands.
func (a *app) inventory(logger *zap.Logger) (*catalog.Store, types.Variant, error) {
	variant := a.cfg.ParsedVariant()
	store := catalog.NewStore()

	switch {
	case a.cfg.File != "":
		loader := &importer.Loader{
			Store:    store,
			Notifier: notify.LogNotifier{Logger: logger},
			Logger:   logger,
			Variant:  variant,
		}
		if _, err := loader.Load(a.cfg.File); err != nil {
			return nil, variant, err
		}
	case a.cfg.Demo:
		store.Replace(catalog.SampleProducts())
	default:
		return nil, variant, errNoInventory
	}

	return store, variant, nil
}

func (a *app) consoleLogger() (*zap.Logger, error) {
	return logging.New(a.cfg.Log, true)
}
