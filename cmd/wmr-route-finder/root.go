package main

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/wmr-route-finder/config"
	"github.com/theoremus-urban-solutions/wmr-route-finder/finder"
	"github.com/theoremus-urban-solutions/wmr-route-finder/formatter"
	"github.com/theoremus-urban-solutions/wmr-route-finder/loader"
	"github.com/theoremus-urban-solutions/wmr-route-finder/logging"
)

// app is the state shared by every sub-command once the network is loaded.
type app struct {
	configPath string
	format     string
	logger     hclog.Logger
	finder     *finder.Finder
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}
	root := &cobra.Command{
		Use:           "wmr-route-finder",
		Short:         "Query the West Midlands Railway network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.yml (default: search config.yml, ./config/config.yml)")
	root.PersistentFlags().StringVar(&a.format, "format", "", "output format: text|json (overrides config)")

	root.AddCommand(
		a.terminiCmd(),
		a.stationsCmd(),
		a.linesCmd(),
		a.accessibleCmd(),
		a.pathsCmd(),
		a.shortestCmd(),
		a.menuCmd(),
		a.serveCmd(),
	)
	return root
}

// setup loads the configuration and the network. A network that cannot be
// loaded aborts the command.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadAppConfig(a.configPath); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.format != "" {
		config.Config.Output.Format = a.format
	}
	if err := config.Validate(config.Config); err != nil {
		return err
	}

	a.logger = logging.InitLogging(logging.Config{
		Name:   "wmr-route-finder",
		Level:  config.Config.Logging.Level,
		JSON:   config.Config.Logging.JSON,
		Output: cmd.ErrOrStderr(),
	})

	ld := loader.New(loader.WithLogger(a.logger.Named("loader")))
	ds, err := ld.Load(cmd.Context(), config.Config.Network)
	if err != nil {
		return err
	}
	nw := ds.Build(a.logger.Named("network"))
	a.finder = finder.New(nw, finder.WithLogger(a.logger.Named("finder")))
	a.logger.Debug("network ready", "segments", nw.Len(), "routes", len(nw.Routes()))
	return nil
}

func (a *app) render(cmd *cobra.Command, query string, result any, found bool, text string) error {
	out, err := formatter.Render(config.Config.Output.Format, formatter.Wrap(query, result, found, a.now()), text)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
