package main

import (
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/wmr-route-finder/config"
	"github.com/theoremus-urban-solutions/wmr-route-finder/formatter"
	"github.com/theoremus-urban-solutions/wmr-route-finder/menu"
	"github.com/theoremus-urban-solutions/wmr-route-finder/server"
)

func (a *app) terminiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "termini <line>",
		Short: "Show the two ends of a line and the minutes between them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.finder.ListTermini(args[0])
			return a.render(cmd, "termini", t, ok, formatter.TextTermini(args[0], t, ok))
		},
	}
}

func (a *app) stationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stations <line>",
		Short: "List the stations of a line with cumulative minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stations := a.finder.ListStationsInLine(args[0])
			return a.render(cmd, "stations", stations, len(stations) > 0, formatter.TextStations(args[0], stations))
		},
	}
}

func (a *app) linesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List every line in the network with its travel time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := a.finder.ListAllLines()
			return a.render(cmd, "lines", lines, len(lines) > 0, formatter.TextAllLines(lines))
		},
	}
}

func (a *app) accessibleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accessible <from> <to>",
		Short: "Find a step-free path between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stations := a.finder.FindAccessiblePath(args[0], args[1])
			return a.render(cmd, "accessible", stations, len(stations) > 0, formatter.TextAccessiblePath(args[0], args[1], stations))
		},
	}
}

func (a *app) pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <from> <to>",
		Short: "Find every path between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := a.finder.FindAllPaths(args[0], args[1])
			return a.render(cmd, "paths", paths, len(paths) > 0, formatter.TextAllPaths(args[0], args[1], paths))
		},
	}
}

func (a *app) shortestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortest <from> <to>",
		Short: "Find the quickest path between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := a.finder.FindShortestPath(args[0], args[1])
			return a.render(cmd, "shortest", p, ok, formatter.TextShortestPath(args[0], args[1], p, ok))
		},
	}
}

func (a *app) menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive console menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return menu.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.finder)
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the queries over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config.Server
			if port > 0 {
				cfg.Port = port
			}
			srv := server.New(cfg, a.finder, server.WithLogger(a.logger.Named("server")))
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}
