package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/badgeicon/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and renderer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.config()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			cat, err := cfg.LoadCatalog(cfg.Server.Catalogs...)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(server.Options{
				Catalog:  cat,
				Runner:   runner,
				Defaults: cfg.PipelineOptions(),
				Logger:   logger,
			})

			printInfo("Serving %d icons on %s", cat.Len(), StyleLink.Render(displayURL(addr)))
			printDetail("Press Ctrl+C to stop")
			return server.ListenAndServe(ctx, addr, srv,
				cfg.Server.ReadTimeout.Duration, cfg.Server.WriteTimeout.Duration, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// displayURL turns a listen address into a clickable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
