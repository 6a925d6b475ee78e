package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	site "github.com/neuralarc/site"
	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/datastore"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Long: `Serve starts the HTTP server. Contact submissions go to the configured
datastore. When a content directory is set it is watched and the site picks
up edits without a restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address (overrides site.addr)")
	_ = v.BindPFlag("site.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := datastore.Open(ctx, cfg.datastoreConfig())
	if err != nil {
		return fmt.Errorf("open datastore: %w", err)
	}
	defer closer.Close()

	opts := []site.Option{
		site.WithInserter(store),
		site.WithContentFS(cfg.contentFS()),
	}
	if cfg.Site.StaticDir != "" {
		opts = append(opts, site.WithStaticDir(cfg.Site.StaticDir))
	}
	if n := contact.NewMailgunNotifier(cfg.mailgunConfig()); n != nil {
		opts = append(opts, site.WithNotifier(n))
	}

	app, err := site.New(cfg.siteConfig(), opts...)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Echo.Logger.SetLevel(parseLevel(cfg.LogLevel))

	if dir := cfg.Site.ContentDir; dir != "" {
		go func() {
			if err := content.Watch(ctx, dir, app.Content, app.Echo.Logger); err != nil {
				app.Echo.Logger.Errorf("content watcher stopped: %v", err)
			}
		}()
	}

	app.Echo.Logger.Infof("serving %s on %s (datastore %s)", app.Config.Name, app.Config.Addr, cfg.Datastore.Driver)
	return app.Start(ctx)
}
