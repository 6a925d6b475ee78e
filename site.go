// Package site serves the Neuralarc Matrix landing page: a server-rendered
// single page built from authored content, a blog, and the contact form
// that forwards enquiries to a hosted datastore.
//
// The datastore is supplied by the caller through WithInserter; everything
// else (content, assets, middleware, metrics) is wired by New.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/views"
)

// App is the landing site. It wires together content, the contact service,
// handlers, middleware and metrics.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Content  *content.Cache
	Contact  *contact.Service
	Registry *prometheus.Registry

	limiter      *SubmitLimiter
	metrics      *metrics
	og           *ogImage
	inserter     contact.Inserter
	notifier     contact.Notifier
	contentFS    fs.FS
	customRoutes []func(*App)
	staticDir    string
}

// New creates the App and registers middleware and routes. Content is
// loaded once up front so a broken content set fails at startup.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Registry:  prometheus.NewRegistry(),
		og:        &ogImage{},
		contentFS: content.Default(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if err := a.Config.Validate(); err != nil {
		return nil, fmt.Errorf("site: invalid config: %w", err)
	}
	if a.inserter == nil {
		return nil, errors.New("site: a contact inserter is required")
	}

	a.Content = content.NewCache(a.contentFS, a.Config.ContentTTL)
	if _, err := a.Content.Library(); err != nil {
		return nil, fmt.Errorf("site: load content: %w", err)
	}

	a.metrics = newMetrics(a.Registry, a.Content)
	a.limiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)

	svcOpts := []contact.ServiceOption{contact.WithObserver(a.metrics.observeSubmission)}
	if a.notifier != nil {
		svcOpts = append(svcOpts, contact.WithNotifier(a.notifier))
	}
	a.Contact = contact.NewService(a.inserter, a.Echo.Logger, svcOpts...)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.Echo.Logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

// Close releases background resources and waits for pending
// notifications. The datastore belongs to the caller.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.Contact != nil {
		a.Contact.Wait()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded browser assets
	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/assets/*", echo.WrapHandler(http.StripPrefix("/assets/", http.FileServer(http.FS(assets)))))
	e.GET("/favicon.svg", handleFavicon)

	// User's static assets
	e.Static("/public", a.staticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/og.png", a.handleOG)
	e.GET("/healthz", handleHealthz)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: a.Registry}))

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/blog/", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handlePost)

	// Contact
	e.POST("/contact/", a.handleContact)
	e.POST("/api/contact", a.handleAPIContact)
}

// library returns the current content set.
func (a *App) library() (*content.Library, error) {
	lib, err := a.Content.Library()
	if lib == nil {
		return nil, err
	}
	if err != nil {
		a.Echo.Logger.Errorf("content reload failed, serving previous content: %v", err)
	}
	return lib, nil
}

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}
