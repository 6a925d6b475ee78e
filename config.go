package site

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/neuralarc/site/contact"
)

// SiteConfig holds all configuration for the landing site.
type SiteConfig struct {
	Name        string // Site name (default "Neuralarc Matrix")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Meta and RSS description

	Addr            string        // Listen address (default ":3000")
	ShutdownTimeout time.Duration // Graceful shutdown bound (default 10s)

	SessionSecret string // Required: flash cookie secret
	CookieSecure  bool   // Set true for HTTPS

	ContentTTL time.Duration // Content cache TTL, 0 keeps content until invalidated

	SubmitLimit   int           // Contact submissions per IP per window (default 5, negative disables)
	SubmitWindow  time.Duration // Rate limit window (default 1min)
	SubmitTimeout time.Duration // Bound for one submission including the insert (default 15s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Neuralarc Matrix"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "AI agents, automation and blockchain engineering for modern business."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.SubmitLimit == 0 {
		c.SubmitLimit = 5
	}
	if c.SubmitWindow == 0 {
		c.SubmitWindow = time.Minute
	}
	if c.SubmitTimeout == 0 {
		c.SubmitTimeout = 15 * time.Second
	}
}

// Validate reports configuration that would leave the site unusable.
func (c SiteConfig) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session secret is required"))
	}
	if u, err := url.Parse(c.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("url %q is not absolute", c.URL))
	}
	return errors.Join(errs...)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithInserter sets the datastore contact submissions are written to.
func WithInserter(ins contact.Inserter) Option {
	return func(a *App) {
		a.inserter = ins
	}
}

// WithNotifier sends a notification for every stored submission.
func WithNotifier(n contact.Notifier) Option {
	return func(a *App) {
		a.notifier = n
	}
}

// WithContentFS replaces the embedded content with fsys.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
