package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	site "github.com/neuralarc/site"
	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/datastore"
)

// config mirrors neuralarc.yaml. Every key can also be set through a
// NEURALARC_ environment variable, e.g. NEURALARC_SITE_SESSION_SECRET.
type config struct {
	LogLevel string `mapstructure:"log_level"`

	Site struct {
		Name          string        `mapstructure:"name"`
		URL           string        `mapstructure:"url"`
		Description   string        `mapstructure:"description"`
		Addr          string        `mapstructure:"addr"`
		SessionSecret string        `mapstructure:"session_secret"`
		CookieSecure  bool          `mapstructure:"cookie_secure"`
		StaticDir     string        `mapstructure:"static_dir"`
		ContentDir    string        `mapstructure:"content_dir"`
		ContentTTL    time.Duration `mapstructure:"content_ttl"`
		SubmitLimit   int           `mapstructure:"submit_limit"`
	} `mapstructure:"site"`

	Datastore struct {
		Driver  string        `mapstructure:"driver"`
		URL     string        `mapstructure:"url"`
		Key     string        `mapstructure:"key"`
		DSN     string        `mapstructure:"dsn"`
		Path    string        `mapstructure:"path"`
		Table   string        `mapstructure:"table"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"datastore"`

	Mailgun struct {
		Domain string `mapstructure:"domain"`
		APIKey string `mapstructure:"api_key"`
		From   string `mapstructure:"from"`
		To     string `mapstructure:"to"`
	} `mapstructure:"mailgun"`
}

var (
	v       = viper.New()
	cfg     config
	cfgFile string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "neuralarc",
		Short:         "Neuralarc Matrix landing site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./neuralarc.yaml)")
	root.PersistentFlags().String("content-dir", "", "load content from this directory instead of the built-in set")
	_ = v.BindPFlag("site.content_dir", root.PersistentFlags().Lookup("content-dir"))

	root.AddCommand(newServeCmd(), newContentCmd(), newOGCmd(), newVersionCmd())
	return root
}

func initializeConfig() error {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("site.name", "Neuralarc Matrix")
	v.SetDefault("site.url", "http://localhost:3000")
	v.SetDefault("site.description", "")
	v.SetDefault("site.addr", ":3000")
	v.SetDefault("site.session_secret", "")
	v.SetDefault("site.cookie_secure", false)
	v.SetDefault("site.static_dir", "public")
	v.SetDefault("site.content_dir", "")
	v.SetDefault("site.content_ttl", "0s")
	v.SetDefault("site.submit_limit", 5)
	v.SetDefault("datastore.driver", datastore.DriverSQLite)
	v.SetDefault("datastore.url", "")
	v.SetDefault("datastore.key", "")
	v.SetDefault("datastore.dsn", "")
	v.SetDefault("datastore.path", "data/contact.db")
	v.SetDefault("datastore.table", datastore.DefaultTable)
	v.SetDefault("datastore.timeout", datastore.DefaultTimeout)
	v.SetDefault("mailgun.domain", "")
	v.SetDefault("mailgun.api_key", "")
	v.SetDefault("mailgun.from", "")
	v.SetDefault("mailgun.to", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("neuralarc")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NEURALARC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the names hosted Supabase projects hand out
	_ = v.BindEnv("datastore.url", "NEURALARC_DATASTORE_URL", "SUPABASE_URL")
	_ = v.BindEnv("datastore.key", "NEURALARC_DATASTORE_KEY", "SUPABASE_ANON_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (c config) siteConfig() site.SiteConfig {
	return site.SiteConfig{
		Name:          c.Site.Name,
		URL:           c.Site.URL,
		Description:   c.Site.Description,
		Addr:          c.Site.Addr,
		SessionSecret: c.Site.SessionSecret,
		CookieSecure:  c.Site.CookieSecure,
		ContentTTL:    c.Site.ContentTTL,
		SubmitLimit:   c.Site.SubmitLimit,
	}
}

func (c config) datastoreConfig() datastore.Config {
	d := c.Datastore
	return datastore.Config{
		Driver:  d.Driver,
		URL:     d.URL,
		Key:     d.Key,
		DSN:     d.DSN,
		Path:    d.Path,
		Table:   d.Table,
		Timeout: d.Timeout,
	}
}

func (c config) mailgunConfig() contact.MailgunConfig {
	return contact.MailgunConfig{
		Domain: c.Mailgun.Domain,
		APIKey: c.Mailgun.APIKey,
		From:   c.Mailgun.From,
		To:     c.Mailgun.To,
	}
}

// contentFS is the configured content directory, or the built-in content.
func (c config) contentFS() fs.FS {
	if c.Site.ContentDir != "" {
		return os.DirFS(c.Site.ContentDir)
	}
	return content.Default()
}

func parseLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
