package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"jobtimeline/internal/models"
)

// PortEnv is the environment variable that overrides the listen port.
const PortEnv = "PORT"

// Config represents configuration data for the dashboard.
type Config struct {
	View     string         `yaml:"view"`
	Title    string         `yaml:"title"`
	Port     int            `yaml:"port"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Link     *Link          `yaml:"link"`
}

// DatabaseConfig locates the SQL Server instance hosting msdb.
type DatabaseConfig struct {
	DSN                 string `yaml:"dsn"`
	Server              string `yaml:"server"`
	Database            string `yaml:"database"`
	User                string `yaml:"user"`
	Password            string `yaml:"password"`
	QueryTimeoutSeconds int    `yaml:"query_timeout_seconds"`
}

// LogConfig selects the log encoder and level.
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Link is an optional button pointing at a sibling dashboard.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// DefaultConfig returns defaults used when no configuration file is provided.
func DefaultConfig() Config {
	return Config{
		View: string(models.ViewSubdaily),
		Database: DatabaseConfig{
			Server:              "localhost",
			Database:            "msdb",
			QueryTimeoutSeconds: 30,
		},
		Log: LogConfig{
			Format: "console",
			Level:  "info",
		},
	}
}

// Load reads configuration from a yaml file. Missing files fall back to defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.normalise(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() error {
	kind, err := models.ParseViewKind(c.View)
	if err != nil {
		return err
	}
	c.View = string(kind)
	if c.Port < 0 || c.Port > 65535 {
		return errors.Newf("port %d out of range", c.Port)
	}
	if c.Database.QueryTimeoutSeconds < 0 {
		c.Database.QueryTimeoutSeconds = 0
	}
	if c.Database.DSN == "" && c.Database.Server == "" {
		return errors.New("database requires either dsn or server")
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Link != nil && strings.TrimSpace(c.Link.URL) == "" {
		return errors.New("link url is required when link is set")
	}
	if c.Link != nil && c.Link.Label == "" {
		c.Link.Label = c.Link.URL
	}
	return nil
}

// SetView overrides the configured view, e.g. from a command line flag.
func (c *Config) SetView(name string) error {
	kind, err := models.ParseViewKind(name)
	if err != nil {
		return err
	}
	c.View = string(kind)
	return nil
}

// ApplyEnv applies the PORT override using lookup (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	raw, ok := lookup(PortEnv)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return errors.Wrapf(err, "invalid %s value %q", PortEnv, raw)
	}
	if port <= 0 || port > 65535 {
		return errors.Newf("%s %d out of range", PortEnv, port)
	}
	c.Port = port
	return nil
}

// ViewPolicy resolves the presentation policy, applying the configured title.
func (c Config) ViewPolicy() models.View {
	kind, err := models.ParseViewKind(c.View)
	if err != nil {
		kind = models.ViewSubdaily
	}
	view := models.ViewFor(kind)
	if c.Title != "" {
		view.Title = c.Title
	}
	return view
}

// ListenPort returns the configured port or the view's default.
func (c Config) ListenPort() int {
	if c.Port > 0 {
		return c.Port
	}
	return c.ViewPolicy().DefaultPort
}

// DataSourceName returns the go-mssqldb connection URL.
func (d DatabaseConfig) DataSourceName() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := &url.URL{Scheme: "sqlserver", Host: d.Server}
	if d.User != "" {
		u.User = url.UserPassword(d.User, d.Password)
	}
	q := url.Values{}
	if d.Database != "" {
		q.Set("database", d.Database)
	}
	q.Set("app name", "jobtimeline")
	u.RawQuery = q.Encode()
	return u.String()
}
