package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/app"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/config"
)

// CLI is the viper-backed command tree.
type CLI struct {
	v       *viper.Viper
	root    *cobra.Command
	out     io.Writer
	errOut  io.Writer
	openApp func(ctx context.Context, cfg config.Config, log *slog.Logger) (*app.Board, error)
}

// NewCLI builds the command tree writing to out and errOut.
func NewCLI(out, errOut io.Writer) *CLI {
	c := &CLI{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		openApp: func(ctx context.Context, cfg config.Config, log *slog.Logger) (*app.Board, error) {
			return app.Open(ctx, cfg, log, nil)
		},
	}
	c.setupViper()
	c.createRoot()
	c.root.AddCommand(
		c.tuiCmd(),
		c.listCmd(),
		c.statsCmd(),
		c.exportCmd(),
		c.resetCmd(),
	)
	return c
}

// Execute runs the command named by os.Args.
func (c *CLI) Execute() error {
	return c.root.Execute()
}

// setupViper enables OUTLETCTL_* environment variables and an optional
// config file.
func (c *CLI) setupViper() {
	if configFile := os.Getenv("OUTLETCTL_CONFIG"); configFile != "" {
		c.v.SetConfigFile(configFile)
	} else {
		c.v.SetConfigName("outletctl")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		c.v.AddConfigPath("$HOME/.outletctl")
	}
	c.v.SetEnvPrefix("OUTLETCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	_ = c.v.ReadInConfig()
}

func (c *CLI) createRoot() {
	c.root = &cobra.Command{
		Use:   "outletctl",
		Short: "Outlet onboarding board from the terminal",
		Long: `outletctl opens the same board the API server uses.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (OUTLETCTL_*)
  3. Configuration file (OUTLETCTL_CONFIG, ./outletctl.yaml, ~/.outletctl/outletctl.yaml)

Examples:
  outletctl --driver file --path ./data tui
  outletctl list --stage "CHEF APPROVAL"
  OUTLETCTL_DRIVER=sqlite OUTLETCTL_PATH=board.db outletctl stats
  outletctl export --out -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.v.BindPFlags(cmd.Flags())
		},
	}
	c.root.SetOut(c.out)
	c.root.SetErr(c.errOut)

	f := c.root.PersistentFlags()
	f.String("driver", "file", "Snapshot backend: memory|file|sqlite|postgres|s3")
	f.String("path", "", "Snapshot directory (file) or database file (sqlite)")
	f.String("database-url", "", "Postgres connection string")
	f.String("s3-bucket", "", "S3 bucket")
	f.String("s3-region", "us-east-1", "S3 region")
	f.String("s3-endpoint", "", "S3-compatible endpoint URL")
	f.String("s3-prefix", "", "S3 object key prefix")
	f.Bool("s3-path-style", false, "Use path-style S3 addressing")
	f.String("key", "", "Snapshot key override")
	f.String("seed-file", "", "YAML seed board used when nothing is saved")
	f.String("log-level", "warn", "Log level: debug|info|warn|error")
}

// config maps the bound flags onto the shared server configuration.
func (c *CLI) config() config.Config {
	driver := c.v.GetString("driver")
	path := c.v.GetString("path")
	if path == "" {
		path = "data"
		if driver == "sqlite" {
			path = "data/board.db"
		}
	}
	return config.Config{
		LogLevel:    c.v.GetString("log-level"),
		StoreDriver: driver,
		StorePath:   path,
		DatabaseURL: c.v.GetString("database-url"),
		S3: config.S3{
			Bucket:    c.v.GetString("s3-bucket"),
			Region:    c.v.GetString("s3-region"),
			Endpoint:  c.v.GetString("s3-endpoint"),
			Prefix:    c.v.GetString("s3-prefix"),
			PathStyle: c.v.GetBool("s3-path-style"),
		},
		SnapshotKey:        c.v.GetString("key"),
		SeedFile:           c.v.GetString("seed-file"),
		SaveIndicatorDelay: config.DefaultSaveIndicatorDelay,
	}
}

func (c *CLI) logger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{Level: l}))
}

// withBoard opens the board for the duration of fn.
func (c *CLI) withBoard(cmd *cobra.Command, fn func(ctx context.Context, b *app.Board) error) error {
	cfg := c.config()
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	b, err := c.openApp(ctx, cfg, c.logger(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(ctx, b)
}
