package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/reglet-dev/locus/internal/application/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "locus",
	Short: "Validate and draw circle scenes",
	Long: `locus checks where circles may be placed.

Every circle keeps its location in a cell that only accepts coordinates
with both x and y non-zero. Scenes can narrow that further with a rule
expression over x and y and with an inclusive bounds box.

Settings are read from --config, or from config.yaml in the locus user
config directory (for example ~/.config/locus/config.yaml), then from
LOCUS_* environment variables. Keys: format, concurrency, verbose,
log-format.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := loadConfig(viper.GetViper(), cfgFile); err != nil {
			return err
		}
		logger, err := newLogger(os.Stderr, viper.GetBool("verbose"), viper.GetString("log-format"))
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		if used := viper.ConfigFileUsed(); used != "" {
			slog.Debug("using config file", "file", used)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <user config dir>/locus/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "log format on stderr: text, json")

	for _, name := range []string{"verbose", "log-format"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// loadConfig reads the config file, if any, and wires LOCUS_* variables.
// A missing default config file is not an error; an explicit one is.
func loadConfig(v *viper.Viper, path string) error {
	v.SetDefault("format", "table")
	v.SetDefault("concurrency", 4)

	v.SetEnvPrefix("locus")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(filepath.Join(dir, "locus"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return apperrors.NewConfigurationError("config", "failed to read config file", err)
	}
	return nil
}

// newLogger builds the CLI logger. Debug level is enabled by verbose.
func newLogger(w io.Writer, verbose bool, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, apperrors.NewConfigurationError("log-format",
			fmt.Sprintf("unknown log format %q (want text or json)", format), nil)
	}
}
