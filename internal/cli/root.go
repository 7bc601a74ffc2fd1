// Package cli implements the cubeview command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	logFile string
	verbose bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cubeview",
	Short: "Interactive 3-D Rubik's cube viewer",
	Long: `cubeview keeps a Rubik's cube's facelet state, applies face turns to it and
draws it either as an unfolded net or as a rotatable perspective solid.

Turn faces from the keyboard or from a connected GoCube smart cube, render
single frames to PNG, and browse the journal of past sessions.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: ~/.cubeview/config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Journal database path (default: ~/.cubeview/journal.db)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file used while the viewer is running (default: ~/.cubeview/cubeview.log)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	setupLogging(os.Stderr)

	path, optional := cfgPath, false
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path, optional = p, true
	}

	c, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	cfg = c
	log.Debug().Str("path", path).Msg("config loaded")
	return nil
}

// setupLogging points the global logger at w.
func setupLogging(w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// redirectLogs sends log output to the log file so it does not tear the
// full-screen view. The returned func closes the file.
func redirectLogs() (func(), error) {
	path := logFile
	if path == "" {
		path = cfg.LogFile
	}
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "cubeview.log")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() {
		f.Close()
		setupLogging(os.Stderr)
	}, nil
}

// openDB opens the journal from the --db flag, the config, or the default
// location, in that order.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" && cfg != nil {
		path = cfg.DBPath
	}
	if path == "" {
		return storage.OpenDefault()
	}
	return storage.Open(path)
}
