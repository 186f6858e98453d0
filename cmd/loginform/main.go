package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jask/loginform/internal/config"
	"github.com/jask/loginform/internal/tui"
)

const defaultEnvFile = ".env"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfgPath string
		envFile string
		logFile string
	)
	cmd := &cobra.Command{
		Use:          "loginform",
		Short:        "Terminal login form with field validation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(envFile); err != nil {
				return err
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}
			closeLog, err := setupLogging(cfg.Log.File)
			if err != nil {
				return err
			}
			defer closeLog()
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/loginform/config.toml)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file loaded before config (default .env if present)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug log to this file")
	return cmd
}

// loadEnv loads a dotenv file. The default file is optional; a file named
// on the command line must exist.
func loadEnv(path string) error {
	if path == "" {
		err := godotenv.Load(defaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// setupLogging points the standard logger at path. The terminal belongs to
// the program, so without a path logs are dropped.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "loginform")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func run(cfg config.Config) error {
	app := tui.New(tui.Options{
		Width:            cfg.UI.Width,
		Height:           cfg.UI.Height,
		NamePlaceholder:  cfg.UI.NamePlaceholder,
		EmailPlaceholder: cfg.UI.EmailPlaceholder,
		CharLimit:        cfg.UI.CharLimit,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	log.Printf("starting form %s", app.ID())
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
