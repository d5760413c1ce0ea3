package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/boosted-portal/internal/app"
	"github.com/nhle/boosted-portal/internal/logger"
	"github.com/nhle/boosted-portal/internal/model"
	"github.com/nhle/boosted-portal/internal/theme"
)

var version = "dev"

var (
	configPath string
	themeFlag  string
	userFlag   string
	logLevel   string
	logFile    string
	force      bool
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Boosted RRHH - HR portal in the terminal",
	Long: `portal opens the Boosted RRHH shell: an AI assistant, the employee
roster, support tickets and notifications behind a sign-in screen.

Settings are read from the config file and PORTAL_* environment variables;
flags override both.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "portal", version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to --config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd, configPath, force)
	},
}

// initConfig writes the default config to path. An existing file is kept
// unless overwrite is set.
func initConfig(cmd *cobra.Command, path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config %s: %w", path, err)
	}

	if err := model.SaveConfig(path, model.DefaultAppConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", model.DefaultConfigPath(), "Config file")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme: auto, dark or light")
	rootCmd.Flags().StringVarP(&userFlag, "user", "u", "", "Sign in as this name and skip the login screen")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file path")

	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(versionCmd, configCmd)
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Display.Theme = themeFlag
	}
	if flags.Changed("user") {
		cfg.Session.User = userFlag
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func run(cfg *model.AppConfig) error {
	l, closer, err := logger.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(l)

	// The host preference is read once; the in-app toggle owns it afterwards.
	dark := theme.DetectDark(cfg.Display.Theme)
	l.Info("starting", "version", version, "theme", cfg.Display.Theme, "dark", dark)

	shell := app.New(app.Options{
		Dark:      dark,
		StartView: model.ViewState(cfg.Display.StartView),
		User:      cfg.Session.User,
		Logger:    l,
	})

	if _, err := tea.NewProgram(shell, tea.WithAltScreen()).Run(); err != nil {
		l.Error("program exited", "err", err)
		return fmt.Errorf("running portal: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
