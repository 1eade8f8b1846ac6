package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/lgtok/internal/app"
	"github.com/zjrosen/lgtok/internal/cachemanager"
	"github.com/zjrosen/lgtok/internal/clipboard"
	"github.com/zjrosen/lgtok/internal/color"
	"github.com/zjrosen/lgtok/internal/config"
	"github.com/zjrosen/lgtok/internal/edit"
	"github.com/zjrosen/lgtok/internal/log"
	"github.com/zjrosen/lgtok/internal/mode"
	"github.com/zjrosen/lgtok/internal/pubsub"
	"github.com/zjrosen/lgtok/internal/token"
	"github.com/zjrosen/lgtok/internal/ui/styles"
	"github.com/zjrosen/lgtok/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query the terminal background BEFORE
	// the Bubble Tea program starts, so the OSC 11 response cannot
	// race the input loop and leak into text fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "lgtok",
	Short:   "A terminal browser for the liquid-glass design tokens",
	Long:    `A terminal user interface for browsing, editing, and exporting the liquid-glass design token palette, with a WCAG contrast checker for translucent surfaces.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/lgtok/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to lgtok.log")
	rootCmd.Flags().String("tokens", "",
		"path to a token dataset JSON file (default: embedded palette)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable reloading the token dataset when the file changes")

	_ = viper.BindPFlag("tokens_path", rootCmd.Flags().Lookup("tokens"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("theme", defaults.Theme)
	viper.SetDefault("motion", defaults.Motion)
	viper.SetDefault("ui.show_descriptions", defaults.UI.ShowDescriptions)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .lgtok/config.yaml (current directory)
		// 2. ~/.config/lgtok/config.yaml (user config)
		if _, err := os.Stat(".lgtok/config.yaml"); err == nil {
			viper.SetConfigFile(".lgtok/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "lgtok"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine; the defaults carry the session and
		// the first preference toggle creates the file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configFilePath is where preference toggles persist.
func configFilePath() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lgtok/config.yaml"
	}
	return filepath.Join(home, ".config", "lgtok", "config.yaml")
}

// loadTokens reads the configured dataset, falling back to the
// embedded palette when no path is set.
func loadTokens() ([]token.Token, error) {
	if cfg.TokensPath == "" {
		return token.Defaults(), nil
	}
	tokens, err := token.LoadFile(cfg.TokensPath)
	if err != nil {
		return nil, fmt.Errorf("loading tokens: %w", err)
	}
	return tokens, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug || os.Getenv("LGTOK_DEBUG") != "" {
		cleanup, err := log.Init("lgtok.log", "lgtok")
		if err != nil {
			return err
		}
		defer cleanup()
	}

	tokens, err := loadTokens()
	if err != nil {
		return err
	}

	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}

	if cfg.Theme == "" {
		cfg.Theme = styles.DetectTheme()
	}
	styles.ApplyTheme(cfg.Theme)

	services := mode.Services{
		Store:      token.NewStore(tokens),
		Session:    &edit.Session{},
		Config:     &cfg,
		ConfigPath: configFilePath(),
		Clipboard:  clipboard.System{},
		ContrastCache: cachemanager.NewInMemory[color.Result](
			cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var listener *pubsub.ContinuousListener[string]
	var fileWatcher *watcher.Watcher
	if cfg.AutoReload && cfg.TokensPath != "" {
		fileWatcher, err = watcher.New(watcher.DefaultConfig(cfg.TokensPath))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		if err := fileWatcher.Start(); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		listener = pubsub.NewContinuousListener(ctx, fileWatcher.Broker())
	}

	model := app.New(services, listener)
	p := tea.NewProgram(model, tea.WithAltScreen())

	start := time.Now()
	_, err = p.Run()
	log.Info(log.CatUI, "session ended after %s", time.Since(start).Round(time.Second))

	if fileWatcher != nil {
		if stopErr := fileWatcher.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
