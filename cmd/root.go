package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/extedit/internal/app"
	"github.com/zjrosen/extedit/internal/config"
	"github.com/zjrosen/extedit/internal/log"
	"github.com/zjrosen/extedit/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version  = "dev"
	cfgFile  string
	cfg      config.Config
	cfgErr   error
	settings = config.NewViper()
)

var (
	initialValue string
	singleLine   bool
	writeBack    bool
	showDiff     bool
)

var rootCmd = &cobra.Command{
	Use:   "extedit [file]",
	Short: "Edit text in the terminal with emacs-style line editing",
	Long: `Edit a file, or a value given with --value, in a terminal text field that
understands ctrl+w, ctrl+u, ctrl+k, ctrl+a, ctrl+e, ctrl+d, alt+b, alt+f,
ctrl+y and alt+y.

Press ctrl+s to accept and esc to cancel. The accepted text is printed to
stdout, or written back to the file with --write.

Examples:
  # Edit a value and capture the result
  msg=$(extedit --value "fix: typo")

  # Edit a file in place and show what changed
  extedit notes.txt --write --diff`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the effective configuration (file values over defaults) as YAML.

With --output the configuration is written to that file instead, which is a
quick way to turn a partial config into a complete one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		if configOutput != "" {
			return config.Save(configOutput, cfg)
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .extedit/config.yaml or ~/.config/extedit/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false,
		"write debug logs to the configured log file")
	rootCmd.Flags().StringVar(&initialValue, "value", "",
		"initial text when no file is given")
	rootCmd.Flags().BoolVar(&singleLine, "single-line", false,
		"use a single-line field")
	rootCmd.Flags().BoolVarP(&writeBack, "write", "w", false,
		"write the accepted text back to the file")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false,
		"print a diff of the changes to stderr")

	// Bind flags to viper
	_ = settings.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	configCmd.Flags().StringVarP(&configOutput, "output", "o", "",
		"write the configuration to this file instead of stdout")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg, cfgErr = loadConfig(settings, cfgFile)
}

// loadConfig reads the config file into v and decodes it.
//
// Lookup order when path is empty:
//  1. .extedit/config.yaml (current directory)
//  2. ~/.config/extedit/config.yaml (user config)
//
// When neither exists a default config is written to .extedit/config.yaml.
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			v.SetConfigFile(config.DefaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "extedit"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
		// If write fails, just continue with defaults (no config file)
		if writeErr := config.WriteDefaultConfig(config.DefaultConfigPath); writeErr == nil {
			v.SetConfigFile(config.DefaultConfigPath)
			_ = v.ReadInConfig()
		}
	}

	return config.Unmarshal(v)
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfgErr != nil {
		return fmt.Errorf("invalid configuration: %w", cfgErr)
	}

	if cfg.Debug || log.EnabledFromEnv() {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return err
		}
		defer cleanup()
	}
	log.Debug(log.CatConfig, "Loaded config", "path", settings.ConfigFileUsed())

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	if writeBack && path == "" {
		return errors.New("--write needs a file argument")
	}

	value, err := readInput(path, initialValue)
	if err != nil {
		return err
	}

	editor := cfg.Editor
	if singleLine {
		editor.Multiline = false
	}

	model := app.New(editor, value, path)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	result, err := final.(app.Model).Result()
	if errors.Is(err, app.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil
	}
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), output{
		path:  path,
		write: writeBack,
		diff:  showDiff,
	}, value, result)
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
