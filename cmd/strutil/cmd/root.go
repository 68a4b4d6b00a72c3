package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/murtho/utility/core/config"
	coreerror "github.com/murtho/utility/core/error"
	"github.com/murtho/utility/core/log"
)

// errNoMatch makes starts-with and ends-with exit non-zero without logging
var errNoMatch = errors.New("no match")

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	discovery config.DiscoveryOptions
	config    *config.Config
	logger    *log.Logger
}

func newApp() *app {
	return &app{discovery: config.DefaultDiscoveryOptions()}
}

// NewRootCommand builds the complete strutil command tree
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

// Execute runs strutil with the process arguments. Failures are logged to
// stderr; the returned error only signals a non-zero exit.
func Execute() error {
	a := newApp()
	root := a.rootCommand()

	err := root.Execute()
	if err != nil && !errors.Is(err, errNoMatch) {
		a.reportError(root, err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "strutil",
		Short: "String helpers on the command line",
		Long: `strutil exposes the stringx helpers: case conversion, boolean
markers, prefix and suffix checks, delimiter extraction and random strings.

Settings are read from strutil.toml or strutil.yaml in the working directory
or the user config directory, and from STRUTIL_* environment variables.
Flags take precedence over both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered strutil.toml/.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		a.camelizeCommand(),
		a.uncamelizeCommand(),
		a.boolToStringCommand(),
		a.stringToBoolCommand(),
		a.startsWithCommand(),
		a.endsWithCommand(),
		a.startCommand(),
		a.endCommand(),
		a.randomCommand(),
		versionCommand(),
	)

	return root
}

// setup loads the configuration and installs the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.config = cfg

	levelName := a.setting(cmd, "log-level", "log.level", log.DefaultLevel().String())
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return coreerror.Wrap(err, "invalid log level").
			WithCode(coreerror.CodeInvalidConfig).
			WithOperation("strutil.setup").
			WithDetail("level", levelName)
	}

	formatName := a.setting(cmd, "log-format", "log.format", log.FormatText.String())
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return coreerror.Wrap(err, "invalid log format").
			WithCode(coreerror.CodeInvalidConfig).
			WithOperation("strutil.setup").
			WithDetail("format", formatName)
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "strutil",
	})
	log.SetDefault(a.logger)

	a.logger.Debug("configuration loaded", log.Fields{
		"config_file": a.config.FilePath(),
		"command":     cmd.Name(),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile == "" {
		return config.Discover(a.discovery)
	}

	return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: a.discovery.EnvPrefix,
	})
}

// setting returns the flag value if it was given, else the config value,
// else def
func (a *app) setting(cmd *cobra.Command, flag, key, def string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}
	if a.config == nil {
		return def
	}
	return a.config.GetString(key, def)
}

func (a *app) reportError(cmd *cobra.Command, err error) {
	logger := a.logger
	if logger == nil {
		logger = log.New().WithOutput(cmd.ErrOrStderr()).WithName("strutil")
	}

	wrapped := coreerror.Wrap(err, "command failed")
	if wrapped.Code() == coreerror.CodeUnknown {
		wrapped = wrapped.WithCode(coreerror.CodeInvalidInput)
	}
	logger.LogError(wrapped.WithSeverity(coreerror.SeverityHigh))
}
