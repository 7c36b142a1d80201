// Package main is the entry point for autolaunchctl, a small operator tool
// around the autolaunch library: it registers, unregisters and inspects
// login-time startup entries described by flags or a YAML config file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/launchline/autolaunch"
	"github.com/launchline/autolaunch/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile         string
	flagName        string
	flagPath        string
	flagArgs        []string
	flagHidden      bool
	flagLaunchAgent bool
	flagMode        string
)

var rootCmd = &cobra.Command{
	Use:          "autolaunchctl",
	Short:        "Manage login-time startup registrations",
	Long:         "autolaunchctl registers an executable to be launched when the current user logs in, and can query or revoke that registration.",
	Version:      version,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file describing the registration")
	pf.StringVar(&flagName, "name", "", "registration name")
	pf.StringVar(&flagPath, "path", "", "absolute path to the executable or .app bundle")
	pf.StringArrayVar(&flagArgs, "arg", nil, "launch argument (repeatable)")
	pf.BoolVar(&flagHidden, "hidden", false, "launch with the --hidden flag (Linux, macOS)")
	pf.BoolVar(&flagLaunchAgent, "launch-agent", false, "use a launch agent instead of a login item (macOS)")
	pf.StringVar(&flagMode, "mode", "", "windows registry hive: dynamic, current-user or system")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the YAML config (if any) and layers explicitly set
// flags on top, mirroring the env > file > defaults precedence of the
// config package with flags as the final layer.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("name") {
		cfg.App.Name = flagName
	}
	if flags.Changed("path") {
		cfg.App.Path = flagPath
	}
	if flags.Changed("arg") {
		cfg.App.Args = flagArgs
	}
	if flags.Changed("hidden") {
		cfg.App.Hidden = flagHidden
	}
	if flags.Changed("launch-agent") {
		cfg.MacOS.LaunchAgent = flagLaunchAgent
	}
	if flags.Changed("mode") {
		cfg.Windows.Mode = flagMode
	}
	return cfg, nil
}

// buildRecord validates the configuration and assembles the registration
// record.
func buildRecord(cfg *config.Config, logger *zap.Logger) (*autolaunch.AutoLaunch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := autolaunch.ParseEnableMode(cfg.Windows.Mode)
	if err != nil {
		return nil, err
	}
	return autolaunch.NewBuilder().
		SetAppName(cfg.App.Name).
		SetAppPath(cfg.App.Path).
		SetArgs(cfg.App.Args).
		SetHidden(cfg.App.Hidden).
		SetUseLaunchAgent(cfg.MacOS.LaunchAgent).
		SetBundleIdentifiers(cfg.MacOS.BundleIdentifiers).
		SetAgentExtraConfig(cfg.MacOS.AgentExtraConfig).
		SetEnableMode(mode).
		SetLogger(logger).
		Build()
}

// initLogger creates a zap logger based on the configuration.
// It outputs to the console and optionally a JSON log file.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err == nil {
			fileCore := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			)
			cores = append(cores, fileCore)
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}

// setup is the shared preamble of the mutating commands.
func setup(cmd *cobra.Command) (*autolaunch.AutoLaunch, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := initLogger(cfg)
	record, err := buildRecord(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}
	return record, logger, nil
}

func ensureSupported() error {
	if !autolaunch.IsSupported() {
		return fmt.Errorf("this platform has no autostart backend")
	}
	return nil
}
