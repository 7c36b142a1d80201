package main

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/launchline/autolaunch"
	"github.com/launchline/autolaunch/internal/config"
)

var initPath string

func init() {
	initCmd.Flags().StringVar(&initPath, "out", "autolaunch.yaml", "where to write the starter config")
	rootCmd.AddCommand(enableCmd, disableCmd, statusCmd, initCmd)
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Register the startup entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureSupported(); err != nil {
			return err
		}
		record, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := record.Enable(); err != nil {
			return fmt.Errorf("enabling %s: %w", record.AppName(), err)
		}
		logger.Info("startup entry enabled",
			zap.String("app", record.AppName()),
			zap.String("path", record.AppPath()))
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Remove the startup entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureSupported(); err != nil {
			return err
		}
		record, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := record.Disable(); err != nil {
			return fmt.Errorf("disabling %s: %w", record.AppName(), err)
		}
		logger.Info("startup entry disabled", zap.String("app", record.AppName()))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show host support and the entry's registration state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if info, err := host.Info(); err == nil {
			fmt.Fprintf(out, "Host:      %s %s (%s)\n", info.Platform, info.PlatformVersion, info.OS)
		}
		fmt.Fprintf(out, "Supported: %v\n", autolaunch.IsSupported())

		// Without a described registration there is nothing more to report.
		if cfg.App.Name == "" || cfg.App.Path == "" {
			return nil
		}

		logger := initLogger(cfg)
		defer logger.Sync()
		record, err := buildRecord(cfg, logger)
		if err != nil {
			return err
		}
		enabled, err := record.IsEnabled()
		if err != nil {
			return fmt.Errorf("checking %s: %w", record.AppName(), err)
		}
		command := record.AppPath()
		if launchArgs := record.Args(); len(launchArgs) > 0 {
			command += " " + strings.Join(launchArgs, " ")
		}
		fmt.Fprintf(out, "Entry:     %s\n", record.AppName())
		fmt.Fprintf(out, "Command:   %s\n", command)
		fmt.Fprintf(out, "Enabled:   %v\n", enabled)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.WriteConfig(cfg, initPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initPath)
		return nil
	},
}
