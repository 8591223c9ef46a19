package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const logLevelEnv = "TSCFG_LOG_LEVEL"

func configureLogging(cmd *cobra.Command, _ []string) error {
	value, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if value == "" {
		value = os.Getenv(logLevelEnv)
	}
	level, err := parseLogLevel(value)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func parseLogLevel(value string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (expected debug|info|warn|error|off)", value)
	}
}
