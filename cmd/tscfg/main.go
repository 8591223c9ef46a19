package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tscfg/internal/prof"
	"tscfg/internal/version"
)

// errDiagnostics signals that a command already reported error diagnostics;
// main exits 1 without logging it again.
var errDiagnostics = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:               "tscfg",
	Short:             "TypeScript compiler options validator",
	Long:              `tscfg parses tsconfig.json/jsconfig.json files and validates their compilerOptions`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error); defaults to $TSCFG_LOG_LEVEL or warn")
	rootCmd.PersistentFlags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("trace", "", "write a runtime trace to file")
}

// profiling живёт от PersistentPreRunE до выхода из main
var profiling *prof.Session

func setupRun(cmd *cobra.Command, args []string) error {
	if err := configureLogging(cmd, args); err != nil {
		return err
	}
	var opts prof.Options
	var err error
	if opts.CPU, err = cmd.Flags().GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if opts.Mem, err = cmd.Flags().GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if opts.Trace, err = cmd.Flags().GetString("trace"); err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	profiling, err = prof.Start(opts)
	return err
}

func stopProfiling() {
	if err := profiling.Stop(); err != nil {
		log.Warn().Err(err).Msg("failed to finish profiles")
	}
	profiling = nil
}

func main() {
	rootCmd.Version = version.Current().Version

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	err := rootCmd.ExecuteContext(ctx)
	stopProfiling()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
