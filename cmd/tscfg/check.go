package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tscfg/internal/diag"
	"tscfg/internal/diagfmt"
	"tscfg/internal/driver"
	"tscfg/internal/observ"
	"tscfg/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [tsconfig.json ...]",
	Short: "Validate compilerOptions of one or more config files",
	Long: `Parse tsconfig.json/jsconfig.json files and report syntax errors, unknown
compiler options and invalid option values. Without arguments the files listed
in [files].configs of the nearest tscfg.toml are checked. "-" reads stdin.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|msgpack)")
	checkCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics per file (0=unlimited)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("base-path", "", "directory for relative path options (default: each config's directory)")
	checkCmd.Flags().String("stdin-name", "tsconfig.json", "file name used for config read from stdin")
	checkCmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("timings", false, "print per-phase timings to stderr")
	checkCmd.Flags().Bool("watch", false, "re-check whenever a config file changes")
}

type checkSettings struct {
	format         string
	maxDiagnostics int
	jobs           int
	basePath       string
	stdinName      string
	ui             uiMode
	timings        bool
	watch          bool
	color          bool
	pathMode       diagfmt.PathMode
}

func validFormat(format string) bool {
	switch format {
	case "pretty", "short", "json", "msgpack":
		return true
	}
	return false
}

// resolveCheckSettings merges flags over the manifest: an explicitly set flag
// wins, then the manifest, then the flag default.
func resolveCheckSettings(cmd *cobra.Command, manifest *projectManifest) (checkSettings, error) {
	var s checkSettings
	var mc checkConfig
	if manifest != nil {
		mc = manifest.Config.Check
	}
	flags := cmd.Flags()

	var err error
	if s.format, err = flags.GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if !flags.Changed("format") && mc.Format != "" {
		s.format = mc.Format
	}
	s.format = strings.ToLower(s.format)
	if !validFormat(s.format) {
		return s, fmt.Errorf("unknown format %q (expected pretty|short|json|msgpack)", s.format)
	}

	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && mc.MaxDiagnostics > 0 {
		s.maxDiagnostics = mc.MaxDiagnostics
	}
	if s.maxDiagnostics < 0 {
		return s, fmt.Errorf("--max-diagnostics must not be negative")
	}

	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !flags.Changed("jobs") && mc.Jobs > 0 {
		s.jobs = mc.Jobs
	}

	if s.basePath, err = flags.GetString("base-path"); err != nil {
		return s, fmt.Errorf("failed to get base-path flag: %w", err)
	}
	if s.basePath == "" {
		s.basePath = manifest.basePath()
	}

	if s.stdinName, err = flags.GetString("stdin-name"); err != nil {
		return s, fmt.Errorf("failed to get stdin-name flag: %w", err)
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.watch, err = flags.GetBool("watch"); err != nil {
		return s, fmt.Errorf("failed to get watch flag: %w", err)
	}

	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !cmd.Flags().Changed("color") && mc.Color != "" {
		colorValue = mc.Color
	}
	if s.color, err = useColor(colorValue); err != nil {
		return s, err
	}

	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return s, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if !cmd.Flags().Changed("path-mode") && mc.PathMode != "" {
		pathModeValue = mc.PathMode
	}
	var ok bool
	if s.pathMode, ok = diagfmt.ParsePathMode(pathModeValue); !ok {
		return s, fmt.Errorf("invalid --path-mode value %q (expected auto|absolute|relative|basename)", pathModeValue)
	}
	return s, nil
}

// collectInputs turns arguments into driver inputs. "-" reads stdin once.
func collectInputs(args []string, manifest *projectManifest, stdin io.Reader, stdinName string) ([]driver.Input, error) {
	if len(args) == 0 {
		paths := manifest.configPaths()
		if len(paths) == 0 {
			return nil, fmt.Errorf("no config files given and no [files].configs in %s", manifestName)
		}
		return driver.Paths(paths...), nil
	}
	inputs := make([]driver.Input, 0, len(args))
	usedStdin := false
	for _, arg := range args {
		if arg != "-" {
			inputs = append(inputs, driver.Input{Path: arg})
			continue
		}
		if usedStdin {
			return nil, fmt.Errorf("stdin can only be read once")
		}
		usedStdin = true
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		inputs = append(inputs, driver.Input{Path: stdinName, Content: content})
	}
	return inputs, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	manifest, found, err := loadManifest(".")
	if err != nil {
		return err
	}
	if found {
		logger.Debug().Str("manifest", manifest.Path).Msg("using project manifest")
	}

	settings, err := resolveCheckSettings(cmd, manifest)
	if err != nil {
		return err
	}
	inputs, err := collectInputs(args, manifest, cmd.InOrStdin(), settings.stdinName)
	if err != nil {
		return err
	}

	req := driver.Request{
		Inputs:         inputs,
		BasePath:       settings.basePath,
		MaxDiagnostics: settings.maxDiagnostics,
		Jobs:           settings.jobs,
		Timings:        settings.timings,
	}

	out := cmd.OutOrStdout()
	if settings.watch {
		return runCheckWatch(ctx, out, cmd.ErrOrStderr(), req, settings)
	}
	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	// TUI и машиночитаемый вывод делят stdout, поэтому только для pretty/short
	tui := shouldUseTUI(settings.ui) && (settings.format == "pretty" || settings.format == "short")
	if tui {
		fs, results, err = runCheckWithUI(ctx, out, "checking configs", req)
	} else {
		fs, results, err = driver.Check(ctx, req)
	}
	if err != nil {
		return err
	}

	if err := writeCheckOutput(out, fs, results, settings); err != nil {
		return err
	}
	if settings.timings {
		writeTimings(cmd.ErrOrStderr(), fs, results, settings.pathMode)
	}

	for _, r := range results {
		if r.HasErrors() {
			return errDiagnostics
		}
	}
	return nil
}

// runCheckWatch re-checks on every change until interrupted; diagnostics never
// end the loop.
func runCheckWatch(ctx context.Context, out, errOut io.Writer, req driver.Request, s checkSettings) error {
	status := color.New(color.Faint)
	if s.color {
		status.EnableColor()
	} else {
		status.DisableColor()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var writeErr error
	err := driver.Watch(ctx, req, driver.WatchOptions{}, func(fs *source.FileSet, results []driver.FileResult) {
		if writeErr != nil {
			return
		}
		if writeErr = writeCheckOutput(out, fs, results, s); writeErr != nil {
			cancel()
			return
		}
		if s.timings {
			writeTimings(errOut, fs, results, s.pathMode)
		}
		errorCount := 0
		for _, r := range results {
			errorCount += countErrors(r.Bag)
		}
		fmt.Fprintln(errOut, status.Sprintf("[%s] %d error(s), watching for changes...", time.Now().Format(time.TimeOnly), errorCount))
	})
	if writeErr != nil {
		return writeErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeCheckOutput(out io.Writer, fs *source.FileSet, results []driver.FileResult, s checkSettings) error {
	switch s.format {
	case "short":
		var all []diag.Diagnostic
		for _, r := range results {
			all = append(all, r.Bag.Items()...)
		}
		if text := diag.FormatShortDiagnostics(all, fs); text != "" {
			if _, err := fmt.Fprintln(out, text); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return diagfmt.WriteReportJSON(out, buildReport(fs, results, s.pathMode))
	case "msgpack":
		return diagfmt.WriteReportMsgpack(out, buildReport(fs, results, s.pathMode))
	default:
		return writePretty(out, fs, results, s)
	}
}

func writePretty(out io.Writer, fs *source.FileSet, results []driver.FileResult, s checkSettings) error {
	opts := diagfmt.PrettyOpts{
		Color:    s.color,
		Context:  1,
		PathMode: s.pathMode,
	}
	header := color.New(color.Bold)
	if s.color {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	errorCount, filesWithErrors := 0, 0
	for idx, r := range results {
		if len(results) > 1 {
			if idx > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, header.Sprintf("== %s ==", diagfmt.DisplayPath(fs, r.FileID, r.Path, s.pathMode)))
		}
		if err := diagfmt.Pretty(out, r.Bag, fs, opts); err != nil {
			return err
		}
		n := countErrors(r.Bag)
		errorCount += n
		if n > 0 {
			filesWithErrors++
		}
	}
	if errorCount > 0 {
		_, err := fmt.Fprintf(out, "\nFound %d error(s) in %d file(s).\n", errorCount, filesWithErrors)
		return err
	}
	return nil
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Category == diag.CatError {
			n++
		}
	}
	return n
}

func buildReport(fs *source.FileSet, results []driver.FileResult, mode diagfmt.PathMode) diagfmt.Report {
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, PathMode: mode}
	report := diagfmt.Report{Files: make([]diagfmt.FileReport, 0, len(results))}
	for _, r := range results {
		fr := diagfmt.FileReport{
			Path:        diagfmt.DisplayPath(fs, r.FileID, r.Path, mode),
			Diagnostics: diagfmt.BuildDiagnostics(r.Bag.Items(), fs, jsonOpts),
		}
		if r.Result.Options != nil {
			fr.Options = r.Result.Options
		}
		report.Count += len(fr.Diagnostics)
		report.Files = append(report.Files, fr)
	}
	return report
}

func writeTimings(w io.Writer, fs *source.FileSet, results []driver.FileResult, mode diagfmt.PathMode) {
	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		reports = append(reports, *r.Timing)
		fmt.Fprintf(w, "== %s ==\n%s", diagfmt.DisplayPath(fs, r.FileID, r.Path, mode), r.Timing.Summary())
	}
	if len(reports) > 1 {
		fmt.Fprintf(w, "== all files ==\n%s", observ.Merge(reports...).Summary())
	}
}
