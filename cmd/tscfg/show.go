package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"tscfg/internal/diagfmt"
	"tscfg/internal/driver"
	"tscfg/internal/options"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] <tsconfig.json|->",
	Short: "Print the converted compiler options of a config file",
	Long: `Print the options that survive validation, with enum values by name and
path options resolved. Diagnostics go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|msgpack)")
	showCmd.Flags().String("base-path", "", "directory for relative path options (default: the config's directory)")
	showCmd.Flags().String("stdin-name", "tsconfig.json", "file name used for config read from stdin")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "yaml", "msgpack":
	default:
		return fmt.Errorf("unknown format %q (expected pretty|json|yaml|msgpack)", format)
	}
	basePath, err := cmd.Flags().GetString("base-path")
	if err != nil {
		return fmt.Errorf("failed to get base-path flag: %w", err)
	}
	stdinName, err := cmd.Flags().GetString("stdin-name")
	if err != nil {
		return fmt.Errorf("failed to get stdin-name flag: %w", err)
	}
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	colored, err := useColor(colorValue)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(args, nil, cmd.InOrStdin(), stdinName)
	if err != nil {
		return err
	}
	fs, results, err := driver.Check(cmd.Context(), driver.Request{Inputs: inputs, BasePath: basePath, Jobs: 1})
	if err != nil {
		return err
	}
	res := results[0]

	if res.Bag.Len() > 0 {
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, fs, diagfmt.PrettyOpts{Color: colored, Context: 1}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if res.Result.Options != nil {
		switch format {
		case "json":
			err = writeOptionsJSON(out, res.Result.Options)
		case "yaml":
			err = writeOptionsYAML(out, res.Result.Options)
		case "msgpack":
			err = msgpack.NewEncoder(out).Encode(res.Result.Options)
		default:
			err = writeOptionsPretty(out, res.Result.Options, colored)
		}
		if err != nil {
			return err
		}
	}

	if res.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func writeOptionsJSON(out io.Writer, opts *options.Options) error {
	data, err := opts.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func writeOptionsYAML(out io.Writer, opts *options.Options) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return err
	}
	return enc.Close()
}

func writeOptionsPretty(out io.Writer, opts *options.Options, colored bool) error {
	name := color.New(color.FgCyan)
	if colored {
		name.EnableColor()
	} else {
		name.DisableColor()
	}
	width := 0
	for key := range opts.All() {
		width = max(width, runewidth.StringWidth(key))
	}
	for key, value := range opts.All() {
		padded := runewidth.FillRight(key, width)
		if _, err := fmt.Fprintf(out, "%s  %s\n", name.Sprint(padded), formatOptionValue(value)); err != nil {
			return err
		}
	}
	if opts.ConfigFilePath != "" {
		_, err := fmt.Fprintf(out, "%s  %s\n", name.Sprint(runewidth.FillRight("configFilePath", width)), opts.ConfigFilePath)
		return err
	}
	return nil
}

func formatOptionValue(v any) string {
	switch v := v.(type) {
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = formatOptionValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			parts = append(parts, k+": "+formatOptionValue(v[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
