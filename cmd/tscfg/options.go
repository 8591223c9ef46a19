package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"tscfg/internal/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options [flags]",
	Short: "List the recognised compiler options",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

func init() {
	optionsCmd.Flags().String("category", "", "only list options of this category (case-insensitive)")
	optionsCmd.Flags().String("format", "table", "output format (table|json)")
}

type optionRow struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Values   []string `json:"values,omitempty"`
}

func runOptions(cmd *cobra.Command, _ []string) error {
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	colored, err := useColor(colorValue)
	if err != nil {
		return err
	}

	rows := optionRows(category)
	if len(rows) == 0 && category != "" {
		return fmt.Errorf("no options in category %q", category)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table":
		return renderOptionsTable(cmd.OutOrStdout(), rows, colored)
	default:
		return fmt.Errorf("unknown format %q (expected table|json)", format)
	}
}

func optionRows(category string) []optionRow {
	var rows []optionRow
	for _, decl := range options.Declarations() {
		if category != "" && !strings.EqualFold(string(decl.Category), category) {
			continue
		}
		rows = append(rows, optionRow{
			Name:     decl.Name,
			Type:     decl.TypeName(),
			Category: string(decl.Category),
			Values:   enumLiterals(decl),
		})
	}
	return rows
}

// enumLiterals lists accepted values of enum options and of lists of enums.
func enumLiterals(decl *options.OptionDeclaration) []string {
	switch {
	case decl.Enum != nil:
		return decl.Enum.Literals()
	case decl.Element != nil && decl.Element.Enum != nil:
		return decl.Element.Enum.Literals()
	}
	return nil
}

func renderOptionsTable(out io.Writer, rows []optionRow, colored bool) error {
	nameW, typeW := runewidth.StringWidth("NAME"), runewidth.StringWidth("TYPE")
	for _, r := range rows {
		nameW = max(nameW, runewidth.StringWidth(r.Name))
		typeW = max(typeW, runewidth.StringWidth(r.Type))
	}
	// длинные перечисления (lib) не должны растягивать таблицу
	typeW = min(typeW, 48)

	headerStyle := lipgloss.NewStyle().Bold(true).Underline(true)
	header := runewidth.FillRight("NAME", nameW) + "  " + runewidth.FillRight("TYPE", typeW) + "  CATEGORY"
	if colored {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}
	for _, r := range rows {
		typ := r.Type
		if runewidth.StringWidth(typ) > typeW {
			typ = runewidth.Truncate(typ, typeW, "…")
		}
		line := runewidth.FillRight(r.Name, nameW) + "  " + runewidth.FillRight(typ, typeW) + "  " + r.Category
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
