package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/printfmt"
	"github.com/bjaus/printfmt/internal/report"
)

// directiveRow is one directive as shown by the explain command.
type directiveRow struct {
	Offset    int      `json:"offset" yaml:"offset"`
	Directive string   `json:"directive" yaml:"directive"`
	Verb      string   `json:"verb" yaml:"verb"`
	Width     int      `json:"width" yaml:"width"`
	Precision int      `json:"precision" yaml:"precision"`
	Fill      string   `json:"fill" yaml:"fill"`
	Align     string   `json:"align" yaml:"align"`
	Base      string   `json:"base" yaml:"base"`
	Float     string   `json:"float" yaml:"float"`
	Toggles   []string `json:"toggles,omitempty" yaml:"toggles,omitempty"`
	Flags     []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	template string
}

func newDirectiveRow(template string, d printfmt.Directive) directiveRow {
	row := directiveRow{
		Offset:    d.Offset,
		Directive: d.String(),
		Verb:      string(d.Verb),
		Width:     d.Context.Width,
		Precision: d.Context.Precision,
		Fill:      string(rune(d.Context.Fill)),
		Align:     d.Context.Align.String(),
		Base:      d.Context.Base.String(),
		Float:     d.Context.Float.String(),
		Toggles:   d.Context.Toggles(),
		template:  template,
	}
	if d.Flags != 0 {
		row.Flags = strings.Split(d.Flags.String(), ",")
	}
	return row
}

func (r directiveRow) Header() []string {
	return []string{"Offset", "Directive", "Verb", "Width", "Prec", "Fill", "Align", "Base", "Float", "Toggles", "Flags"}
}

func (r directiveRow) Row() []string {
	return []string{
		strconv.Itoa(r.Offset), r.Directive, r.Verb,
		strconv.Itoa(r.Width), strconv.Itoa(r.Precision), strconv.Quote(r.Fill),
		r.Align, r.Base, r.Float,
		strings.Join(r.Toggles, " "), strings.Join(r.Flags, " "),
	}
}

func (r directiveRow) Alignments() []report.Alignment {
	return []report.Alignment{report.AlignRight, report.AlignLeft, report.AlignCenter, report.AlignRight, report.AlignRight}
}

func (r directiveRow) Title() string { return strconv.Quote(r.template) }

func newExplainCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:          "explain FORMAT",
		Short:        "Show how each directive in FORMAT is interpreted",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			template := args[0]
			if root.escapes {
				if template, err = unescape(template); err != nil {
					return err
				}
			}
			logger := newLogger(cmd, root.verbose)

			directives, parseErr := printfmt.Parse(template)
			rows := make([]directiveRow, len(directives))
			for i, d := range directives {
				rows[i] = newDirectiveRow(template, d)
			}
			logger.Debug("template parsed", "directives", len(rows))
			if err := report.Write(cmd.OutOrStdout(), f, rows...); err != nil {
				return err
			}
			return parseErr
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(report.Table), "Output format: table, json or yaml")
	return cmd
}
