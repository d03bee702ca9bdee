package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjaus/printfmt"
	"github.com/bjaus/printfmt/internal/logging"
)

type rootOptions struct {
	argsFile string
	raw      bool
	escapes  bool
	newline  bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "printfmt [flags] FORMAT [ARG...]",
		Short: "Format arguments with a C99 printf template",
		Long: `printfmt renders its arguments through a printf template.

Arguments are typed the way YAML types plain scalars: 42 is an integer,
3.5 a float, true a bool, and anything else a string. Quote an argument
('007') to force a string, or tag it (!char A) to pass a character.
Flags must come before FORMAT so that negative numbers are not read as flags.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args[0], args[1:])
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log interpreted directives to stderr")
	cmd.Flags().StringVarP(&opts.argsFile, "args-file", "f", "", "YAML file with a sequence of arguments, appended after ARGs")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Pass ARGs as strings without typing them")
	cmd.PersistentFlags().BoolVarP(&opts.escapes, "escapes", "e", false, `Interpret backslash escapes such as \n and \t in FORMAT`)
	cmd.Flags().BoolVarP(&opts.newline, "newline", "n", false, "Append a newline to the output")

	cmd.AddCommand(newExplainCmd(&opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runFormat(cmd *cobra.Command, opts rootOptions, template string, rawArgs []string) error {
	logger := newLogger(cmd, opts.verbose)

	if opts.escapes {
		unquoted, err := unescape(template)
		if err != nil {
			return err
		}
		template = unquoted
	}

	args, err := parseArgs(rawArgs, opts.raw)
	if err != nil {
		return err
	}
	if opts.argsFile != "" {
		fileArgs, err := readArgsFile(opts.argsFile)
		if err != nil {
			return err
		}
		args = append(args, fileArgs...)
	}
	logger.Debug("arguments resolved", "count", len(args))

	engine := printfmt.New(
		printfmt.WithErrorHandler(printfmt.Return),
		printfmt.WithLogger(logger),
	)
	out := cmd.OutOrStdout()
	if err := engine.Fprintf(out, template, args...); err != nil {
		return err
	}
	if opts.newline {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

// unescape interprets Go string escapes in s.
func unescape(s string) (string, error) {
	out, err := strconv.Unquote(`"` + escapeQuotes(s) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape in format: %w", err)
	}
	return out, nil
}

// escapeQuotes protects bare double quotes from strconv.Unquote.
func escapeQuotes(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			b = append(b, s[i], s[i+1])
			i++
		case s[i] == '"':
			b = append(b, '\\', '"')
		default:
			b = append(b, s[i])
		}
	}
	return string(b)
}
