package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/format"
	"github.com/seabearDEV/minigrep-go/internal/input"
	"github.com/seabearDEV/minigrep-go/internal/search"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Debug enables debug output when true.
	Debug bool
)

// searchOptions is the resolved configuration for one search run.
type searchOptions struct {
	Query         string
	Source        input.Source
	CaseSensitive bool
	JSON          bool
	CountOnly     bool
}

// NewRootCmd creates the root cobra command. The root command itself runs
// the search; settings live under the config subcommand.
func NewRootCmd() *cobra.Command {
	var (
		caseSensitive bool
		filePath      string
		jsonOut       bool
		noColor       bool
		countOnly     bool
	)

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> [file]",
		Short: "Print the lines of a file or stdin that contain a query",
		Long: `Print every line containing <query>, with each occurrence highlighted,
followed by the total number of occurrences. Input is read from [file],
--file, or standard input. Matching is case-insensitive unless -c is given.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing query")
			}
			if len(args) > 2 || (len(args) == 2 && filePath != "") {
				return errors.New("too many arguments")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			if len(args) == 1 && filePath == "" {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), debugEnabled())
			cfg := config.Load()
			logger.Debug().Interface("config", cfg).Msg("config loaded")
			format.SetColorsEnabled(cfg.Colors && os.Getenv("NO_COLOR") == "")
			format.SetTheme(cfg.Theme)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				format.SetColorsEnabled(false)
			}
			cfg := config.Load()

			opts := searchOptions{
				Query:         args[0],
				Source:        input.Source{Path: filePath},
				CaseSensitive: cfg.CaseSensitive,
				JSON:          jsonOut,
				CountOnly:     countOnly,
			}
			if len(args) == 2 {
				opts.Source.Path = args[1]
			}
			if cmd.Flags().Changed("case-sensitive") {
				opts.CaseSensitive = caseSensitive
			}
			if cfg.Unquote {
				opts.Query = unquote(opts.Query)
			}
			if opts.Query == "" {
				return errors.New("query must not be empty")
			}
			if strings.ContainsRune(opts.Query, '\n') {
				return errors.New("query must not contain a newline")
			}

			return runSearch(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("minigrep version %s (commit: %s)\n", Version, Commit))

	rootCmd.Flags().BoolVarP(&caseSensitive, "case-sensitive", "c", false, "Match case exactly")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Read input from a file instead of stdin")
	rootCmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "Output as JSON")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&countOnly, "count", false, "Only print the number of occurrences")
	rootCmd.MarkFlagsMutuallyExclusive("json", "count")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// runSearch reads the source, runs the search and writes the results.
func runSearch(cmd *cobra.Command, opts searchOptions) error {
	text, err := opts.Source.Read(cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug().
		Str("source", opts.Source.String()).
		Int("bytes", len(text)).
		Str("query", opts.Query).
		Bool("case_sensitive", opts.CaseSensitive).
		Msg("input loaded")

	matches := search.Search(opts.Query, text, opts.CaseSensitive)
	count := search.Count(opts.Query, text, opts.CaseSensitive)
	logger.Debug().Int("lines", len(matches)).Int("occurrences", count).Msg("search finished")

	out := cmd.OutOrStdout()
	switch {
	case opts.JSON:
		fmt.Fprintln(out, format.ResultsJSON(matches, count))
	case opts.CountOnly:
		fmt.Fprintln(out, count)
	default:
		fmt.Fprint(out, format.Results(opts.Query, matches, count))
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, format.Error(err.Error()))
		os.Exit(1)
	}
}

// unquote strips one pair of matching surrounding quote characters.
func unquote(query string) string {
	if len(query) < 2 {
		return query
	}
	first, last := query[0], query[len(query)-1]
	if first == last && (first == '"' || first == '\'') {
		return query[1 : len(query)-1]
	}
	return query
}
