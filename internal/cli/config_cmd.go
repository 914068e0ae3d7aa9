package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/fileutil"
	"github.com/seabearDEV/minigrep-go/internal/format"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printConfig(cmd.OutOrStdout(), config.Load())
			return nil
		},
	}

	// config set
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return config.ValidConfigKeys, cobra.ShellCompDirectiveNoFileComp
			case 1:
				if args[0] == "theme" {
					return config.ValidThemes, cobra.ShellCompDirectiveNoFileComp
				}
				return []string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetSetting(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Success(fmt.Sprintf("Config '%s' set to '%s'.", args[0], args[1])))
			return nil
		},
	}

	// config get
	getCmd := &cobra.Command{
		Use:       "get [key]",
		Short:     "Get a configuration value",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: config.ValidConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printConfig(cmd.OutOrStdout(), config.Load())
				return nil
			}
			val := config.GetSetting(args[0])
			if val == nil {
				return fmt.Errorf("unknown configuration key: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", val)
			return nil
		},
	}

	// config info
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show version and storage information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version: %s\n", Version)
			fmt.Fprintf(out, "Commit: %s\n", Commit)
			fmt.Fprintf(out, "Go: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "Data directory: %s\n", fileutil.GetDataDirectory())
			fmt.Fprintf(out, "Config file: %s\n", fileutil.GetConfigFilePath())
			return nil
		},
	}

	// config examples
	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		Run: func(cmd *cobra.Command, args []string) {
			examples := []string{
				"# Search a file, ignoring case",
				"minigrep to poem.txt",
				"",
				"# Match case exactly",
				"minigrep -c To -f poem.txt",
				"",
				"# Search standard input",
				"cat poem.txt | minigrep nobody",
				"",
				"# Only print the number of occurrences",
				"minigrep --count frog poem.txt",
				"",
				"# Machine-readable output",
				"minigrep --json bog poem.txt",
				"",
				"# Make searches case-sensitive by default",
				"minigrep config set case_sensitive true",
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(examples, "\n"))
		},
	}

	// config completions
	completionsCmd := &cobra.Command{
		Use:       "completions [bash|zsh|fish|powershell]",
		Short:     "Generate shell completions",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCmd := cmd.Root()
			if len(args) == 0 {
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			}
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported shell: %s (use bash, zsh, fish, or powershell)", args[0])
			}
		},
	}

	configCmd.AddCommand(setCmd, getCmd, infoCmd, examplesCmd, completionsCmd)
	return configCmd
}

func printConfig(w io.Writer, cfg config.Config) {
	fmt.Fprintf(w, "colors: %v\n", cfg.Colors)
	fmt.Fprintf(w, "theme: %s\n", cfg.Theme)
	fmt.Fprintf(w, "case_sensitive: %v\n", cfg.CaseSensitive)
	fmt.Fprintf(w, "unquote: %v\n", cfg.Unquote)
}
