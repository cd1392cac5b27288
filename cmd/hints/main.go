package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aglyzov/go-hints/internal/wordlist"
)

var (
	// BuildVersion is the hints build version
	BuildVersion = "dev"

	// BuildSHA is the commit hints was built from
	BuildSHA string
)

func main() {
	cmd := newRootCommand()
	cobra.CheckErr(cmd.Execute())
}

var rootExamples = `
  # Print the words of a word list starting with "ca" or "ja"
  hints --words words.txt ca ja

  # Read a compressed word list and add a few words inline
  hints -w words.txt.xz --word carpet,cactus car

  # Print at most 5 hints per query, word list from stdin
  cat words.txt | hints -w - -n 5 inter
`

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hints [flags] QUERY...",
		Short:         "Print the stored words starting with each query",
		Example:       strings.Trim(rootExamples, "\n"),
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: false,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Hints(cmd.OutOrStdout(), args)
		},
	}

	// flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (yaml, json or toml).")
	flags.StringSliceP("words", "w", nil, fmt.Sprintf("Word-list files, %q reads stdin; .gz and .xz are decompressed.", wordlist.Stdin))
	flags.StringSlice("word", nil, "Extra words given inline.")
	flags.IntP("limit", "n", 0, "Max hints printed per query (0 prints all).")
	flags.String("log-level", "info", "Log level (debug, info, warn, error).")

	rootCmd.AddCommand(buildDumpCmd())
	rootCmd.AddCommand(buildVersionCmd())

	return rootCmd
}

var dumpExamples = `
  # Show how the words of a word list are laid out in the tree
  hints dump --words words.txt
`

func buildDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dump",
		Short:   "Print the structure of the prefix tree",
		Example: strings.Trim(dumpExamples, "\n"),
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			app.Dump(cmd.OutOrStdout())
			return nil
		},
	}
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the hints version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "hints %s %s\n", BuildVersion, BuildSHA)
			return err
		},
	}
}
