// Command lsonar drives the find/match/gsub operations of
// github.com/reloginn/lsonar from the shell; it is the one place in
// this module that owns flag parsing, logging and error
// pretty-printing.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reloginn/lsonar"
)

// addInitFlag registers the shared --init flag directly against a
// command's pflag.FlagSet, the same set cobra.Command.Flags() hands
// back, rather than going through cobra's thinner Flags*Var wrappers.
func addInitFlag(flags *pflag.FlagSet, init *int) {
	flags.IntVarP(init, "init", "i", 0, "0-based offset to start searching from")
}

var logger hclog.Logger

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "lsonar",
		Short:         "Lua 5.3 string pattern matching from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Warn
			if debug {
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:  "lsonar",
				Level: level,
			})
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newFindCommand(), newMatchCommand(), newGsubCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsonar:", err)
		os.Exit(1)
	}
}

func newFindCommand() *cobra.Command {
	var init int
	var plain bool

	c := &cobra.Command{
		Use:   "find <text> <pattern>",
		Short: "report the first match's 1-based offsets and captures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			logger.Debug("find", "pattern", pattern, "init", init, "plain", plain)

			start, end, captures, ok, err := lsonar.Find(text, pattern, init, plain)
			if err != nil {
				return errors.Wrap(err, "find")
			}
			if !ok {
				fmt.Println("no match")
				return nil
			}
			fmt.Printf("%d %d\n", start, end)
			for _, c := range captures {
				fmt.Println(c)
			}
			return nil
		},
	}
	addInitFlag(c.Flags(), &init)
	c.Flags().BoolVar(&plain, "plain", false, "treat pattern as a literal substring")
	return c
}

func newMatchCommand() *cobra.Command {
	var init int

	c := &cobra.Command{
		Use:   "match <text> <pattern>",
		Short: "report the first match's captures (or full match text)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern := args[0], args[1]
			logger.Debug("match", "pattern", pattern, "init", init)

			results, ok, err := lsonar.Match(text, pattern, init)
			if err != nil {
				return errors.Wrap(err, "match")
			}
			if !ok {
				fmt.Println("no match")
				return nil
			}
			for _, r := range results {
				fmt.Println(r)
			}
			return nil
		},
	}
	addInitFlag(c.Flags(), &init)
	return c
}

func newGsubCommand() *cobra.Command {
	var maxReplacements int

	c := &cobra.Command{
		Use:   "gsub <text> <pattern> <repl>",
		Short: "substitute matches using a %-template replacement",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, pattern, repl := args[0], args[1], args[2]
			logger.Debug("gsub", "pattern", pattern, "n", maxReplacements)

			output, count, err := lsonar.Gsub(text, pattern, lsonar.ReplString(repl), maxReplacements)
			if err != nil {
				return errors.Wrap(err, "gsub")
			}
			fmt.Println(output)
			fmt.Fprintf(os.Stderr, "%d replacement(s)\n", count)
			return nil
		},
	}
	c.Flags().IntVar(&maxReplacements, "n", -1, "maximum number of replacements (negative = unlimited)")
	return c
}

