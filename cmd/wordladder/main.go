// Package main provides the CLI entrypoint for wordladder.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/corpus"
	"github.com/katalvlaran/wordladder/ladder"
)

const defaultDict = "/usr/share/dict/words"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "wordladder START_WORD END_WORD",
		Short: "Find the shortest path, changing one character at a time, between two words of equal length",
		Long: `wordladder finds the shortest transformation sequence between two words
of equal length. Each step changes exactly one character and every
intermediate word must exist in the dictionary.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.LoadFile(dictPath)
			if err != nil {
				return err
			}

			path, err := ladder.ShortestPath(c, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))

			return nil
		},
	}
	cmd.Flags().StringVar(&dictPath, "dict", defaultDict, "path to the word list (whitespace-separated words)")

	return cmd
}
