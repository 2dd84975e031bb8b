package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"earlyreturn/internal/earlyreturn"
	"earlyreturn/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reverseGraphemes bool

// reverseCmd reverses its arguments
var reverseCmd = &cobra.Command{
	Use:   "reverse [text...]",
	Short: "Print the text reversed",
	Long: `Joins the arguments with single spaces and prints them reversed.

With no arguments an empty line is printed. By default the text is reversed
by Unicode code point; --graphemes keeps combining marks and emoji sequences
attached to their base character.

Example:
  earlyreturn reverse This text is reversed now.`,
	Args: cobra.ArbitraryArgs,
	RunE: runReverse,
}

func runReverse(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	reversed := earlyreturn.Reverse(text)
	if reverseGraphemes {
		reversed = earlyreturn.ReverseGraphemes(text)
	}

	logger.For(logging.CategoryReverse).Debug("reversed text",
		zap.Int("bytes", len(text)),
		zap.Int("runes", utf8.RuneCountInString(text)),
		zap.Bool("graphemes", reverseGraphemes))

	_, err := fmt.Fprintln(cmd.OutOrStdout(), reversed)
	return err
}
