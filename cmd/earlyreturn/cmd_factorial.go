package main

import (
	"fmt"
	"strconv"

	"earlyreturn/internal/earlyreturn"
	"earlyreturn/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	factorialStrict bool
	factorialBig    bool
)

// factorialCmd computes n!
var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Print n factorial",
	Long: `Prints n! for n > 0 and 1 for any n <= 0.

Inputs above limits.max_factorial_input are rejected because the result would
overflow. Use --strict to report negative input and overflow as errors, or
--big for arbitrary precision. Pass negative numbers after "--":

  earlyreturn factorial 8
  earlyreturn factorial --strict -- -1
  earlyreturn factorial --big 30`,
	Args: cobra.ExactArgs(1),
	RunE: runFactorial,
}

func runFactorial(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid factorial input %q: %w", args[0], err)
	}

	log := logger.For(logging.CategoryFactorial).With(
		zap.Int("n", n),
		zap.Bool("strict", factorialStrict),
		zap.Bool("big", factorialBig))

	var result string
	switch {
	case factorialBig:
		result = earlyreturn.FactorialBig(n).String()
	case factorialStrict:
		v, err := earlyreturn.FactorialStrict(n)
		if err != nil {
			log.Debug("strict factorial rejected input", zap.Error(err))
			return err
		}
		result = strconv.Itoa(v)
	default:
		if err := cfg.CheckFactorialInput(n); err != nil {
			log.Debug("factorial input over limit", zap.Error(err))
			return err
		}
		result = strconv.Itoa(earlyreturn.Factorial(n))
	}

	log.Debug("computed factorial", zap.String("result", result))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
