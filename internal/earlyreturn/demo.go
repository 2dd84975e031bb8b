package earlyreturn

import (
	"fmt"
	"io"
	"strconv"
)

// Demo literals printed by the CLI when run without arguments.
const (
	DemoText           = "This text is reversed now."
	DemoFactorialInput = 8
)

// Demo runs both routines on fixed inputs and prints one result per line.
type Demo struct {
	Text           string
	FactorialInput int
	// Graphemes selects ReverseGraphemes over Reverse.
	Graphemes bool
}

// DefaultDemo returns the demo with its built-in literals.
func DefaultDemo() Demo {
	return Demo{
		Text:           DemoText,
		FactorialInput: DemoFactorialInput,
	}
}

// Lines returns the demo output without writing it.
func (d Demo) Lines() []string {
	reversed := Reverse(d.Text)
	if d.Graphemes {
		reversed = ReverseGraphemes(d.Text)
	}
	return []string{
		reversed,
		strconv.Itoa(Factorial(d.FactorialInput)),
	}
}

// Run writes the demo output to w.
func (d Demo) Run(w io.Writer) error {
	for _, line := range d.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write demo output: %w", err)
		}
	}
	return nil
}
