// Package earlyreturn holds the string reversal and factorial routines used
// by the earlyreturn CLI. Each routine checks its trivial case first and
// returns immediately, keeping the main computation unindented.
package earlyreturn
