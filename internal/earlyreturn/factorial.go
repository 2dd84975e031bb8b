package earlyreturn

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// MaxFactorialInput is the largest n for which n! fits in a 64-bit int.
const MaxFactorialInput = 20

var (
	// ErrNegativeInput is returned by FactorialStrict for n < 0.
	ErrNegativeInput = errors.New("factorial undefined for negative input")
	// ErrOverflow is returned by FactorialStrict when n! exceeds math.MaxInt.
	ErrOverflow = errors.New("factorial overflows int")
)

// Factorial returns n! for n > 0 and 1 for every n <= 0.
//
// The product is not checked for overflow: inputs above MaxFactorialInput
// wrap. Callers that cannot bound n should use FactorialStrict or
// FactorialBig.
func Factorial(n int) int {
	if n <= 0 {
		return 1
	}

	result := 1
	for i := 1; i <= n; i++ {
		result *= i
	}
	return result
}

// FactorialStrict is Factorial without the clamp: negative input and
// overflow are reported as errors instead of producing a value.
func FactorialStrict(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrNegativeInput)
	}
	if n == 0 {
		return 1, nil
	}

	result := 1
	for i := 2; i <= n; i++ {
		if result > math.MaxInt/i {
			return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
		}
		result *= i
	}
	return result, nil
}

// FactorialBig computes n! with arbitrary precision, keeping the
// clamp-to-one convention for n <= 0.
func FactorialBig(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}
