package earlyreturn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: -100, want: 1},
		{n: -1, want: 1},
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 2, want: 2},
		{n: 5, want: 120},
		{n: 8, want: 40320},
		{n: 10, want: 3628800},
		{n: 20, want: 2432902008176640000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Factorial(tt.n), "Factorial(%d)", tt.n)
	}
}

func TestFactorialStrict(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		got, err := FactorialStrict(0)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("matches Factorial in range", func(t *testing.T) {
		for n := 1; n <= MaxFactorialInput; n++ {
			got, err := FactorialStrict(n)
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, Factorial(n), got, "n=%d", n)
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, err := FactorialStrict(-3)
		require.ErrorIs(t, err, ErrNegativeInput)
		assert.Contains(t, err.Error(), "factorial(-3)")
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := FactorialStrict(MaxFactorialInput + 1)
		require.ErrorIs(t, err, ErrOverflow)

		_, err = FactorialStrict(1000)
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestFactorialBig(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: -5, want: "1"},
		{n: 0, want: "1"},
		{n: 1, want: "1"},
		{n: 8, want: "40320"},
		{n: 20, want: "2432902008176640000"},
		{n: 25, want: "15511210043330985984000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FactorialBig(tt.n).String(), "FactorialBig(%d)", tt.n)
	}
}
