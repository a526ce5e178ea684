package numtheory

import (
	"testing"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isPrimeByDefinition is the naive reference: n >= 2 with no divisor
// in [2, n).
func isPrimeByDefinition(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime(t *testing.T) {
	t.Run("agrees with definition up to 10000", func(t *testing.T) {
		for n := int64(0); n <= 10000; n++ {
			assert.Equal(t, isPrimeByDefinition(n), IsPrime(n), "n=%d", n)
		}
	})

	t.Run("negative numbers are not prime", func(t *testing.T) {
		assert.False(t, IsPrime(-7))
	})
}

func TestPrimeFactors(t *testing.T) {
	assert.Equal(t, []int64{2, 2, 3, 5}, PrimeFactors(60))
	assert.Equal(t, []int64{2, 2, 2}, PrimeFactors(8))
	assert.Equal(t, []int64{97}, PrimeFactors(97))
	assert.Empty(t, PrimeFactors(1))
	assert.Empty(t, PrimeFactors(0))
	assert.Empty(t, PrimeFactors(-12))

	t.Run("product of factors recovers input", func(t *testing.T) {
		for n := int64(2); n <= 500; n++ {
			product := int64(1)
			for _, f := range PrimeFactors(n) {
				assert.True(t, IsPrime(f), "factor %d of %d", f, n)
				product *= f
			}
			assert.Equal(t, n, product)
		}
	})
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, int64(6), GCD(48, 18))
	assert.Equal(t, int64(6), GCD(-48, 18))
	assert.Equal(t, int64(5), GCD(0, 5))
	assert.Equal(t, int64(36), LCM(12, 18))
	assert.Equal(t, int64(0), LCM(0, 7))
	assert.Equal(t, int64(0), LCM(7, 0))

	t.Run("gcd times lcm equals product", func(t *testing.T) {
		pairs := [][2]int64{{4, 6}, {21, 6}, {13, 17}, {-12, 18}, {100, 75}, {1, 999}}
		for _, pair := range pairs {
			a, b := pair[0], pair[1]
			product := a * b
			if product < 0 {
				product = -product
			}
			assert.Equal(t, product, GCD(a, b)*LCM(a, b), "a=%d b=%d", a, b)
		}
	})
}

func TestSieve(t *testing.T) {
	t.Run("matches trial division filter", func(t *testing.T) {
		var expected []int64
		for n := int64(2); n <= 1000; n++ {
			if IsPrime(n) {
				expected = append(expected, n)
			}
		}
		assert.Equal(t, expected, Sieve(1000))
	})

	assert.Equal(t, []int64{2, 3, 5, 7}, Sieve(10))
	assert.Equal(t, []int64{2}, Sieve(2))
	assert.Empty(t, Sieve(1))
	assert.Empty(t, Sieve(-5))
}

func TestFirstPrimes(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11}, FirstPrimes(5))
	assert.Empty(t, FirstPrimes(0))
}

func TestTotient(t *testing.T) {
	cases := map[int64]int64{
		1:  1,
		2:  1,
		9:  6,
		10: 4,
		12: 4,
		13: 12,
		36: 12,
	}
	for n, want := range cases {
		got, err := Totient(n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	t.Run("rejects non-positive input", func(t *testing.T) {
		_, err := Totient(0)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		_, err = Totient(-5)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("counts coprimes directly", func(t *testing.T) {
		for n := int64(1); n <= 100; n++ {
			count := int64(0)
			for k := int64(1); k <= n; k++ {
				if GCD(k, n) == 1 {
					count++
				}
			}
			got, err := Totient(n)
			require.NoError(t, err)
			assert.Equal(t, count, got, "n=%d", n)
		}
	})
}

func TestCRT(t *testing.T) {
	t.Run("classic system", func(t *testing.T) {
		// x ≡ 2 (mod 3), x ≡ 3 (mod 5), x ≡ 2 (mod 7)
		got, err := CRT([]int64{2, 3, 2}, []int64{3, 5, 7})
		require.NoError(t, err)
		assert.Equal(t, int64(23), got)
	})

	t.Run("solution satisfies every congruence", func(t *testing.T) {
		remainders := []int64{1, 4, 6}
		moduli := []int64{5, 7, 11}
		got, err := CRT(remainders, moduli)
		require.NoError(t, err)
		for i := range moduli {
			assert.Equal(t, remainders[i], got%moduli[i])
		}
	})

	t.Run("single congruence", func(t *testing.T) {
		got, err := CRT([]int64{3}, []int64{7})
		require.NoError(t, err)
		assert.Equal(t, int64(3), got)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := CRT([]int64{1, 2}, []int64{3})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("non-positive modulus", func(t *testing.T) {
		// A leading zero modulus must error, not divide by zero.
		_, err := CRT([]int64{1, 2}, []int64{0, 3})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)

		_, err = CRT([]int64{1, 2}, []int64{3, 0})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)

		_, err = CRT([]int64{1}, []int64{-5})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})
}

func TestCollatz(t *testing.T) {
	got, err := Collatz(6)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 3, 10, 5, 16, 8, 4, 2, 1}, got)

	got, err = Collatz(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got)

	_, err = Collatz(0)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = Collatz(-3)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestFibonacci(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, expected := range want {
		got, err := Fibonacci(int64(n))
		require.NoError(t, err)
		assert.Equal(t, expected, got, "n=%d", n)
	}

	got, err := Fibonacci(92)
	require.NoError(t, err)
	assert.Equal(t, int64(7540113804746346429), got)

	_, err = Fibonacci(-1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = Fibonacci(93)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestFactorial(t *testing.T) {
	got, err := Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, int64(120), got)

	got, err = Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, int64(2432902008176640000), got)

	_, err = Factorial(-1)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = Factorial(21)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestIsPerfect(t *testing.T) {
	assert.True(t, IsPerfect(6))
	assert.True(t, IsPerfect(28))
	assert.True(t, IsPerfect(496))
	assert.False(t, IsPerfect(1))
	assert.False(t, IsPerfect(12))
	assert.False(t, IsPerfect(-6))

	assert.Equal(t, []int64{6, 28, 496, 8128}, PerfectUpTo(10000))
	assert.Empty(t, PerfectUpTo(5))
}

func TestDigitalRoot(t *testing.T) {
	assert.Equal(t, int64(0), DigitalRoot(0))
	assert.Equal(t, int64(9), DigitalRoot(9))
	assert.Equal(t, int64(6), DigitalRoot(123))
	assert.Equal(t, int64(9), DigitalRoot(99999))
	assert.Equal(t, int64(6), DigitalRoot(-123))
}

func TestReverseNumber(t *testing.T) {
	assert.Equal(t, int64(321), ReverseNumber(123))
	assert.Equal(t, int64(-321), ReverseNumber(-123))
	assert.Equal(t, int64(1), ReverseNumber(100))
	assert.Equal(t, int64(0), ReverseNumber(0))
}

func TestIsNumberPalindrome(t *testing.T) {
	assert.True(t, IsNumberPalindrome(121))
	assert.True(t, IsNumberPalindrome(7))
	assert.True(t, IsNumberPalindrome(0))
	assert.False(t, IsNumberPalindrome(123))
	assert.False(t, IsNumberPalindrome(-121))
}
