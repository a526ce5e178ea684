package numtheory

import (
	"fmt"
	"strconv"

	"github.com/mathforge/mathforge/internal/providers/common"
)

// IsPrime reports whether n is prime. Trial division up to √n,
// skipping even divisors after 2.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factorization of n in ascending
// order with multiplicity. Empty for n <= 1.
func PrimeFactors(n int64) []int64 {
	if n <= 1 {
		return nil
	}

	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// GCD computes the greatest common divisor using the Euclidean
// algorithm. Always non-negative.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM computes the least common multiple. Zero if either input is
// zero.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// Sieve returns all primes <= limit in ascending order using the
// sieve of Eratosthenes. Empty for limit < 2.
func Sieve(limit int64) []int64 {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit+1)
	for i := int64(2); i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	var primes []int64
	for i := int64(2); i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// FirstPrimes returns the first count primes.
func FirstPrimes(count int) []int64 {
	primes := make([]int64, 0, count)
	for candidate := int64(2); len(primes) < count; candidate++ {
		if IsPrime(candidate) {
			primes = append(primes, candidate)
		}
	}
	return primes
}

// Totient computes Euler's totient φ(n), the count of integers in
// [1,n] coprime to n.
func Totient(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: totient undefined for n <= 0", common.ErrInvalidArgument)
	}

	result := n
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		for n%p == 0 {
			n /= p
		}
		result -= result / p
	}
	if n > 1 {
		result -= result / n
	}
	return result, nil
}

// CRT solves the system x ≡ remainders[i] (mod moduli[i]) and
// returns the unique solution modulo the product of the moduli.
// The moduli are assumed pairwise coprime; this is not validated,
// and behavior on non-coprime moduli is undefined. An error is
// returned when the sequences differ in length, a modulus is not
// positive, or a modular inverse happens not to exist.
func CRT(remainders, moduli []int64) (int64, error) {
	if len(remainders) != len(moduli) {
		return 0, fmt.Errorf("%w: remainders and moduli must have same length", common.ErrInvalidArgument)
	}

	prod := int64(1)
	for _, m := range moduli {
		if m <= 0 {
			return 0, fmt.Errorf("%w: moduli must be positive, got %d", common.ErrInvalidArgument, m)
		}
		prod *= m
	}

	total := int64(0)
	for i, r := range remainders {
		p := prod / moduli[i]
		inv, err := modInverse(p, moduli[i])
		if err != nil {
			return 0, err
		}
		total = (total + r%prod*p%prod*inv) % prod
	}

	return ((total % prod) + prod) % prod, nil
}

// modInverse computes the inverse of a modulo m via the extended
// Euclidean algorithm.
func modInverse(a, m int64) (int64, error) {
	g, x, _ := extendedGCD(a%m, m)
	if g != 1 && g != -1 {
		return 0, fmt.Errorf("%w: no modular inverse of %d mod %d", common.ErrInvalidArgument, a, m)
	}
	return ((x % m) + m) % m, nil
}

func extendedGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// Collatz produces the Collatz sequence from n down to 1 inclusive.
func Collatz(n int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: starting number must be positive", common.ErrInvalidArgument)
	}

	sequence := []int64{n}
	for n != 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		sequence = append(sequence, n)
	}
	return sequence, nil
}

// maxFibonacci is the largest index whose Fibonacci number fits in
// an int64.
const maxFibonacci = 92

// Fibonacci computes the nth Fibonacci number iteratively.
func Fibonacci(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: fibonacci undefined for negative n", common.ErrInvalidArgument)
	}
	if n > maxFibonacci {
		return 0, fmt.Errorf("%w: fibonacci(%d) overflows int64", common.ErrInvalidArgument, n)
	}
	if n <= 1 {
		return n, nil
	}

	a, b := int64(0), int64(1)
	for i := int64(2); i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// maxFactorial is the largest n whose factorial fits in an int64.
const maxFactorial = 20

// Factorial computes n! for 0 <= n <= 20.
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial undefined for negative n", common.ErrInvalidArgument)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("%w: factorial(%d) overflows int64", common.ErrInvalidArgument, n)
	}

	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n int64) bool {
	if n <= 1 {
		return false
	}

	sum := int64(1)
	for i := int64(2); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if other := n / i; other != i {
			sum += other
		}
	}
	return sum == n
}

// PerfectUpTo returns all perfect numbers <= limit.
func PerfectUpTo(limit int64) []int64 {
	var perfect []int64
	for n := int64(2); n <= limit; n++ {
		if IsPerfect(n) {
			perfect = append(perfect, n)
		}
	}
	return perfect
}

// DigitalRoot reduces |n| to a single digit by repeated digit sums.
func DigitalRoot(n int64) int64 {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		sum := int64(0)
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// ReverseNumber reverses the decimal digits of n, preserving sign.
func ReverseNumber(n int64) int64 {
	sign := int64(1)
	if n < 0 {
		sign = -1
		n = -n
	}

	reversed := int64(0)
	for n > 0 {
		reversed = reversed*10 + n%10
		n /= 10
	}
	return sign * reversed
}

// IsNumberPalindrome reports whether the decimal representation of n
// reads the same forwards and backwards. Negative numbers are never
// palindromes because of the sign.
func IsNumberPalindrome(n int64) bool {
	s := strconv.FormatInt(n, 10)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
