package numtheory

import (
	"context"
	"fmt"

	"github.com/mathforge/mathforge/internal/providers/common"
	"github.com/mathforge/mathforge/internal/types"
)

// Provider exposes number theory operations as tools
type Provider struct {
	common.Ops
}

// NewProvider creates a number theory provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "numbers",
		Name:        "Number Theory Service",
		Description: "Number theory operations (primality, factorization, totient, CRT, sequences)",
		Category:    types.CategoryNumbers,
		Capabilities: []string{
			"primality",
			"factorization",
			"divisibility",
			"sequences",
		},
		Tools: []types.Tool{
			{
				ID:          "numbers.isPrime",
				Name:        "Is Prime",
				Description: "Check whether a number is prime",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number to test", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "numbers.primeFactors",
				Name:        "Prime Factors",
				Description: "Factorize into ascending prime factors with multiplicity",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number to factorize", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "numbers.gcd",
				Name:        "Greatest Common Divisor",
				Description: "Calculate GCD of two numbers",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "First number", Required: true},
					{Name: "b", Type: "number", Description: "Second number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.lcm",
				Name:        "Least Common Multiple",
				Description: "Calculate LCM of two numbers",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "First number", Required: true},
					{Name: "b", Type: "number", Description: "Second number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.sieve",
				Name:        "Sieve of Eratosthenes",
				Description: "List all primes up to a limit",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Upper bound (inclusive)", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "numbers.firstPrimes",
				Name:        "First Primes",
				Description: "Generate the first N primes",
				Parameters: []types.Parameter{
					{Name: "count", Type: "number", Description: "How many primes", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "numbers.totient",
				Name:        "Euler Totient",
				Description: "Count integers in [1,n] coprime to n",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Positive integer", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.crt",
				Name:        "Chinese Remainder Theorem",
				Description: "Solve simultaneous congruences with pairwise coprime moduli",
				Parameters: []types.Parameter{
					{Name: "remainders", Type: "array", Description: "Remainders", Required: true},
					{Name: "moduli", Type: "array", Description: "Pairwise coprime moduli", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.collatz",
				Name:        "Collatz Sequence",
				Description: "Generate the Collatz sequence down to 1",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Positive starting number", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "numbers.fibonacci",
				Name:        "Fibonacci",
				Description: "Calculate the nth Fibonacci number",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Index (0-92)", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.factorial",
				Name:        "Factorial",
				Description: "Calculate n! for 0 <= n <= 20",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.isPerfect",
				Name:        "Is Perfect",
				Description: "Check whether a number equals the sum of its proper divisors",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number to test", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "numbers.perfectUpTo",
				Name:        "Perfect Numbers",
				Description: "List perfect numbers up to a limit",
				Parameters: []types.Parameter{
					{Name: "limit", Type: "number", Description: "Upper bound (inclusive)", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "numbers.digitalRoot",
				Name:        "Digital Root",
				Description: "Reduce a number to a single digit by repeated digit sums",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.reverse",
				Name:        "Reverse Number",
				Description: "Reverse the decimal digits of a number",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "numbers.isPalindrome",
				Name:        "Is Palindrome Number",
				Description: "Check whether a number reads the same in both directions",
				Parameters: []types.Parameter{
					{Name: "n", Type: "number", Description: "Number to test", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute routes to the matching operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "numbers.isPrime":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": IsPrime(n)})

	case "numbers.primeFactors":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": PrimeFactors(n)})

	case "numbers.gcd":
		a, ok := common.GetInt(params, "a")
		if !ok {
			return common.Failure("a parameter required (integer)")
		}
		b, ok := common.GetInt(params, "b")
		if !ok {
			return common.Failure("b parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": GCD(a, b)})

	case "numbers.lcm":
		a, ok := common.GetInt(params, "a")
		if !ok {
			return common.Failure("a parameter required (integer)")
		}
		b, ok := common.GetInt(params, "b")
		if !ok {
			return common.Failure("b parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": LCM(a, b)})

	case "numbers.sieve":
		limit, ok := common.GetInt(params, "limit")
		if !ok {
			return common.Failure("limit parameter required (integer)")
		}
		if limit > maxSieveLimit {
			return common.Failure(fmt.Sprintf("limit must be <= %d", maxSieveLimit))
		}
		return common.Success(map[string]interface{}{"result": Sieve(limit)})

	case "numbers.firstPrimes":
		count, ok := common.GetInt(params, "count")
		if !ok || count < 0 {
			return common.Failure("count parameter required (non-negative integer)")
		}
		if count > maxFirstPrimes {
			return common.Failure(fmt.Sprintf("count must be <= %d", maxFirstPrimes))
		}
		return common.Success(map[string]interface{}{"result": FirstPrimes(int(count))})

	case "numbers.totient":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		result, err := Totient(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": result})

	case "numbers.crt":
		remainders, ok := common.GetInts(params, "remainders")
		if !ok {
			return common.Failure("remainders parameter required (integer array)")
		}
		moduli, ok := common.GetInts(params, "moduli")
		if !ok {
			return common.Failure("moduli parameter required (integer array)")
		}
		result, err := CRT(remainders, moduli)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": result})

	case "numbers.collatz":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		sequence, err := Collatz(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{
			"result": sequence,
			"length": len(sequence),
		})

	case "numbers.fibonacci":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		result, err := Fibonacci(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": result})

	case "numbers.factorial":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		result, err := Factorial(n)
		if err != nil {
			return common.FailureErr(err)
		}
		return common.Success(map[string]interface{}{"result": result})

	case "numbers.isPerfect":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": IsPerfect(n)})

	case "numbers.perfectUpTo":
		limit, ok := common.GetInt(params, "limit")
		if !ok {
			return common.Failure("limit parameter required (integer)")
		}
		if limit > maxPerfectLimit {
			return common.Failure(fmt.Sprintf("limit must be <= %d", maxPerfectLimit))
		}
		return common.Success(map[string]interface{}{"result": PerfectUpTo(limit)})

	case "numbers.digitalRoot":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": DigitalRoot(n)})

	case "numbers.reverse":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": ReverseNumber(n)})

	case "numbers.isPalindrome":
		n, ok := common.GetInt(params, "n")
		if !ok {
			return common.Failure("n parameter required (integer)")
		}
		return common.Success(map[string]interface{}{"result": IsNumberPalindrome(n)})

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// Bounds keep tool calls from allocating unbounded slices.
const (
	maxSieveLimit   = 10_000_000
	maxFirstPrimes  = 100_000
	maxPerfectLimit = 100_000
)
