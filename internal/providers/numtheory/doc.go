// Package numtheory implements classic integer algorithms: trial
// division primality, prime factorization, Euclidean gcd/lcm, the
// sieve of Eratosthenes, Euler's totient, the Chinese Remainder
// Theorem, and a few teaching-oriented sequences (Collatz,
// Fibonacci, perfect numbers).
//
// Every function is pure and safe for concurrent use. Exported
// functions form the library surface; Provider wraps them as tools.
package numtheory
