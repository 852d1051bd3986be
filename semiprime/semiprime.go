// Package semiprime decomposes small integers into two prime factors.
package semiprime

import "fmt"

// NotSemiprimeError reports an integer which is not a product of
// exactly two primes.
type NotSemiprimeError struct {
	N int
}

func (e *NotSemiprimeError) Error() string {
	return fmt.Sprintf("%d is not a semiprime", e.N)
}

// IsPrime is a deterministic trial-division primality test checking
// divisors of the form 6k±1. Exact over the whole operating range.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Factor returns the unique pair (p, q), p ≤ q, of primes with
// p·q = n. The smallest divisor wins, so the result is deterministic.
// Error is returned for n ≤ 1 and for any n with no two-prime
// factorization.
func Factor(n int) (p, q int, err error) {
	if n <= 1 {
		return 0, 0, &NotSemiprimeError{N: n}
	}
	for i := 2; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		q = n / i
		if IsPrime(i) && IsPrime(q) {
			return i, q, nil
		}
		// The smallest divisor above 1 is always prime, so a
		// composite cofactor rules out any two-prime split.
		break
	}
	return 0, 0, &NotSemiprimeError{N: n}
}
