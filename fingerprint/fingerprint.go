// Package fingerprint computes the lambda score of a factor pair.
package fingerprint

import "math"

// Lambda computes (p−q)² / (N·ln(a)) where N = p·q and a = (p+q)/2.
// Degenerate inputs (N = 0 or a ≤ 1) score exactly 0.0 instead of
// returning an error. The score is symmetric in p and q.
func Lambda(p, q int) float64 {
	n := float64(p) * float64(q)
	a := (float64(p) + float64(q)) / 2
	if n == 0 || a <= 1 {
		return 0
	}
	d := float64(p - q)
	return d * d / (n * math.Log(a))
}
