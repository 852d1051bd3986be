package scan

import (
	"fmt"
	"strings"
)

// InvalidPatternError reports a malformed PAM pattern.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid PAM pattern %q: %s", e.Pattern, e.Reason)
}

// Pattern is a compiled fixed-length PAM matcher. Each position is
// either a literal base or a wildcard accepting any of the four bases.
type Pattern struct {
	raw      string
	literals []byte // 0 marks a wildcard position
}

// Compile builds a Pattern from a motif string over {A,C,G,T,N},
// where N matches any base. Lowercase input is accepted.
func Compile(motif string) (Pattern, error) {
	if len(motif) == 0 {
		return Pattern{}, &InvalidPatternError{Pattern: motif, Reason: "empty pattern"}
	}
	lits := make([]byte, len(motif))
	for i := 0; i < len(motif); i++ {
		c := motif[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T':
			lits[i] = c
		case 'N':
			lits[i] = 0
		default:
			return Pattern{}, &InvalidPatternError{
				Pattern: motif,
				Reason:  fmt.Sprintf("symbol %q at position %d", motif[i], i),
			}
		}
	}
	return Pattern{raw: strings.ToUpper(motif), literals: lits}, nil
}

// Len returns the pattern length.
func (p Pattern) Len() int {
	return len(p.literals)
}

// String returns the motif in canonical uppercase.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether window equals the pattern at every literal
// position. A window of any other length never matches.
func (p Pattern) Match(window string) bool {
	if len(window) != len(p.literals) {
		return false
	}
	for i, l := range p.literals {
		if l != 0 && window[i] != l {
			return false
		}
	}
	return true
}
