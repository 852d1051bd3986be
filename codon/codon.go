// Package codon encodes nucleotide triplets as small integers.
package codon

import "fmt"

const (
	// NCodon is the number of distinct codons over {A,C,G,T}.
	NCodon = 64
	// NWindow is the number of distinct two-codon window integers.
	NWindow = NCodon * NCodon
)

var (
	alphabet  = [...]byte{'A', 'C', 'G', 'T'}
	rAlphabet = map[byte]byte{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	// CodonNum is a map, codon string (capital letters) is the key,
	// the codon code in [0, 63] is the value.
	CodonNum = map[string]byte{}
	// NumCodon is mapping codes back to their codon strings.
	NumCodon = map[byte]string{}
)

func init() {
	// initialize CodonNum and NumCodon
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				s := string([]byte{a, b, c})
				n := rAlphabet[a]*16 + rAlphabet[b]*4 + rAlphabet[c]
				CodonNum[s] = n
				NumCodon[n] = s
			}
		}
	}
}

// InvalidCodonError reports a string which is not a codon over the
// {A,C,G,T} alphabet.
type InvalidCodonError struct {
	Codon string
}

func (e *InvalidCodonError) Error() string {
	return fmt.Sprintf("invalid codon %q", e.Codon)
}

// Encode returns the positional base-4 encoding of a codon: first
// symbol ×16, second ×4, third ×1, with A=0, C=1, G=2, T=3. Lowercase
// input is accepted. Error is returned if the string is not exactly
// three symbols or contains a symbol outside the alphabet.
func Encode(codon string) (byte, error) {
	if len(codon) != 3 {
		return 0, &InvalidCodonError{Codon: codon}
	}
	var n byte
	for i := 0; i < 3; i++ {
		c := codon[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		v, ok := rAlphabet[c]
		if !ok {
			return 0, &InvalidCodonError{Codon: codon}
		}
		n = n*4 + v
	}
	return n, nil
}

// WindowInt combines two adjacent codon codes into a single integer
// in [0, 4095].
func WindowInt(first, second byte) int {
	return int(first)*NCodon + int(second)
}
