// Package scan discovers PAM-anchored candidate target sites in a
// nucleotide sequence.
package scan

import (
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/bio"
)

// ProtospacerLen is the fixed length of the region immediately
// upstream of a PAM match which becomes the scored protospacer.
const ProtospacerLen = 20

// Candidate is a PAM-anchored target site.
type Candidate struct {
	// Protospacer is the 20-symbol region preceding the PAM match.
	Protospacer string
	// PAM is the literal bases matched by the pattern.
	PAM string
	// Pos is the zero-based offset of the protospacer's first
	// symbol within the source sequence.
	Pos int
	// Source names the sequence the site was drawn from.
	Source string
}

// Scanner walks a validated sequence left to right and yields
// candidates one at a time. A Scanner is finite and not restartable.
type Scanner struct {
	seq    string
	source string
	pat    Pattern
	off    int
}

// NewScanner normalizes and validates seq once, then returns a
// Scanner over it. A sequence with a symbol outside {A,C,G,T} is
// rejected before any scanning happens.
func NewScanner(seq, source string, pat Pattern) (*Scanner, error) {
	seq = bio.Normalize(seq)
	if err := bio.Validate(seq); err != nil {
		return nil, err
	}
	return &Scanner{seq: seq, source: source, pat: pat}, nil
}

// Next returns the next candidate site in scan order. Matches may
// overlap; the scan never skips ahead past a match. A PAM match
// starting closer than ProtospacerLen to the sequence start has no
// room for a protospacer and yields nothing.
func (s *Scanner) Next() (Candidate, bool) {
	n := s.pat.Len()
	for ; s.off+n <= len(s.seq); s.off++ {
		if !s.pat.Match(s.seq[s.off : s.off+n]) {
			continue
		}
		if s.off < ProtospacerLen {
			continue
		}
		c := Candidate{
			Protospacer: s.seq[s.off-ProtospacerLen : s.off],
			PAM:         s.seq[s.off : s.off+n],
			Pos:         s.off - ProtospacerLen,
			Source:      s.source,
		}
		s.off++
		return c, true
	}
	return Candidate{}, false
}

// All drains the scanner into a slice.
func (s *Scanner) All() (cands []Candidate) {
	for {
		c, ok := s.Next()
		if !ok {
			return
		}
		cands = append(cands, c)
	}
}

// Discover compiles motif, validates seq and returns every candidate
// site in scan order. Zero candidates is an empty result, not an
// error; whether that deserves reporting is the caller's concern.
func Discover(seq, motif, source string) ([]Candidate, error) {
	pat, err := Compile(motif)
	if err != nil {
		return nil, err
	}
	s, err := NewScanner(seq, source, pat)
	if err != nil {
		return nil, err
	}
	return s.All(), nil
}
