// Package bio provides nucleotide sequence types and validation.
package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InvalidSymbolError reports a symbol outside the {A,C,G,T} alphabet
// together with its zero-based position in the sequence.
type InvalidSymbolError struct {
	Symbol byte
	Pos    int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Pos)
}

// Normalize converts a raw nucleotide string to the canonical
// uppercase form used everywhere else.
func Normalize(seq string) string {
	return strings.ToUpper(seq)
}

// Validate checks that every symbol of a normalized sequence belongs
// to the {A,C,G,T} alphabet. The first violation is returned as
// *InvalidSymbolError. This is a whole-sequence precondition: it runs
// once before scanning, never per window.
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return &InvalidSymbolError{Symbol: seq[i], Pos: i}
		}
	}
	return nil
}

// Sequence is a type which is intended for storing a nucleotide
// sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences, e.g. the contents of a FASTA
// file.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	return s[:len(s)-1]
}
