// Package score turns candidate target sites into lambda-scored
// results by windowed codon encoding and semiprime decomposition.
package score

import (
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/bio"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/codon"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/fingerprint"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/scan"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/semiprime"
)

// WindowSize is two adjacent codons.
const WindowSize = 6

// WindowRecord describes one window whose integer decomposed into two
// primes.
type WindowRecord struct {
	WindowInt int
	P, Q      int
	// AdditiveComplexity is the arithmetic mean of the factors.
	AdditiveComplexity float64
	// MultiplicativeResistance is the product of the factors.
	MultiplicativeResistance float64
}

// Scored is a candidate site with its total lambda score and the
// records of every window that decomposed, in scan order. Immutable
// once produced.
type Scored struct {
	Candidate scan.Candidate
	Total     float64
	Records   []WindowRecord
}

// ScoreSequence scores a combined protospacer+PAM string against pat.
// The combined sequence must be at least ProtospacerLen+pat.Len()
// symbols and its PAM portion must still match pat; otherwise the
// result is a zero score with no records, never an error, so one bad
// candidate cannot abort a batch.
//
// Windows start at offsets 0, step, 2·step, … and must fit entirely
// inside the protospacer. A window whose integer has no two-prime
// decomposition contributes nothing; most windows are like that.
func ScoreSequence(combined string, pat scan.Pattern, step int) (total float64, recs []WindowRecord) {
	if step < 1 {
		step = 1
	}
	combined = bio.Normalize(combined)
	if len(combined) < scan.ProtospacerLen+pat.Len() {
		return 0, nil
	}
	if !pat.Match(combined[scan.ProtospacerLen : scan.ProtospacerLen+pat.Len()]) {
		return 0, nil
	}
	for off := 0; off+WindowSize <= scan.ProtospacerLen; off += step {
		first, err := codon.Encode(combined[off : off+3])
		if err != nil {
			continue
		}
		second, err := codon.Encode(combined[off+3 : off+WindowSize])
		if err != nil {
			continue
		}
		w := codon.WindowInt(first, second)
		p, q, err := semiprime.Factor(w)
		if err != nil {
			continue
		}
		total += fingerprint.Lambda(p, q)
		recs = append(recs, WindowRecord{
			WindowInt:                w,
			P:                        p,
			Q:                        q,
			AdditiveComplexity:       float64(p+q) / 2,
			MultiplicativeResistance: float64(p * q),
		})
	}
	return total, recs
}

// ScoreCandidate scores one discovered candidate site.
func ScoreCandidate(c scan.Candidate, pat scan.Pattern, step int) Scored {
	total, recs := ScoreSequence(c.Protospacer+c.PAM, pat, step)
	return Scored{Candidate: c, Total: total, Records: recs}
}
