package score

import (
	"math"
	"strings"
	"testing"

	"github.com/Joedaddy66/Spartan-RD-HTT-Project/codon"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/fingerprint"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/scan"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/semiprime"
)

func mustCompile(tst *testing.T, motif string) scan.Pattern {
	pat, err := scan.Compile(motif)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	return pat
}

func TestScoreMismatchedPAM(tst *testing.T) {
	pat := mustCompile(tst, "NGG")
	combined := strings.Repeat("A", 20) + "ATT"
	total, recs := ScoreSequence(combined, pat, 1)
	if total != 0 {
		tst.Errorf("Total=%v, expected 0 for a mismatched PAM", total)
	}
	if len(recs) != 0 {
		tst.Errorf("Expected no records, got %v", len(recs))
	}
}

func TestScoreShortSequence(tst *testing.T) {
	pat := mustCompile(tst, "NGG")
	total, recs := ScoreSequence(strings.Repeat("A", 22), pat, 1)
	if total != 0 || len(recs) != 0 {
		tst.Errorf("Short input scored: total=%v, %v records", total, len(recs))
	}
}

func TestScoreNoSemiprimeWindows(tst *testing.T) {
	// every window encodes to 0, which has no two-prime split
	pat := mustCompile(tst, "NGG")
	combined := strings.Repeat("A", 20) + "TGG"
	total, recs := ScoreSequence(combined, pat, 1)
	if total != 0 {
		tst.Errorf("Total=%v, expected 0", total)
	}
	if len(recs) != 0 {
		tst.Errorf("Expected no records, got %v", len(recs))
	}
}

func TestScoreSingleWindow(tst *testing.T) {
	// AAA ACG encodes to 0*64+6 = 6 = 2*3; a large step keeps the
	// remaining windows out
	pat := mustCompile(tst, "NGG")
	combined := "AAAACG" + strings.Repeat("A", 14) + "CGG"
	total, recs := ScoreSequence(combined, pat, 20)
	want := 1 / (6 * math.Log(2.5))
	if math.Abs(total-want) > 1e-12 {
		tst.Errorf("Total=%v, expected %v", total, want)
	}
	if len(recs) != 1 {
		tst.Fatalf("Expected 1 record, got %v", len(recs))
	}
	r := recs[0]
	if r.WindowInt != 6 || r.P != 2 || r.Q != 3 {
		tst.Errorf("Record (%v, %v, %v), expected (6, 2, 3)", r.WindowInt, r.P, r.Q)
	}
	if r.AdditiveComplexity != 2.5 {
		tst.Errorf("AdditiveComplexity=%v, expected 2.5", r.AdditiveComplexity)
	}
	if r.MultiplicativeResistance != 6 {
		tst.Errorf("MultiplicativeResistance=%v, expected 6", r.MultiplicativeResistance)
	}
}

func TestScoreAgainstLeaves(tst *testing.T) {
	// the windowed total must agree with a direct walk over the
	// protospacer using the leaf packages
	pat := mustCompile(tst, "NGG")
	proto := "ACGTACGTACGTACGTACGT"
	combined := proto + "AGG"

	var want float64
	var wantWindows []int
	for off := 0; off+WindowSize <= len(proto); off++ {
		first, err := codon.Encode(proto[off : off+3])
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		second, err := codon.Encode(proto[off+3 : off+6])
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		w := codon.WindowInt(first, second)
		p, q, err := semiprime.Factor(w)
		if err != nil {
			continue
		}
		want += fingerprint.Lambda(p, q)
		wantWindows = append(wantWindows, w)
	}

	total, recs := ScoreSequence(combined, pat, 1)
	if math.Abs(total-want) > 1e-12 {
		tst.Errorf("Total=%v, expected %v", total, want)
	}
	if len(recs) != len(wantWindows) {
		tst.Fatalf("Expected %v records, got %v", len(wantWindows), len(recs))
	}
	for i, r := range recs {
		if r.WindowInt != wantWindows[i] {
			tst.Errorf("Record %v: window %v, expected %v", i, r.WindowInt, wantWindows[i])
		}
		if r.MultiplicativeResistance != float64(r.WindowInt) {
			tst.Errorf("Record %v: product %v != window integer %v", i, r.MultiplicativeResistance, r.WindowInt)
		}
	}
}

func TestScoreStepArithmetic(tst *testing.T) {
	pat := mustCompile(tst, "NGG")
	proto := "ACGTACGTACGTACGTACGT"
	combined := proto + "AGG"

	total1, recs1 := ScoreSequence(combined, pat, 1)
	total3, recs3 := ScoreSequence(combined, pat, 3)
	// step 1 visits offsets 0..14, step 3 only 0, 3, 6, 9, 12
	if len(recs3) > len(recs1) {
		tst.Errorf("step=3 produced more records (%v) than step=1 (%v)", len(recs3), len(recs1))
	}
	if total3 > total1+1e-12 {
		tst.Errorf("step=3 total %v exceeds step=1 total %v", total3, total1)
	}
	for _, r := range recs3 {
		found := false
		for _, r1 := range recs1 {
			if r1 == r {
				found = true
				break
			}
		}
		if !found {
			tst.Errorf("step=3 record %+v missing from step=1 records", r)
		}
	}
}

func TestScoreCandidateWrapsSite(tst *testing.T) {
	pat := mustCompile(tst, "NGG")
	c := scan.Candidate{
		Protospacer: "AAAACG" + strings.Repeat("A", 14),
		PAM:         "CGG",
		Pos:         17,
		Source:      "chr4",
	}
	s := ScoreCandidate(c, pat, 20)
	if s.Candidate != c {
		tst.Error("Scored candidate does not carry the site")
	}
	if len(s.Records) != 1 {
		tst.Errorf("Expected 1 record, got %v", len(s.Records))
	}
}
