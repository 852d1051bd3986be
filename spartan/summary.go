package main

import (
	"github.com/gonum/floats"

	"github.com/Joedaddy66/Spartan-RD-HTT-Project/results"
)

// RunSummary is storing spartan run summary information.
type RunSummary struct {
	// Version stores spartan version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// PAM is the pattern used for the scan.
	PAM string `json:"pam"`
	// Step is the window step over the protospacer.
	Step int `json:"step"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Sources stores one summary per scanned sequence.
	Sources []SourceSummary `json:"sources"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// SourceSummary is storing summary information for one sequence.
type SourceSummary struct {
	// Source is the sequence name from the FASTA file.
	Source string `json:"source"`
	// Length is the sequence length.
	Length int `json:"length"`
	// NCandidates is the number of candidate sites found.
	NCandidates int `json:"nCandidates"`
	// MinLambda is the lowest lambda score among the candidates.
	MinLambda float64 `json:"minLambda"`
	// MeanLambda is the mean lambda score.
	MeanLambda float64 `json:"meanLambda"`
	// MaxLambda is the highest lambda score.
	MaxLambda float64 `json:"maxLambda"`
	// Records stores the export records of all candidates.
	Records []results.Record `json:"records,omitempty"`
}

// lambdaStats computes min, mean and max lambda score over a run.
// Zeros are returned for an empty run.
func lambdaStats(recs []results.Record) (min, mean, max float64) {
	if len(recs) == 0 {
		return 0, 0, 0
	}
	scores := make([]float64, len(recs))
	for i, r := range recs {
		scores[i] = r.LambdaScore
	}
	min = floats.Min(scores)
	mean = floats.Sum(scores) / float64(len(scores))
	max = floats.Max(scores)
	return
}
