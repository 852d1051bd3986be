/*

Spartan scans nucleotide sequences for PAM-anchored candidate
genome-editing target sites and assigns each site a lambda score
derived from codon encoding and semiprime decomposition of sliding
windows over the protospacer.

The basic usage of spartan looks like this:

	spartan sequences.fst

, this will scan every sequence in the FASTA file for NGG-anchored
sites and print the scored candidates.

You can change the PAM pattern and keep results in a database:

	spartan -pam NAG -db results.db sequences.fst

To see all the options run:

	spartan -h

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/Joedaddy66/Spartan-RD-HTT-Project/bio"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/results"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/scan"
	"github.com/Joedaddy66/Spartan-RD-HTT-Project/score"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("spartan")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("spartan", "PAM-anchored target site discovery and lambda scoring").Version(version)

	// input
	fastaFileName = app.Arg("sequences", "FASTA file with nucleotide sequences").Required().ExistingFile()

	// scoring parameters
	pam  = app.Flag("pam", "PAM pattern over {A,C,G,T,N}, N matches any base").Default("NGG").String()
	step = app.Flag("step", "window step over the protospacer").Default("1").Int()

	// output
	top     = app.Flag("top", "print only the N highest-scoring candidates per sequence (0=all)").Default("0").Int()
	withFac = app.Flag("factorizations", "include per-window factorization records in output").Bool()
	dbF     = app.Flag("db", "keep run results in a bolt database file").String()
	jsonF   = app.Flag("json", "write json summary to a file").String()

	// technical
	nThreads = app.Flag("nt", "number of threads to use").Int()
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

func run(nWorkers int) (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{
		PAM:  *pam,
		Step: *step,
	}

	pat, err := scan.Compile(*pam)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("PAM pattern: %s (length %d)", pat, pat.Len())

	fastaFile, err := os.Open(*fastaFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer fastaFile.Close()

	seqs, err := bio.ParseFasta(fastaFile)
	if err != nil {
		log.Fatal(err)
	}
	if len(seqs) == 0 {
		log.Fatal("No sequences in input")
	}
	log.Infof("Read %d sequence(s)", len(seqs))

	var store *results.Store
	if *dbF != "" {
		store, err = results.Open(*dbF)
		if err != nil {
			log.Fatal("Error opening results database:", err)
		}
		defer store.Close()
	}

	for _, seq := range seqs {
		scanner, err := scan.NewScanner(seq.Sequence, seq.Name, pat)
		if err != nil {
			log.Fatal(err)
		}
		cands := scanner.All()
		if len(cands) == 0 {
			log.Noticef("%s: no candidates found", seq.Name)
			summary.Sources = append(summary.Sources, SourceSummary{
				Source: seq.Name,
				Length: len(seq.Sequence),
			})
			continue
		}
		log.Infof("%s: %d candidate site(s)", seq.Name, len(cands))

		scored := score.Batch(cands, pat, *step, nWorkers)

		recs := make([]results.Record, 0, len(scored))
		for _, s := range scored {
			recs = append(recs, results.FromScored(s, *withFac))
		}

		err = store.SaveRun(seq.Name, recs)
		if err != nil {
			log.Error("Error saving run:", err)
		}

		printRecords(seq.Name, recs, *top)

		min, mean, max := lambdaStats(recs)
		summary.Sources = append(summary.Sources, SourceSummary{
			Source:      seq.Name,
			Length:      len(seq.Sequence),
			NCandidates: len(recs),
			MinLambda:   min,
			MeanLambda:  mean,
			MaxLambda:   max,
			Records:     recs,
		})
	}

	endTime := time.Now()

	deltaT := endTime.Sub(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

// printRecords prints scored candidates for one source, best first.
func printRecords(source string, recs []results.Record, top int) {
	byScore := make([]results.Record, len(recs))
	copy(byScore, recs)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].LambdaScore > byScore[j].LambdaScore
	})
	if top > 0 && top < len(byScore) {
		byScore = byScore[:top]
	}
	for _, r := range byScore {
		fmt.Printf("%s\t%d\t%s\t%s\t%.4f\n",
			source, r.Location, r.Protospacer, r.PAM, r.LambdaScore)
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "spartan")
	logging.SetLevel(level, "results")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *nThreads > 0 {
		runtime.GOMAXPROCS(*nThreads)
	}
	nWorkers := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.\n", nWorkers)

	summary := run(nWorkers)
	summary.NThreads = nWorkers
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
