// Package results holds the export shape for scored target sites and
// a bolt-backed store for keeping runs around between invocations.
package results

import (
	"encoding/json"
	"math"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/Joedaddy66/Spartan-RD-HTT-Project/score"
)

// log is the global logging variable.
var log = logging.MustGetLogger("results")

// RUNS is the key name for all stored runs.
var RUNS = []byte("runs")

// Record is the per-candidate export shape consumed by reporting
// collaborators.
type Record struct {
	Protospacer    string          `json:"protospacer"`
	PAM            string          `json:"PAM"`
	Location       int             `json:"sequence_location"`
	Source         string          `json:"source"`
	LambdaScore    float64         `json:"lambda_score"`
	Factorizations []Factorization `json:"factorizations,omitempty"`
}

// Factorization is the per-window detail of a Record.
type Factorization struct {
	WindowInteger            int     `json:"window_integer"`
	P                        int     `json:"p"`
	Q                        int     `json:"q"`
	AdditiveComplexity       float64 `json:"additive_complexity"`
	MultiplicativeResistance float64 `json:"multiplicative_resistance"`
}

// Round4 rounds a lambda score to four decimal places for export.
func Round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}

// FromScored converts a scored candidate into its export record. The
// lambda score is rounded to four decimal places; the factorization
// list is included only on request.
func FromScored(s score.Scored, withFactorizations bool) Record {
	r := Record{
		Protospacer: s.Candidate.Protospacer,
		PAM:         s.Candidate.PAM,
		Location:    s.Candidate.Pos,
		Source:      s.Candidate.Source,
		LambdaScore: Round4(s.Total),
	}
	if withFactorizations {
		r.Factorizations = make([]Factorization, 0, len(s.Records))
		for _, w := range s.Records {
			r.Factorizations = append(r.Factorizations, Factorization{
				WindowInteger:            w.WindowInt,
				P:                        w.P,
				Q:                        w.Q,
				AdditiveComplexity:       w.AdditiveComplexity,
				MultiplicativeResistance: w.MultiplicativeResistance,
			})
		}
	}
	return r
}

// Store keeps run records in a bolt database keyed by source
// identifier. A nil Store is a no-op.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) a results database.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun stores the records of one source, replacing any previous
// run for the same source.
func (s *Store) SaveRun(source string, recs []Record) error {
	if s == nil || s.db == nil {
		return nil
	}
	data, err := json.Marshal(recs)
	if err != nil {
		log.Error("Error serializing run", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(RUNS)
		if err != nil {
			return err
		}
		return b.Put([]byte(source), data)
	})
	if err != nil {
		log.Error("Error saving run", err)
	}
	return err
}

// LoadRun returns the records stored for a source, nil if the source
// has no stored run.
func (s *Store) LoadRun(source string) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RUNS)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(source))
		if v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}
	var recs []Record
	err = json.Unmarshal(data, &recs)
	if err != nil {
		return nil, err
	}
	return recs, nil
}
