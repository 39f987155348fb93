package audiometry

import (
	"errors"
	"fmt"
	"time"
)

// Threshold is the outcome of one sub-test: the level at which the user
// first responded, or "not detected at maximum".
type Threshold struct {
	level    Level
	detected bool
}

// Heard returns a threshold at level l.
func Heard(l Level) Threshold {
	return Threshold{level: l, detected: true}
}

// NotDetected returns the sentinel for "no response at the loudest level".
func NotDetected() Threshold {
	return Threshold{}
}

// Detected reports whether the user responded at some level.
func (t Threshold) Detected() bool {
	return t.detected
}

// Level returns the threshold level. ok is false for the sentinel.
func (t Threshold) Level() (Level, bool) {
	return t.level, t.detected
}

// DB returns the threshold in dB HL. ok is false for the sentinel.
func (t Threshold) DB() (int, bool) {
	if !t.detected {
		return 0, false
	}
	return t.level.DB(), true
}

func (t Threshold) String() string {
	if !t.detected {
		return "NR"
	}
	return t.level.String()
}

// Result is a completed sub-test.
type Result struct {
	Frequency Frequency
	Ear       Ear
	Threshold Threshold
}

// Pair returns the (frequency, ear) key of the result.
func (r Result) Pair() Pair {
	return Pair{Frequency: r.Frequency, Ear: r.Ear}
}

// Record is the immutable output of a completed run.
type Record struct {
	id      string
	userID  string
	takenAt time.Time
	results []Result
}

// NewRecord builds a Record. The results slice is copied.
func NewRecord(id, userID string, takenAt time.Time, results []Result) Record {
	cp := make([]Result, len(results))
	copy(cp, results)
	return Record{id: id, userID: userID, takenAt: takenAt, results: cp}
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// UserID returns the owning user's opaque identifier.
func (r Record) UserID() string { return r.userID }

// TakenAt returns when the run completed.
func (r Record) TakenAt() time.Time { return r.takenAt }

// Results returns a copy of the threshold list in traversal order.
func (r Record) Results() []Result {
	cp := make([]Result, len(r.results))
	copy(cp, r.results)
	return cp
}

// EarThresholds returns the thresholds for one ear, ordered by frequency.
func (r Record) EarThresholds(ear Ear) []Threshold {
	var out []Threshold
	for _, f := range Frequencies {
		for _, res := range r.results {
			if res.Ear == ear && res.Frequency == f {
				out = append(out, res.Threshold)
			}
		}
	}
	return out
}

// Lookup returns the threshold for a (frequency, ear) pair.
func (r Record) Lookup(f Frequency, ear Ear) (Threshold, bool) {
	for _, res := range r.results {
		if res.Frequency == f && res.Ear == ear {
			return res.Threshold, true
		}
	}
	return Threshold{}, false
}

var (
	ErrMissingPair   = errors.New("record is missing a frequency/ear pair")
	ErrDuplicatePair = errors.New("record contains a duplicate frequency/ear pair")
	ErrUnknownPair   = errors.New("record contains an unknown frequency/ear pair")
)

// Validate checks that the record covers exactly Frequencies x Ears.
func (r Record) Validate() error {
	seen := make(map[Pair]bool, TotalPairs())
	for _, res := range r.results {
		if FrequencyIndex(res.Frequency) < 0 || (res.Ear != Right && res.Ear != Left) {
			return fmt.Errorf("%w: %s/%s", ErrUnknownPair, res.Frequency, res.Ear)
		}
		if lvl, ok := res.Threshold.Level(); ok && !lvl.Valid() {
			return fmt.Errorf("threshold level out of range at %s/%s: %d", res.Frequency, res.Ear, int(lvl))
		}
		p := res.Pair()
		if seen[p] {
			return fmt.Errorf("%w: %s/%s", ErrDuplicatePair, p.Frequency, p.Ear)
		}
		seen[p] = true
	}
	for _, ear := range Ears {
		for _, f := range Frequencies {
			if !seen[Pair{Frequency: f, Ear: ear}] {
				return fmt.Errorf("%w: %s/%s", ErrMissingPair, f, ear)
			}
		}
	}
	return nil
}
