// Package scoring reduces a threshold grid to a per-ear hearing band.
package scoring

import "github.com/abhisek/hearwise/internal/audiometry"

// Band is a qualitative hearing category, ordered from best to worst.
type Band int

const (
	Normal Band = iota
	Mild
	Moderate
	Severe
	Profound
)

// Inclusive upper bounds of each band, in dB HL.
const (
	NormalMax   = 25.0
	MildMax     = 40.0
	ModerateMax = 70.0
	SevereMax   = 90.0
)

func (b Band) String() string {
	switch b {
	case Normal:
		return "normal range"
	case Mild:
		return "mild"
	case Moderate:
		return "moderate"
	case Severe:
		return "severe"
	case Profound:
		return "profound"
	}
	return "unknown"
}

// Interpretation returns the fixed user-facing text for the band.
func (b Band) Interpretation() string {
	switch b {
	case Normal:
		return "Your hearing is in the normal range."
	case Mild:
		return "You may have mild hearing loss. Soft speech can be hard to follow in noisy places."
	case Moderate:
		return "You may have moderate hearing loss. Consider seeing a hearing professional."
	case Severe:
		return "You may have severe hearing loss. We recommend seeing a hearing professional."
	default:
		return "You may have profound hearing loss. Please see a hearing professional."
	}
}

// BandFor classifies an average threshold.
func BandFor(avg float64) Band {
	switch {
	case avg <= NormalMax:
		return Normal
	case avg <= MildMax:
		return Mild
	case avg <= ModerateMax:
		return Moderate
	case avg <= SevereMax:
		return Severe
	}
	return Profound
}

// EarScore is the scoring outcome for one ear.
type EarScore struct {
	// Average is the mean of detected thresholds in dB HL. Zero when
	// Defined is false.
	Average float64

	// Defined is false when no threshold was detected.
	Defined bool

	// Measured counts detected thresholds that went into the average.
	Measured int

	Band           Band
	Interpretation string
}

// ScoreEar averages the detected thresholds. NotDetected entries are
// excluded; if every entry is NotDetected the ear is Profound.
func ScoreEar(thresholds []audiometry.Threshold) EarScore {
	var sum, n int
	for _, th := range thresholds {
		if db, ok := th.DB(); ok {
			sum += db
			n++
		}
	}
	if n == 0 {
		return EarScore{Band: Profound, Interpretation: Profound.Interpretation()}
	}
	avg := float64(sum) / float64(n)
	band := BandFor(avg)
	return EarScore{
		Average:        avg,
		Defined:        true,
		Measured:       n,
		Band:           band,
		Interpretation: band.Interpretation(),
	}
}

// Summary holds both ears' scores.
type Summary struct {
	Right EarScore
	Left  EarScore
}

// Ear returns the score for ear.
func (s Summary) Ear(ear audiometry.Ear) EarScore {
	if ear == audiometry.Left {
		return s.Left
	}
	return s.Right
}

// Score computes the summary of a record. It has no side effects.
func Score(rec audiometry.Record) Summary {
	return Summary{
		Right: ScoreEar(rec.EarThresholds(audiometry.Right)),
		Left:  ScoreEar(rec.EarThresholds(audiometry.Left)),
	}
}
