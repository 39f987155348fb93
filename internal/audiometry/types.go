// Package audiometry defines the fixed test grid (frequencies, ears,
// intensity levels) and the value types produced by a screening run.
package audiometry

import "fmt"

// Frequency is a test tone frequency in Hz.
type Frequency int

// Frequencies is the fixed traversal order of the outer loop.
var Frequencies = []Frequency{250, 500, 1000, 2000, 4000, 8000}

// Hz returns the frequency as a float for signal generation.
func (f Frequency) Hz() float64 {
	return float64(f)
}

func (f Frequency) String() string {
	if f >= 1000 && f%1000 == 0 {
		return fmt.Sprintf("%dkHz", f/1000)
	}
	return fmt.Sprintf("%dHz", int(f))
}

// FrequencyIndex returns the position of f in Frequencies, or -1.
func FrequencyIndex(f Frequency) int {
	for i, v := range Frequencies {
		if v == f {
			return i
		}
	}
	return -1
}

// Ear identifies which side is being tested.
type Ear int

const (
	Right Ear = iota
	Left
)

// Ears is the fixed ear traversal order. Ears are never interleaved
// within a frequency sweep.
var Ears = []Ear{Right, Left}

func (e Ear) String() string {
	if e == Left {
		return "left"
	}
	return "right"
}

// ParseEar parses "left"/"right" (as produced by Ear.String).
func ParseEar(s string) (Ear, error) {
	switch s {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Right, fmt.Errorf("unknown ear %q", s)
}

// Level is an index into Levels. Working with indices keeps "no response
// at the loudest level" representable without overflowing the table.
type Level int

// Levels holds the candidate intensities in dB HL, ascending in loudness.
var Levels = []int{-10, 0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}

const (
	MinLevel Level = 0
	MaxLevel Level = 13
)

// DefaultStartLevel is the 10 dB entry.
const DefaultStartLevel Level = 2

// DB returns the dB HL value of the level.
func (l Level) DB() int {
	return Levels[l]
}

// Valid reports whether l is inside the level table.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return fmt.Sprintf("%d dB", l.DB())
}

// LevelForDB returns the level whose dB value equals db.
func LevelForDB(db int) (Level, bool) {
	for i, v := range Levels {
		if v == db {
			return Level(i), true
		}
	}
	return 0, false
}

// Coordinate is the traversal cursor: which tone is being presented.
type Coordinate struct {
	FrequencyIndex int
	Ear            Ear
	Level          Level
}

// Frequency returns the frequency the cursor points at.
func (c Coordinate) Frequency() Frequency {
	return Frequencies[c.FrequencyIndex]
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%s/%s@%s", c.Frequency(), c.Ear, c.Level)
}

// Pair is a (frequency, ear) sub-test key.
type Pair struct {
	Frequency Frequency
	Ear       Ear
}

// TotalPairs is the number of sub-tests in a complete run.
func TotalPairs() int {
	return len(Frequencies) * len(Ears)
}
