package scoring

import (
	"testing"
	"time"

	"github.com/abhisek/hearwise/internal/audiometry"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		avg  float64
		want Band
	}{
		{-10, Normal},
		{25, Normal},
		{25.01, Mild},
		{26, Mild},
		{40, Mild},
		{40.5, Moderate},
		{70, Moderate},
		{71, Severe},
		{90, Severe},
		{90.01, Profound},
		{120, Profound},
	}
	for _, tt := range tests {
		if got := BandFor(tt.avg); got != tt.want {
			t.Errorf("BandFor(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func level(t *testing.T, db int) audiometry.Level {
	t.Helper()
	l, ok := audiometry.LevelForDB(db)
	if !ok {
		t.Fatalf("no level for %d dB", db)
	}
	return l
}

func TestScoreEarExcludesSentinels(t *testing.T) {
	ths := []audiometry.Threshold{
		audiometry.Heard(level(t, 20)),
		audiometry.Heard(level(t, 30)),
		audiometry.NotDetected(),
	}
	got := ScoreEar(ths)
	if !got.Defined {
		t.Fatal("expected a defined average")
	}
	if got.Average != 25 {
		t.Errorf("Average = %v, want 25", got.Average)
	}
	if got.Measured != 2 {
		t.Errorf("Measured = %d, want 2", got.Measured)
	}
	if got.Band != Normal {
		t.Errorf("Band = %s, want normal range", got.Band)
	}
}

func TestScoreEarAllSentinels(t *testing.T) {
	got := ScoreEar([]audiometry.Threshold{audiometry.NotDetected(), audiometry.NotDetected()})
	if got.Defined {
		t.Error("expected undefined average")
	}
	if got.Band != Profound {
		t.Errorf("Band = %s, want profound", got.Band)
	}
	if got.Interpretation != Profound.Interpretation() {
		t.Errorf("Interpretation = %q", got.Interpretation)
	}
}

func buildRecord(t *testing.T, right, left func(audiometry.Frequency) audiometry.Threshold) audiometry.Record {
	t.Helper()
	var results []audiometry.Result
	for _, f := range audiometry.Frequencies {
		results = append(results, audiometry.Result{Frequency: f, Ear: audiometry.Right, Threshold: right(f)})
	}
	for _, f := range audiometry.Frequencies {
		results = append(results, audiometry.Result{Frequency: f, Ear: audiometry.Left, Threshold: left(f)})
	}
	return audiometry.NewRecord("r", "u", time.Now(), results)
}

func TestScoreIsIdempotent(t *testing.T) {
	rec := buildRecord(t,
		func(audiometry.Frequency) audiometry.Threshold { return audiometry.Heard(level(t, 20)) },
		func(f audiometry.Frequency) audiometry.Threshold {
			if f >= 4000 {
				return audiometry.Heard(level(t, 60))
			}
			return audiometry.Heard(level(t, 30))
		},
	)
	first := Score(rec)
	second := Score(rec)
	if first != second {
		t.Errorf("Score not idempotent: %+v vs %+v", first, second)
	}
	if first.Right.Band != Normal {
		t.Errorf("right band = %s, want normal range", first.Right.Band)
	}
	// (30*4 + 60*2) / 6 = 40
	if first.Left.Average != 40 || first.Left.Band != Mild {
		t.Errorf("left = %v (%s), want 40 (mild)", first.Left.Average, first.Left.Band)
	}
	if first.Ear(audiometry.Left) != first.Left {
		t.Error("Summary.Ear(Left) mismatch")
	}
}

func TestScoreNeverHeard(t *testing.T) {
	nr := func(audiometry.Frequency) audiometry.Threshold { return audiometry.NotDetected() }
	s := Score(buildRecord(t, nr, nr))
	if s.Right.Band != Profound || s.Left.Band != Profound {
		t.Errorf("bands = %s/%s, want profound/profound", s.Right.Band, s.Left.Band)
	}
}

func TestBandStrings(t *testing.T) {
	want := map[Band]string{
		Normal:   "normal range",
		Mild:     "mild",
		Moderate: "moderate",
		Severe:   "severe",
		Profound: "profound",
	}
	for b, s := range want {
		if b.String() != s {
			t.Errorf("Band(%d).String() = %q, want %q", int(b), b.String(), s)
		}
		if b.Interpretation() == "" {
			t.Errorf("Band %s has empty interpretation", s)
		}
	}
}
