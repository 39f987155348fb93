package audiometry

import (
	"errors"
	"testing"
	"time"
)

func fullResults(th Threshold) []Result {
	var out []Result
	for _, ear := range Ears {
		for _, f := range Frequencies {
			out = append(out, Result{Frequency: f, Ear: ear, Threshold: th})
		}
	}
	return out
}

func TestLevelTable(t *testing.T) {
	if len(Levels) != int(MaxLevel)+1 {
		t.Fatalf("len(Levels) = %d, want %d", len(Levels), MaxLevel+1)
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i] <= Levels[i-1] {
			t.Errorf("Levels not ascending at %d: %d <= %d", i, Levels[i], Levels[i-1])
		}
	}
	if DefaultStartLevel.DB() != 10 {
		t.Errorf("DefaultStartLevel = %d dB, want 10", DefaultStartLevel.DB())
	}
}

func TestLevelForDB(t *testing.T) {
	l, ok := LevelForDB(40)
	if !ok || l.DB() != 40 {
		t.Errorf("LevelForDB(40) = %v, %v", l, ok)
	}
	if _, ok := LevelForDB(45); ok {
		t.Error("LevelForDB(45) should not resolve")
	}
}

func TestThreshold(t *testing.T) {
	th := Heard(5)
	db, ok := th.DB()
	if !ok || db != 40 {
		t.Errorf("Heard(5).DB() = %d, %v; want 40, true", db, ok)
	}
	if _, ok := NotDetected().DB(); ok {
		t.Error("NotDetected().DB() should report ok=false")
	}
	if NotDetected().String() != "NR" {
		t.Errorf("NotDetected().String() = %q", NotDetected().String())
	}
}

func TestRecordValidate(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	complete := NewRecord("r1", "u1", now, fullResults(Heard(3)))
	if err := complete.Validate(); err != nil {
		t.Fatalf("complete record: %v", err)
	}

	missing := NewRecord("r2", "u1", now, fullResults(Heard(3))[1:])
	if err := missing.Validate(); !errors.Is(err, ErrMissingPair) {
		t.Errorf("missing pair err = %v, want ErrMissingPair", err)
	}

	dup := append(fullResults(Heard(3)), Result{Frequency: 250, Ear: Right, Threshold: NotDetected()})
	if err := NewRecord("r3", "u1", now, dup).Validate(); !errors.Is(err, ErrDuplicatePair) {
		t.Errorf("duplicate pair err = %v, want ErrDuplicatePair", err)
	}

	odd := fullResults(Heard(3))
	odd[0].Frequency = 3000
	if err := NewRecord("r4", "u1", now, odd).Validate(); !errors.Is(err, ErrUnknownPair) {
		t.Errorf("unknown pair err = %v, want ErrUnknownPair", err)
	}
}

func TestRecordIsImmutable(t *testing.T) {
	results := fullResults(Heard(3))
	rec := NewRecord("r1", "u1", time.Now(), results)

	results[0].Threshold = NotDetected()
	got := rec.Results()
	got[1].Threshold = NotDetected()

	if th, _ := rec.Lookup(250, Right); !th.Detected() {
		t.Error("mutating the input slice leaked into the record")
	}
	if th, _ := rec.Lookup(500, Right); !th.Detected() {
		t.Error("mutating Results() leaked into the record")
	}
}

func TestEarThresholdsOrder(t *testing.T) {
	var results []Result
	// Insert in reverse to make sure ordering comes from Frequencies.
	for i := len(Frequencies) - 1; i >= 0; i-- {
		results = append(results, Result{Frequency: Frequencies[i], Ear: Left, Threshold: Heard(Level(i))})
	}
	rec := NewRecord("r", "u", time.Now(), results)
	got := rec.EarThresholds(Left)
	if len(got) != len(Frequencies) {
		t.Fatalf("len = %d, want %d", len(got), len(Frequencies))
	}
	for i, th := range got {
		if l, _ := th.Level(); l != Level(i) {
			t.Errorf("EarThresholds[%d] level = %d, want %d", i, l, i)
		}
	}
	if len(rec.EarThresholds(Right)) != 0 {
		t.Error("expected no right-ear thresholds")
	}
}

func TestFrequencyString(t *testing.T) {
	tests := []struct {
		f    Frequency
		want string
	}{
		{250, "250Hz"},
		{1000, "1kHz"},
		{8000, "8kHz"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Frequency(%d).String() = %q, want %q", int(tt.f), got, tt.want)
		}
	}
}
