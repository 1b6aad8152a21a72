package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/randutil"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := Generate()
	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 100 {
		id := Generate()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateSortsByTime(t *testing.T) {
	t.Parallel()

	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	gen := NewGenerator(mClock, randutil.New(1))

	var ids []string
	for range 10 {
		ids = append(ids, gen.Generate())
		mClock.Advance(time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	newGen := func() *Generator {
		mClock := quartz.NewMock(t)
		mClock.Set(at)
		return NewGenerator(mClock, randutil.NewSequence(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	}

	a, b := newGen().Generate(), newGen().Generate()
	if a != b {
		t.Errorf("same clock and source gave %s and %s", a, b)
	}
	if err := Validate(a); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
	// the timestamp leads the ID
	if want := encode([16]byte{0: byte(at.UnixMilli() >> 40)}); a[0] != want[0] {
		t.Errorf("first character %c, want %c", a[0], want[0])
	}
}

func TestEncodeKnownValues(t *testing.T) {
	t.Parallel()

	if got := encode([16]byte{}); got != strings.Repeat("0", Length) {
		t.Errorf("zero ID encoded as %s", got)
	}

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	if got := encode(ones); got != "7"+strings.Repeat("z", Length-1) {
		t.Errorf("all-ones ID encoded as %s", got)
	}

	var one [16]byte
	one[15] = 1
	if got := encode(one); got != strings.Repeat("0", Length-1)+"1" {
		t.Errorf("one encoded as %s", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ID", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase not allowed", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	t.Parallel()

	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}
	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}
	for _, char := range "ilou" {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
