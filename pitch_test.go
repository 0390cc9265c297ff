package gopitch

import (
	"math"
	"testing"
)

func closeTo(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestConcertPitch(t *testing.T) {
	p := FromMidiNote(69)
	if p.FrequencyHz() != 440 {
		t.Errorf("expected A4 to be exactly 440 Hz, got %v", p.FrequencyHz())
	}
	if !closeTo(p.MidiNote(), 69, 1e-9) {
		t.Errorf("expected 440 Hz to be MIDI note 69, got %v", p.MidiNote())
	}
}

func TestMidiNoteRoundTrip(t *testing.T) {
	for n := 0; n <= 127; n++ {
		got := FromMidiNote(n).MidiNote()
		if !closeTo(got, float64(n), 1e-9) {
			t.Errorf("MIDI note %d round-tripped to %v", n, got)
		}
	}
}

func TestFromFrequencyKeepsValue(t *testing.T) {
	for _, f := range []float64{0, 0.5, 27.5, 440, 441.3, 12543.854} {
		if got := FromFrequency(f).FrequencyHz(); got != f {
			t.Errorf("FromFrequency(%v).FrequencyHz() = %v", f, got)
		}
	}
	// integer input should work too
	if got := FromFrequency(440).FrequencyHz(); got != 440 {
		t.Errorf("FromFrequency(int 440) = %v", got)
	}
}

func TestMidiNoteName(t *testing.T) {
	tests := []struct {
		midiNote float64
		want     string
	}{
		{69, "A4"},
		{60, "C4"},
		{61, "C#4"},
		{0, "C-1"},
		{127, "G9"},
		{69.5, "A4"}, // truncated, not rounded
		{69.99, "A4"},
	}
	for _, tt := range tests {
		if got := FromMidiNote(tt.midiNote).MidiNoteName(); got != tt.want {
			t.Errorf("MIDI note %v: got %q, want %q", tt.midiNote, got, tt.want)
		}
	}
}

func TestMidiNoteNameOfZeroPitch(t *testing.T) {
	if got := (Pitch{}).MidiNoteName(); got != "" {
		t.Errorf("zero pitch should have no note name, got %q", got)
	}
	if got := New(-100).MidiNoteName(); got != "" {
		t.Errorf("negative frequency should have no note name, got %q", got)
	}
}

func TestZeroPitchMidiNote(t *testing.T) {
	if got := (Pitch{}).MidiNote(); !math.IsInf(got, -1) {
		t.Errorf("MidiNote of 0 Hz should be -Inf, got %v", got)
	}
}

func TestFromNoteName(t *testing.T) {
	tests := []struct {
		name     string
		midiNote int
	}{
		{"A#3", 46},
		{"a#3", 46}, // case doesn't matter
		{"C0", 0},
		{"B0", 11},
		{"C#4", 49},
		{"Db4", 49}, // enharmonic with C#4
		{"A" + string(SharpSymbol) + "3", 46},
		{"B" + string(FlatSymbol) + "3", 46},
		{"G2", 31},
		{"bb2", 34},  // second 'b' is the flat sign
		{"B#2", 24},  // wraps to C of the same octave, not the next one
		{"C##4", 49}, // everything after the accidental is ignored
		{"A#10", 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromNoteName(tt.name)
			want := FromMidiNote(tt.midiNote)
			if !closeTo(p.FrequencyHz(), want.FrequencyHz(), 1e-9) {
				t.Errorf("FromNoteName(%q) = %v Hz (MIDI %v), want MIDI note %d",
					tt.name, p.FrequencyHz(), p.MidiNote(), tt.midiNote)
			}
		})
	}
}

func TestFromNoteNameFlatWrapsDown(t *testing.T) {
	// Cb keeps the truncated modulo of the original: class -1 plus the
	// octave offset lands on B of the octave below.
	got := FromNoteName("Cb4")
	want := FromMidiNote(47)
	if !closeTo(got.FrequencyHz(), want.FrequencyHz(), 1e-9) {
		t.Errorf("FromNoteName(\"Cb4\") = MIDI %v, want 47", got.MidiNote())
	}
}

func TestFromNoteNameInvalid(t *testing.T) {
	for _, name := range []string{"", "zzz", "5", "#4", "♭♭"} {
		if got := FromNoteName(name).FrequencyHz(); got != 0 {
			t.Errorf("FromNoteName(%q) should be the zero pitch, got %v Hz", name, got)
		}
	}
}

func TestParseNoteName(t *testing.T) {
	p, err := ParseNoteName("A4")
	if err != nil {
		t.Fatalf("ParseNoteName(\"A4\") failed: %v", err)
	}
	// note name octaves start at MIDI note 0, one octave below the
	// MidiNoteName convention
	if !closeTo(p.MidiNote(), 57, 1e-9) {
		t.Errorf("ParseNoteName(\"A4\") = MIDI %v, want 57", p.MidiNote())
	}

	if _, err := ParseNoteName("zzz"); err == nil {
		t.Error("ParseNoteName(\"zzz\") should fail")
	}
	if _, err := ParseNoteName(""); err == nil {
		t.Error("ParseNoteName(\"\") should fail")
	}
}

func TestPitchString(t *testing.T) {
	if got := FromMidiNote(69).String(); got != "A4 (440.00 Hz)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Pitch{}).String(); got != "0.00 Hz" {
		t.Errorf("zero pitch String() = %q", got)
	}
}
