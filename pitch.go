// Package gopitch converts between the three common representations of a
// musical pitch: frequency in hertz, (fractional) MIDI note number and a
// note name string like "A#4" or "Db3".
// A4 = 440 Hz = MIDI note 69, equal temperament.
package gopitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SharpSymbol and FlatSymbol are the unicode accidental glyphs.
// FromNoteName understands them as well as plain '#' and 'b'.
const (
	SharpSymbol = '♯' // ♯
	FlatSymbol  = '♭' // ♭
)

// Real is any built-in numeric type. Frequencies and MIDI notes usually
// arrive as float64, but callers with int note numbers shouldn't have to
// convert by hand.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Pitch is a single musical pitch, stored as a frequency in hertz.
// The zero value has a frequency of 0 Hz and means "no pitch"; it is also
// what the parsing functions return on bad input.
// A Pitch is a plain value, copy it freely.
type Pitch struct {
	frequency float64
}

// New creates a pitch with the given frequency in hertz.
// The frequency is stored as is, nothing is validated or clamped.
func New(frequencyHz float64) Pitch {
	return Pitch{frequency: frequencyHz}
}

// FromFrequency creates a pitch from a frequency in hertz of any numeric type.
func FromFrequency[T Real](frequencyHz T) Pitch {
	return Pitch{frequency: float64(frequencyHz)}
}

// FromMidiNote creates a pitch from a MIDI note number, e.g. 69 for A4.
// Fractional note numbers give pitches between the semitones.
func FromMidiNote[T Real](midiNote T) Pitch {
	return Pitch{frequency: 440 * math.Pow(2, (float64(midiNote)-69)/12)}
}

// FromNoteName creates a pitch from a note name like "A4", "d#3" or "Gb2".
// The accidental can also be the unicode SharpSymbol or FlatSymbol glyph.
// If the name can't be parsed, the zero pitch (0 Hz) is returned.
// Use ParseNoteName if you need to tell a parse failure apart from an
// actual 0 Hz pitch.
func FromNoteName(name string) Pitch {
	p, err := ParseNoteName(name)
	if err != nil {
		return Pitch{}
	}
	return p
}

// ParseNoteName is FromNoteName with an explicit error instead of the
// zero-pitch fallback.
//
// The octave is read from the digits of the name, wherever they are; no
// digits means octave 0. The pitch class is read from the remaining
// characters: the first letter a-g picks the note, and only the very next
// character may sharpen or flatten it. A lowercase 'b' in that second spot
// always means flat, so "b" alone is the note B but "bb" is B flattened.
// Note names put octave 0 at MIDI note 0, so "A4" parses to MIDI note 57,
// one octave below Pitch.MidiNoteName's "A4".
func ParseNoteName(name string) (Pitch, error) {
	octave, _ := strconv.Atoi(retainChars(name, "0123456789"))
	pitchClassName := retainChars(strings.ToLower(name), validPitchClassLetters)

	pitchClass := basePitchClass(pitchClassName)
	if pitchClass < 0 {
		return Pitch{}, fmt.Errorf("gopitch: %q is not a note name", name)
	}
	pitchClass = applyAccidental(pitchClass, pitchClassName)
	return FromMidiNote(octave*12 + pitchClass), nil
}

// FrequencyHz returns the frequency of the pitch in hertz.
func (p Pitch) FrequencyHz() float64 {
	return p.frequency
}

// MidiNote returns the MIDI note number of the pitch, e.g. 69 for 440 Hz.
// The result is fractional when the frequency falls between semitones.
// A 0 Hz pitch gives -Inf and a negative frequency gives NaN; the math is
// passed through as is.
func (p Pitch) MidiNote() float64 {
	return 69 + 12*math.Log2(p.frequency/440)
}

// MidiNoteName returns the note name of the pitch, e.g. "A4" for 440 Hz.
// The fractional note number is truncated, not rounded, so anything up to
// a semitone above A4 is still "A4". Pitches with a frequency of 0 or less
// have no note name and give "".
func (p Pitch) MidiNoteName() string {
	if p.frequency <= 0 {
		return ""
	}
	midiNote := int(p.MidiNote())
	pitchClass := midiNote % 12
	octave := midiNote/12 - 1
	return noteName(pitchClass) + strconv.Itoa(octave)
}

// String implements fmt.Stringer, e.g. "A4 (440.00 Hz)".
func (p Pitch) String() string {
	if name := p.MidiNoteName(); name != "" {
		return fmt.Sprintf("%s (%.2f Hz)", name, p.frequency)
	}
	return fmt.Sprintf("%.2f Hz", p.frequency)
}

// sharp spellings only, never flats
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// the characters that may appear in a pitch class name, lowercase.
// 'b' is both the flat sign and the note B.
const validPitchClassLetters = "abcdefg#b♯♭"

// noteName converts a pitch class 0-11 to its letter, or "" out of range.
func noteName(pitchClass int) string {
	if pitchClass < 0 || pitchClass >= len(noteNames) {
		return ""
	}
	return noteNames[pitchClass]
}

// basePitchClass returns the pitch class of the first character of a
// lowercase pitch class name, or -1 if there isn't one.
func basePitchClass(pitchClassName string) int {
	runes := []rune(pitchClassName)
	if len(runes) == 0 {
		return -1
	}
	switch runes[0] {
	case 'c':
		return 0
	case 'd':
		return 2
	case 'e':
		return 4
	case 'f':
		return 5
	case 'g':
		return 7
	case 'a':
		return 9
	case 'b':
		return 11
	default:
		return -1
	}
}

// applyAccidental sharpens or flattens the pitch class if the second
// character of the name says so. Characters after the second are ignored.
// The result of Go's % keeps the sign of the dividend, so "cb" comes out
// as -1 and wraps to B of the octave below once the octave is added in.
func applyAccidental(pitchClass int, pitchClassName string) int {
	runes := []rune(pitchClassName)
	if len(runes) < 2 {
		return pitchClass
	}
	switch runes[1] {
	case '#', SharpSymbol:
		pitchClass++
	case 'b', FlatSymbol:
		pitchClass--
	}
	return pitchClass % 12
}

// retainChars returns s with every rune not in set removed.
func retainChars(s, set string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(set, r) {
			return r
		}
		return -1
	}, s)
}
