package gopitch

import "strconv"

// Note classes, 0-11 within an octave. The sharp and flat spellings of the
// same class are both here, so melodies can be written the way they are
// notated.
const (
	NoteC  = 0
	NoteCs = 1
	NoteDb = 1
	NoteD  = 2
	NoteDs = 3
	NoteEb = 3
	NoteE  = 4
	NoteF  = 5
	NoteFs = 6
	NoteGb = 6
	NoteG  = 7
	NoteGs = 8
	NoteAb = 8
	NoteA  = 9
	NoteAs = 10
	NoteBb = 10
	NoteB  = 11
)

// Note is a symbolic note: a class 0-11 and an octave.
// Octaves follow the usual MIDI naming, so {NoteA, 4} is A4 = MIDI note 69
// and {NoteC, 4} is middle C = MIDI note 60.
type Note struct {
	Class  int // 0-11
	Octave int
}

// MidiNote returns the MIDI note number of the note.
func (n Note) MidiNote() int {
	return (n.Octave+1)*12 + n.Class
}

// Pitch returns the note as a Pitch.
func (n Note) Pitch() Pitch {
	return FromMidiNote(n.MidiNote())
}

// Frequency returns the frequency of the note in hertz.
func (n Note) Frequency() float64 {
	return n.Pitch().FrequencyHz()
}

// String returns the note name, e.g. "A4". Notes with a class outside 0-11
// have no letter and format as just the octave.
func (n Note) String() string {
	return noteName(n.Class) + strconv.Itoa(n.Octave)
}

// NoteForMidi decomposes a MIDI note number into a Note.
// Unlike Pitch.MidiNoteName it floors on negative input, so the class is
// always 0-11.
func NoteForMidi(midiNote int) Note {
	class := midiNote % 12
	octave := midiNote/12 - 1
	if class < 0 {
		class += 12
		octave--
	}
	return Note{Class: class, Octave: octave}
}
