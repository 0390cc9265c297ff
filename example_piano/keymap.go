package main

import "github.com/denizsincar29/gopitch"

// map keyboard keys to notes, two octaves laid out like a piano
var keyToNote = map[string]gopitch.Note{
	"a": {Class: gopitch.NoteC, Octave: 4},
	"w": {Class: gopitch.NoteCs, Octave: 4},
	"s": {Class: gopitch.NoteD, Octave: 4},
	"e": {Class: gopitch.NoteDs, Octave: 4},
	"d": {Class: gopitch.NoteE, Octave: 4},
	"f": {Class: gopitch.NoteF, Octave: 4},
	"t": {Class: gopitch.NoteFs, Octave: 4},
	"g": {Class: gopitch.NoteG, Octave: 4},
	"y": {Class: gopitch.NoteGs, Octave: 4},
	"h": {Class: gopitch.NoteA, Octave: 4},
	"u": {Class: gopitch.NoteAs, Octave: 4},
	"j": {Class: gopitch.NoteB, Octave: 4},
	"k": {Class: gopitch.NoteC, Octave: 5},
	"o": {Class: gopitch.NoteCs, Octave: 5},
	"l": {Class: gopitch.NoteD, Octave: 5},
	"p": {Class: gopitch.NoteDs, Octave: 5},
	";": {Class: gopitch.NoteE, Octave: 5},
	"'": {Class: gopitch.NoteF, Octave: 5},
	"[": {Class: gopitch.NoteFs, Octave: 5},
	"]": {Class: gopitch.NoteGs, Octave: 5},
}

// GetNote returns the note for the given key.
func GetNote(key string) (gopitch.Note, bool) {
	note, ok := keyToNote[key]
	return note, ok
}
