// this is a small converter between the three ways of naming a pitch.
// Give it a note name, a MIDI note number or a frequency, and it prints
// all three representations:
//
//	gopitch -name A#3
//	gopitch -midi 69
//	gopitch -freq 523.25
package main

import (
	"flag"
	"fmt"
	"os"

	// goerror is also my package, but it is not a part of the gopitch library.
	"github.com/denizsincar29/goerror"
	"github.com/denizsincar29/gopitch"
)

func main() {
	logger := NewLogger(os.Stderr)
	e := goerror.NewError(logger)
	name := flag.String("name", "", "note name, e.g. A#4, db3 or A♯4")
	midi := flag.Float64("midi", -1, "MIDI note number, 69 is A4; can be fractional")
	freq := flag.Float64("freq", 0, "frequency in hertz")
	flag.Parse()

	var pitch gopitch.Pitch
	switch {
	case *name != "":
		var err error
		pitch, err = gopitch.ParseNoteName(*name)
		e.Must(err, "Failed to parse the note name")
	case *midi >= 0:
		pitch = gopitch.FromMidiNote(*midi)
	case *freq > 0:
		pitch = gopitch.FromFrequency(*freq)
	default:
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("note: %s\nmidi: %.4f\nfreq: %.4f Hz\n",
		pitch.MidiNoteName(), pitch.MidiNote(), pitch.FrequencyHz())
}
