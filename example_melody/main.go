// this example plays a short melody with the gopitch player and also saves
// it as a standard MIDI file, so you can hear it in any MIDI player.
// The player itself makes no sound, it just streams frequencies and
// durations in real time; here we print them as they go by.
package main

import (
	"fmt"
	"os"

	// goerror is also my package, but it is not a part of the gopitch library.
	"github.com/denizsincar29/goerror"
	"github.com/denizsincar29/gopitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	midiFile = "melody.mid"
	tempoBPM = 120
)

func main() {
	logger := NewLogger(os.Stdout)
	e := goerror.NewError(logger)

	e.Must(writeMidiFile(midiFile, melody), "Failed to write the MIDI file")
	logger.Info("Saved the melody", "file", midiFile)

	player := gopitch.NewPlayer()
	player.Play(melody)
	for range melody {
		fd := <-player.Notes()
		fmt.Printf("%7.2f Hz for %v\n", fd.Freq, fd.Duration)
	}
	logger.Info("Done")
}

// writeMidiFile renders the melody as a single-track SMF at tempoBPM.
func writeMidiFile(path string, melody []gopitch.TimedNote) error {
	clock := smf.MetricTicks(960)
	var track smf.Track
	track.Add(0, smf.MetaTempo(tempoBPM))
	track.Add(0, midi.ProgramChange(0, 0)) // piano
	var rest uint32 // pause carried over as the delay of the next note-on
	for _, note := range melody {
		key := uint8(note.MidiNote())
		track.Add(rest, midi.NoteOn(0, key, 100))
		track.Add(clock.Ticks(tempoBPM, note.Duration), midi.NoteOff(0, key))
		rest = clock.Ticks(tempoBPM, note.Pause)
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	s.Add(track)
	return s.WriteFile(path)
}
