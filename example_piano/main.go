// this example shows a tiny text piano built on the gopitch library.
// Type a key from the home row (a s d f g h j k ...) and press enter, and
// you'll see which note it is, its MIDI number and its frequency.
// You can also type a note name like A#4 or db3 directly.
package main

import (
	"bufio"
	"fmt"
	"os"

	// goerror is also my package, but it is not a part of the gopitch library.
	"github.com/denizsincar29/goerror"
	"github.com/denizsincar29/gopitch"
)

func main() {
	logger := NewLogger(os.Stdout)
	e := goerror.NewError(logger)
	logger.Info("Text piano ready. a-j is the middle octave, k and up is the next one. Ctrl+D quits.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		key := scanner.Text()
		if key == "" {
			continue
		}
		note, ok := GetNote(key)
		if ok {
			show(note.Pitch())
			continue
		}
		// not a piano key, maybe it's a note name
		pitch, err := gopitch.ParseNoteName(key)
		if err != nil {
			logger.Error("That's not a key or a note name", "input", key)
			continue
		}
		show(pitch)
	}
	e.Must(scanner.Err(), "Failed to read from stdin")
}

func show(p gopitch.Pitch) {
	fmt.Printf("%s  MIDI %.2f  %.2f Hz\n", p.MidiNoteName(), p.MidiNote(), p.FrequencyHz())
}
