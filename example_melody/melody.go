package main

import (
	"time"

	"github.com/denizsincar29/gopitch"
)

func n(class, octave int, duration, pause time.Duration) gopitch.TimedNote {
	return gopitch.TimedNote{
		Note:     gopitch.Note{Class: class, Octave: octave},
		Duration: duration,
		Pause:    pause,
	}
}

// a little tune
var melody = []gopitch.TimedNote{
	n(gopitch.NoteC, 5, 300*time.Millisecond, 100*time.Millisecond),
	n(gopitch.NoteG, 4, 150*time.Millisecond, 50*time.Millisecond),
	n(gopitch.NoteG, 4, 150*time.Millisecond, 50*time.Millisecond),
	n(gopitch.NoteA, 4, 300*time.Millisecond, 100*time.Millisecond),
	n(gopitch.NoteG, 4, 400*time.Millisecond, 400*time.Millisecond),
	n(gopitch.NoteB, 4, 300*time.Millisecond, 100*time.Millisecond),
	n(gopitch.NoteC, 5, 500*time.Millisecond, 0),
}
