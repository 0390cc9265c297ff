package gopitch

import (
	"sync"
	"time"
)

// TimedNote is a note with a duration and a pause before the next note.
type TimedNote struct {
	Note
	Duration time.Duration
	Pause    time.Duration
}

// FreqDur is what a Player emits for each note: the frequency in hertz and
// how long to sound it. Feed it to whatever makes noise on your end, a
// beeper, an oscillator, a MIDI sender.
type FreqDur struct {
	Freq     float64
	Duration time.Duration
}

// Player streams a melody as FreqDur values over a channel, in real time.
// One melody plays at a time; Play while a melody is running does nothing.
type Player struct {
	running bool
	mu      sync.Mutex
	ch      chan FreqDur
}

// NewPlayer creates a player. Receive from Notes while playing, the channel
// is unbuffered.
func NewPlayer() *Player {
	return &Player{ch: make(chan FreqDur)}
}

// Notes returns the channel the player emits on.
func (p *Player) Notes() <-chan FreqDur {
	return p.ch
}

// Running reports whether a melody is currently playing.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Play starts streaming the melody in a goroutine and returns immediately.
// Each note is sent on the Notes channel, then the player sleeps for the
// note's duration and pause before moving on. If a melody is already
// playing, Play does nothing.
func (p *Player) Play(melody []TimedNote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	go func() {
		for _, note := range melody {
			p.ch <- FreqDur{Freq: note.Frequency(), Duration: note.Duration}
			time.Sleep(note.Duration + note.Pause)
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		p.running = false
	}()
}
