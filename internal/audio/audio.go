// Package audio plays the game's short interface cues. Each cue is a
// synthesized beep unless a WAV file of the same name exists in the sounds
// directory. A disabled Cues instance swallows every call, so callers never
// check a flag.
package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"chosenoffset.com/embervale/internal/logger"
)

const sampleRate = 44100

// Cue names. Each doubles as the override file name, e.g. interact.wav.
const (
	CueInteract  = "interact"
	CueMenu      = "menu"
	CueDialogue  = "dialogue"
	CueLoginOK   = "login_ok"
	CueLoginFail = "login_fail"
)

// Cues owns the audio context and the encoded cue data.
type Cues struct {
	ctx    *audio.Context
	sounds map[string][]byte
}

// NewCues prepares every cue. With enabled false it returns a silent
// instance and never touches the audio device. dir may hold WAV overrides
// for the synthesized beeps.
func NewCues(enabled bool, dir string) *Cues {
	if !enabled {
		return &Cues{}
	}

	c := &Cues{
		ctx: audio.NewContext(sampleRate),
		sounds: map[string][]byte{
			CueInteract:  synthBeepWAV(660, 70),
			CueMenu:      synthBeepWAV(440, 60),
			CueDialogue:  synthBeepWAV(520, 45),
			CueLoginOK:   synthBeepWAV(780, 120),
			CueLoginFail: synthBeepWAV(180, 160),
		},
	}

	for name := range c.sounds {
		path := filepath.Join(dir, name+".wav")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		c.sounds[name] = data
		logger.Log.Infof("loaded sound override %s", path)
	}
	return c
}

// Play starts the named cue from the beginning. Unknown names and disabled
// audio do nothing.
func (c *Cues) Play(name string) {
	if c.ctx == nil {
		return
	}
	data, ok := c.sounds[name]
	if !ok {
		return
	}

	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		logger.Log.Errorf("decode cue %s: %v", name, err)
		return
	}
	p, err := c.ctx.NewPlayer(stream)
	if err != nil {
		logger.Log.Errorf("play cue %s: %v", name, err)
		return
	}
	p.Play()
}

// synthBeepWAV renders a sine beep as a complete 16-bit mono WAV file.
func synthBeepWAV(freq float64, ms int) []byte {
	n := sampleRate * ms / 1000
	dataLen := n * 2

	buf := make([]byte, 0, 44+dataLen)
	buf = append(buf, "RIFF"...)
	buf = putLE32(buf, uint32(36+dataLen))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = putLE32(buf, 16)
	buf = putLE16(buf, 1) // PCM
	buf = putLE16(buf, 1) // mono
	buf = putLE32(buf, sampleRate)
	buf = putLE32(buf, sampleRate*2)
	buf = putLE16(buf, 2)
	buf = putLE16(buf, 16)
	buf = append(buf, "data"...)
	buf = putLE32(buf, uint32(dataLen))

	for i := 0; i < n; i++ {
		// Fade the tail so the beep ends without a click.
		env := 1.0
		if tail := n - i; tail < sampleRate/100 {
			env = float64(tail) / float64(sampleRate/100)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * 0.25 * env
		buf = putLE16(buf, uint16(int16(v*32767)))
	}
	return buf
}

func putLE16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func putLE32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
