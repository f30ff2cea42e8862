package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager plays short procedurally generated effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager. The audio device is opened the
// first time sound is enabled, so a muted start never touches it.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		sounds: map[SoundType][]byte{
			SoundMove:    synth(0.08, 0.3, click(440)),
			SoundCapture: synth(0.12, 0.5, click(330)),
			SoundCheck:   synth(0.15, 0.4, tone(880, 0.15)),
			SoundGameEnd: synth(0.4, 0.5, chord(0.4, 261.63, 329.63, 392.00)),
		},
		volume: 0.5,
	}
	am.SetEnabled(enabled)
	return am
}

// wave returns the sample at time t, in [-1, 1] before scaling.
type wave func(i int, t float64) float64

// synth renders a stereo 16-bit little-endian buffer.
func synth(duration, amplitude float64, w wave) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		val := int16(w(i, t) * amplitude * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a percussive wood-on-wood tick.
func click(freq float64) wave {
	return func(i int, t float64) float64 {
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope
	}
}

// tone is a sine with a short attack and linear decay.
func tone(freq, duration float64) wave {
	return func(_ int, t float64) float64 {
		progress := t / duration
		envelope := progress / 0.1
		if progress >= 0.1 {
			envelope = 1.0 - (progress-0.1)/0.9
		}
		return math.Sin(2*math.Pi*freq*t) * envelope
	}
}

// chord mixes freqs with a fade in and out.
func chord(duration float64, freqs ...float64) wave {
	return func(_ int, t float64) float64 {
		progress := t / duration
		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.7 {
			envelope = (1.0 - progress) / 0.3
		}
		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * envelope
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled || am.context == nil {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per call lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled toggles playback, opening the audio context on first use.
func (am *AudioManager) SetEnabled(enabled bool) {
	if enabled && am.context == nil {
		am.context = audio.CurrentContext()
		if am.context == nil {
			am.context = audio.NewContext(sampleRate)
		}
	}
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled && am.context != nil
}
