package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep generates a wave whose frequency glides linearly from one value
// to another over its duration. A constant tone is a sweep with from == to.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewSweep creates a gliding oscillator.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), wave: wave, rate: rate, seed: 0x2545f491}
}

// NewTone creates a constant-pitch oscillator.
func NewTone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			// xorshift keeps effects reproducible
			s.seed ^= s.seed << 13
			s.seed ^= s.seed >> 17
			s.seed ^= s.seed << 5
			val = float64(s.seed)/float64(math.MaxUint32)*2 - 1
		}

		// Linear fade-out
		val *= 1 - float64(s.pos)/float64(s.total)

		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales a streamer; vol is linear in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect returns the sound for a game event, or nil for silent events.
func Effect(kind core.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case core.EventBulletFired:
		return withVolume(NewSweep(1400, 500, 90*time.Millisecond, WaveSquare, rate), 0.25)
	case core.EventAliensDestroyed:
		return withVolume(NewTone(0, 140*time.Millisecond, WaveNoise, rate), 0.35)
	case core.EventShipHit:
		return withVolume(beep.Seq(
			NewTone(0, 120*time.Millisecond, WaveNoise, rate),
			NewSweep(180, 60, 350*time.Millisecond, WaveSaw, rate),
		), 0.4)
	case core.EventLevelCleared:
		return withVolume(beep.Seq(
			NewTone(523.25, 90*time.Millisecond, WaveSquare, rate),
			NewTone(659.25, 90*time.Millisecond, WaveSquare, rate),
			NewTone(783.99, 160*time.Millisecond, WaveSquare, rate),
		), 0.25)
	case core.EventGameStarted:
		return withVolume(beep.Seq(
			NewTone(392.00, 80*time.Millisecond, WaveSine, rate),
			NewTone(783.99, 120*time.Millisecond, WaveSine, rate),
		), 0.4)
	case core.EventGameOver:
		return withVolume(beep.Seq(
			NewTone(392.00, 200*time.Millisecond, WaveSaw, rate),
			NewTone(311.13, 200*time.Millisecond, WaveSaw, rate),
			NewTone(261.63, 400*time.Millisecond, WaveSaw, rate),
		), 0.3)
	default:
		return nil
	}
}
