package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-mandel/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// envelope applies a linear attack/release and fixed gain to a finite streamer of known length
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
	gain    float64
}

// Attack and release are each capped at half the tone length
func newEnvelope(s beep.Streamer, total int) *envelope {
	half := max(1, total/2)
	return &envelope{
		s:       s,
		total:   total,
		attack:  min(half, max(1, sampleRate.N(constant.CueAttack))),
		release: min(half, max(1, sampleRate.N(constant.CueRelease))),
		gain:    constant.CueGain,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		amp := e.gain
		if e.pos < e.attack {
			amp *= float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; remaining < e.release {
			amp *= float64(remaining) / float64(e.release)
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

// tone returns a shaped sine of the given frequency and duration
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(d)
	return newEnvelope(beep.Take(n, sine), n), nil
}

// notePair plays two tones separated by a short gap
func notePair(first, second float64) (beep.Streamer, error) {
	a, err := tone(first, constant.ZoomNoteDuration)
	if err != nil {
		return nil, err
	}
	b, err := tone(second, constant.ZoomNoteDuration)
	if err != nil {
		return nil, err
	}
	return beep.Seq(a, beep.Silence(sampleRate.N(constant.ZoomGap)), b), nil
}

// chord mixes simultaneous tones; CueGain keeps the sum in range
func chord(freqs []float64, d time.Duration) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		t, err := tone(f, d)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Mix(parts...), nil
}

// cueStreamer builds a fresh finite streamer for c
func cueStreamer(c Cue) (beep.Streamer, error) {
	switch c {
	case CueZoomIn:
		return notePair(constant.ZoomLowFreq, constant.ZoomHighFreq)
	case CueZoomOut:
		return notePair(constant.ZoomHighFreq, constant.ZoomLowFreq)
	case CuePan:
		return tone(constant.PanClickFreq, constant.PanClickDuration)
	case CueReset:
		return chord(constant.ResetChordFreqs[:], constant.ResetChordDuration)
	case CueMarkSet:
		return tone(constant.MarkSetFreq, constant.MarkNoteDuration)
	case CueMarkJump:
		return tone(constant.MarkJumpFreq, constant.MarkNoteDuration)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCue, int(c))
	}
}
