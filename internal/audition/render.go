// Package audition renders a test tone swept across the stereo field through
// a pan table, so a pan law can be judged by ear.
package audition

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"

	"github.com/anthem-audio/anthem-tools/internal/pan"
	"github.com/anthem-audio/anthem-tools/internal/simdops"
)

// ErrInvalidRender is returned for unusable render settings.
var ErrInvalidRender = errors.New("audition: invalid render settings")

// RenderConfig describes a pan sweep.
type RenderConfig struct {
	// Table supplies the left/right gains.
	Table *pan.Table

	// Frequency of the sine tone in Hz.
	Frequency float64

	SampleRate int
	BitDepth   int
	Seconds    float64

	// Amplitude of the tone before panning, in (0, 1].
	Amplitude float64
}

// Validate checks the settings.
func (c *RenderConfig) Validate() error {
	switch {
	case c.Table == nil || c.Table.Len() == 0:
		return fmt.Errorf("%w: no pan table", ErrInvalidRender)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidRender, c.SampleRate)
	case !(c.Frequency > 0) || c.Frequency >= float64(c.SampleRate)/2:
		return fmt.Errorf("%w: frequency %v Hz outside (0, %d)", ErrInvalidRender, c.Frequency, c.SampleRate/2)
	case !(c.Seconds > 0) || c.Seconds > maxSeconds:
		return fmt.Errorf("%w: duration %vs", ErrInvalidRender, c.Seconds)
	case !(c.Amplitude > 0) || c.Amplitude > 1:
		return fmt.Errorf("%w: amplitude %v", ErrInvalidRender, c.Amplitude)
	}
	if _, err := maxValue(c.BitDepth); err != nil {
		return err
	}
	if c.frames() < minFrames {
		return fmt.Errorf("%w: fewer than %d frames", ErrInvalidRender, minFrames)
	}
	return nil
}

func (c *RenderConfig) frames() int {
	return int(c.Seconds * float64(c.SampleRate))
}

// Sweep returns the planar left and right channels of the sweep in [-1, 1].
// The first frame is panned hard left and the last hard right.
func Sweep(cfg RenderConfig) (left, right []float64, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	n := cfg.frames()
	left = make([]float64, n)
	right = make([]float64, n)

	step := 2 * math.Pi * cfg.Frequency / float64(cfg.SampleRate)
	span := pan.MaxValue - pan.MinValue
	for i := range n {
		value := pan.MinValue + span*float64(i)/float64(n-1)
		gains, err := cfg.Table.Interpolate(value)
		if err != nil {
			return nil, nil, fmt.Errorf("frame %d: %w", i, err)
		}
		s := cfg.Amplitude * math.Sin(step*float64(i))
		left[i] = s * gains.Left
		right[i] = s * gains.Right
	}
	return left, right, nil
}

// Render returns the sweep as an interleaved stereo PCM buffer at the
// configured bit depth.
func Render(cfg RenderConfig) (*audio.IntBuffer, error) {
	left, right, err := Sweep(cfg)
	if err != nil {
		return nil, err
	}
	maxVal, err := maxValue(cfg.BitDepth)
	if err != nil {
		return nil, err
	}

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: stereoChannels,
			SampleRate:  cfg.SampleRate,
		},
		Data:           quantize(simdops.Interleave(left, right), maxVal),
		SourceBitDepth: cfg.BitDepth,
	}, nil
}

// quantize clamps samples to [-1, 1] and scales them to integers.
func quantize(samples []float64, maxVal float64) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		s = max(-1, min(1, s))
		out[i] = int(s * maxVal)
	}
	return out
}

// maxValue returns the maximum sample value for the given bit depth.
func maxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: bit depth %d", ErrInvalidRender, bitDepth)
	}
}
