package audition

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WriteWAV renders the sweep and writes it to path as a PCM WAV file.
func WriteWAV(path string, cfg RenderConfig) (frames int, err error) {
	buf, err := Render(cfg)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	enc := wav.NewEncoder(f, cfg.SampleRate, cfg.BitDepth, stereoChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return len(buf.Data) / stereoChannels, nil
}
