package audition

// Output format
const (
	stereoChannels = 2
	wavFormatPCM   = 1 // WAVE_FORMAT_PCM

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// Render limits
const (
	minFrames  = 2     // a sweep needs distinct start and end positions
	maxSeconds = 600.0 // longest render accepted
)
