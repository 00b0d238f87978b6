package notes

// Tuning constants
const (
	// ReferenceA4 is the MIDI note number of A4, the standard tuning reference.
	ReferenceA4 = 69

	// ReferenceLegacy is the reference index used by the first table
	// generator, which placed 440 Hz at index 48.
	ReferenceLegacy = 48

	// ReferenceFrequency is the frequency of the reference note in Hz.
	ReferenceFrequency = 440.0

	semitonesPerOctave = 12
)

// Table layout
const (
	// Count is the number of MIDI notes, and so the length of a note table.
	Count = 128

	// DefaultFileName is the file name the note table is written to.
	DefaultFileName = "notes.table"

	// octaveOffset maps note/12 to scientific pitch octaves (note 60 is C4).
	octaveOffset = 1
)
