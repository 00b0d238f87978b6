package anthemtab

import (
	"github.com/anthem-audio/anthem-tools/internal/notes"
	"github.com/anthem-audio/anthem-tools/internal/pan"
)

// Note table constants.
const (
	// ReferenceA4 places 440 Hz at MIDI note 69.
	ReferenceA4 = notes.ReferenceA4

	// ReferenceLegacy places 440 Hz at index 48.
	ReferenceLegacy = notes.ReferenceLegacy

	// NoteCount is the number of entries in a note table.
	NoteCount = notes.Count
)

// Pan table constants.
const (
	// PanPositions is the number of rows in a pan table.
	PanPositions = pan.Positions

	// EqualPowerScale is the factor applied to the scaled pan curves.
	EqualPowerScale = pan.EqualPowerScale
)

// Default file names.
const (
	DefaultNotesFile = notes.DefaultFileName
	DefaultPanSuffix = pan.DefaultSuffix
	ManifestName     = pan.ManifestName
)
