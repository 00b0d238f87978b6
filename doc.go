// Package anthemtab generates the lookup tables a software synthesizer
// loads at startup.
//
// # Tables
//
//   - Note table: the frequency of each of the 128 MIDI notes in equal
//     temperament, one value per line, with A4 (note 69) at 440 Hz. A legacy
//     layout placing 440 Hz at index 48 is available via [ReferenceLegacy].
//   - Pan tables: five pan laws sampled at 201 positions from hard left to
//     hard right, one "left right" pair per line. See [PanCurve].
//
// Pan tables are accompanied by a manifest, pantables.md, holding the table
// length followed by the table names, which loaders use to find the tables.
//
// # Quick Start
//
// Write every table into a directory:
//
//	out, err := anthemtab.Generate(&anthemtab.Options{Dir: "rsc"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.NotesPath, out.PanPaths)
//
// Or compute tables in memory:
//
//	freqs := anthemtab.NoteFrequencies(anthemtab.ReferenceA4)
//	left, right, err := anthemtab.PanGains(anthemtab.PanSineScaled)
//
// # Text format
//
// Values are written in shortest round-trip notation with at least one
// fractional digit (440 is written "440.0"). Exactly representable values
// match the tables the synthesizer ships; computed values such as sine gains
// may differ from them in the last digit.
package anthemtab
