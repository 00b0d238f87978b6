// Package comment renders text blocks as star-bordered source comments.
//
// A block such as
//
//	/*! Notetable.hpp
//	    Lookup table of note frequencies.
//	*/
//
// becomes
//
//	/*! Notetable.hpp**************************
//	* Lookup table of note frequencies.
//	*******************************************/
//
// where the border width is the longest line plus starPadding.
package comment

import (
	"strings"
	"unicode/utf8"
)

const (
	// OpenMarker starts a comment block that FindAndReplace rewrites.
	OpenMarker = "/*!"

	// CloseMarker ends a comment block.
	CloseMarker = "*/"

	starPadding = 10
	linePrefix  = "* "
	closer      = "/"
	star        = "*"
)

// Stars renders block with a star border. Every line is trimmed, the first
// line is padded with stars to the border width, interior lines get a "* "
// prefix and the last line is replaced by a row of stars ending in "/".
// A single-line block therefore renders as the closing row alone.
func Stars(block string) string {
	lines := strings.Split(block, "\n")
	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
		width = max(width, utf8.RuneCountInString(lines[i]))
	}
	width += starPadding

	lines[0] = padStars(lines[0], width)
	last := len(lines) - 1
	for i := 1; i < last; i++ {
		lines[i] = linePrefix + lines[i]
	}
	lines[last] = strings.Repeat(star, width) + closer

	return strings.Join(lines, "\n")
}

func padStars(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(star, width-n)
}

// FindAndReplace renders every OpenMarker ... CloseMarker block in src with
// Stars and trims every line of the result. A block without a closing marker
// is left as it is.
func FindAndReplace(src string) string {
	var sb strings.Builder
	rest := src
	for {
		start := strings.Index(rest, OpenMarker)
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+len(OpenMarker):], CloseMarker)
		if end < 0 {
			break
		}
		end += start + len(OpenMarker) + len(CloseMarker)

		sb.WriteString(rest[:start])
		sb.WriteString(Stars(rest[start:end]))
		rest = rest[end:]
	}
	sb.WriteString(rest)

	return trimLines(sb.String())
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
