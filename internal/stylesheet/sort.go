// Package stylesheet holds the synthesizer UI stylesheet and orders its
// rule blocks for review.
package stylesheet

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// BlockSeparator separates rule blocks.
const BlockSeparator = "\n\n"

var (
	// ErrEmptyBlock is returned for blocks holding only whitespace.
	ErrEmptyBlock = errors.New("stylesheet: empty block")

	// ErrUnkeyableBlock is returned when a block's selector is a single non-letter rune.
	ErrUnkeyableBlock = errors.New("stylesheet: block selector has no sort key")
)

//go:embed anthem.style
var defaultStyle string

// Default returns the embedded stylesheet.
func Default() string {
	return defaultStyle
}

type keyedBlock struct {
	key   rune
	block string
}

// Sort splits blob into blocks, orders them by SortKey and joins them again.
// Blocks with equal keys keep their input order.
func Sort(blob string) (string, error) {
	blocks := strings.Split(blob, BlockSeparator)
	keyed := make([]keyedBlock, len(blocks))
	for i, b := range blocks {
		k, err := SortKey(b)
		if err != nil {
			return "", fmt.Errorf("block %d: %w", i, err)
		}
		keyed[i] = keyedBlock{key: k, block: b}
	}

	slices.SortStableFunc(keyed, func(a, b keyedBlock) int {
		return int(a.key) - int(b.key)
	})

	for i, kb := range keyed {
		blocks[i] = kb.block
	}
	return strings.Join(blocks, BlockSeparator), nil
}

// SortKey returns the first rune of the block's first token when it is a
// letter, and the token's second rune otherwise, so "#VolumeUi" keys on 'V'
// and "$black:" on 'b'.
func SortKey(block string) (rune, error) {
	fields := strings.Fields(block)
	if len(fields) == 0 {
		return 0, ErrEmptyBlock
	}
	selector := []rune(fields[0])
	if unicode.IsLetter(selector[0]) {
		return selector[0], nil
	}
	if len(selector) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnkeyableBlock, fields[0])
	}
	return selector[1], nil
}

// Selectors returns the first token of every block, in order.
func Selectors(blob string) []string {
	blocks := strings.Split(blob, BlockSeparator)
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if fields := strings.Fields(b); len(fields) > 0 {
			out = append(out, fields[0])
		}
	}
	return out
}
