package textfield

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cursor offsets are rune indices, but the field only ever stops on grapheme
// cluster boundaries so an accent or a ZWJ sequence is never split. Widths
// are always measured per cluster with clusterWidth.

// nextBoundary returns the rune offset just past the cluster starting at pos.
func nextBoundary(value []rune, pos int) int {
	if pos >= len(value) {
		return len(value)
	}
	cluster, _, _, _ := uniseg.StepString(string(value[pos:]), -1)
	n := utf8.RuneCountInString(cluster)
	if n < 1 {
		n = 1
	}
	return pos + n
}

// prevBoundary returns the rune offset where the cluster ending at pos starts.
func prevBoundary(value []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	s := string(value[:pos])
	start, offset := 0, 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		start = offset
		offset += utf8.RuneCountInString(cluster)
		s = rest
		state = newState
	}
	return start
}

// clusterWidth returns the display width of one grapheme cluster.
func clusterWidth(cluster string) int {
	return runewidth.StringWidth(cluster)
}

// columnOf returns the display width of value[from:to], summed per cluster.
func columnOf(value []rune, from, to int) int {
	s := string(value[from:to])
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		width += clusterWidth(cluster)
		s = rest
		state = newState
	}
	return width
}

// offsetAtColumn walks value[from:to] cluster by cluster and returns the rune
// offset of the last boundary whose column does not exceed column.
func offsetAtColumn(value []rune, from, to, column int) int {
	s := string(value[from:to])
	pos := from
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		w := clusterWidth(cluster)
		if width+w > column {
			break
		}
		width += w
		pos += utf8.RuneCountInString(cluster)
		s = rest
		state = newState
	}
	return pos
}
