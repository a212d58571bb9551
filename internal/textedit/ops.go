package textedit

// Line-level helpers operating on one side of the cursor. They mirror the
// State methods below and are exported for hosts that keep the prefix and
// suffix separately.

// DeleteTillStartOfLine drops everything after the last newline in before.
// With no newline the whole prefix goes.
func DeleteTillStartOfLine(before string) string {
	r := []rune(before)
	i := lastIndex(r, '\n')
	if i < 0 {
		return ""
	}
	return string(r[:i+1])
}

// DeleteTillEndOfLine drops everything in after up to, but not including,
// the first newline. With no newline the whole suffix goes.
func DeleteTillEndOfLine(after string) string {
	r := []rune(after)
	i := index(r, '\n')
	if i < 0 {
		return ""
	}
	return string(r[i:])
}

// StartOfLine returns the offset just past the last newline in before, or 0.
func StartOfLine(before string) int {
	return lastIndex([]rune(before), '\n') + 1
}

// EndOfLine returns the offset of the first newline in after, or its length.
func EndOfLine(after string) int {
	r := []rune(after)
	if i := index(r, '\n'); i >= 0 {
		return i
	}
	return len(r)
}

// DeleteWordBackward removes count words before the cursor. The cursor lands
// where the deletion stopped.
func (s State) DeleteWordBackward(count int) State {
	before, after := s.split()
	kept := []rune(DeleteLastWords(string(before), count))
	return join(kept, after)
}

// DeleteToStartOfLine removes the text between the start of the current line
// and the cursor.
func (s State) DeleteToStartOfLine() State {
	before, after := s.split()
	return join([]rune(DeleteTillStartOfLine(string(before))), after)
}

// DeleteToEndOfLine removes the text between the cursor and the end of the
// current line. The cursor does not move.
func (s State) DeleteToEndOfLine() State {
	before, after := s.split()
	return join(before, []rune(DeleteTillEndOfLine(string(after))))
}

// MoveToStartOfLine moves the cursor to the first column of its line.
func (s State) MoveToStartOfLine() State {
	s = s.Clamp()
	s.Cursor = StartOfLine(s.Before())
	return s
}

// MoveToEndOfLine moves the cursor onto the newline ending its line, or to
// the end of the text on the last line.
func (s State) MoveToEndOfLine() State {
	s = s.Clamp()
	s.Cursor += EndOfLine(s.After())
	return s
}

// DeleteForwardChar removes the rune under the cursor. At the end of the
// text it is a no-op.
func (s State) DeleteForwardChar() State {
	before, after := s.split()
	if len(after) == 0 {
		return s.Clamp()
	}
	return join(before, after[1:])
}

// MoveWordBackward moves the cursor to the start of the previous word.
func (s State) MoveWordBackward() State {
	s = s.Clamp()
	s.Cursor = prevWordStart([]rune(s.Value), s.Cursor)
	return s
}

// MoveWordForward moves the cursor to the end of the next word.
func (s State) MoveWordForward() State {
	s = s.Clamp()
	s.Cursor = nextWordEnd([]rune(s.Value), s.Cursor)
	return s
}

// Insert puts text at the cursor and moves the cursor past it.
func (s State) Insert(text string) State {
	before, after := s.split()
	return join(append(before, []rune(text)...), after)
}

// Removed returns the text a deletion took out when it turned before into
// after. Every deletion here removes one contiguous run that starts at the
// resulting cursor, so the run is recovered from the length difference.
// It returns "" when after is not shorter than before.
func Removed(before, after State) string {
	r := []rune(before.Value)
	n := len(r) - after.Len()
	if n <= 0 {
		return ""
	}
	start := clampInt(after.Cursor, 0, len(r))
	end := clampInt(start+n, start, len(r))
	return string(r[start:end])
}

func index(r []rune, target rune) int {
	for i, c := range r {
		if c == target {
			return i
		}
	}
	return -1
}

func lastIndex(r []rune, target rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == target {
			return i
		}
	}
	return -1
}
