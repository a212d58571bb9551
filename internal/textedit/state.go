package textedit

// State is an editable text buffer with a cursor.
//
// Cursor is a rune offset into Value and always satisfies
// 0 <= Cursor <= RuneCount(Value) once the State came from New or Clamp.
type State struct {
	Value  string
	Cursor int
}

// New returns a State for value with the cursor clamped into range.
func New(value string, cursor int) State {
	return State{Value: value, Cursor: cursor}.Clamp()
}

// Clamp returns s with the cursor moved into [0, Len()].
func (s State) Clamp() State {
	s.Cursor = clampInt(s.Cursor, 0, s.Len())
	return s
}

// Len returns the length of the text in runes.
func (s State) Len() int {
	return len([]rune(s.Value))
}

// Before returns the text preceding the cursor.
func (s State) Before() string {
	r := []rune(s.Value)
	return string(r[:clampInt(s.Cursor, 0, len(r))])
}

// After returns the text from the cursor to the end.
func (s State) After() string {
	r := []rune(s.Value)
	return string(r[clampInt(s.Cursor, 0, len(r)):])
}

// split returns the runes before and after the cursor. The slices are fresh
// copies so callers can append to them freely.
func (s State) split() (before, after []rune) {
	r := []rune(s.Value)
	pos := clampInt(s.Cursor, 0, len(r))
	before = append([]rune(nil), r[:pos]...)
	after = append([]rune(nil), r[pos:]...)
	return before, after
}

// join builds a State from a prefix and suffix with the cursor between them.
func join(before, after []rune) State {
	return State{
		Value:  string(before) + string(after),
		Cursor: len(before),
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
