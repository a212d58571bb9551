package textedit

// DefaultKillRingSize is the number of kills remembered when no size is given.
const DefaultKillRingSize = 10

// KillDirection tells which side of the cursor a kill removed.
type KillDirection int

const (
	KillBackward KillDirection = iota // text before the cursor (ctrl+w, ctrl+u)
	KillForward                       // text after the cursor (ctrl+k)
)

// KillRing remembers recently killed text for yanking.
//
// Kills recorded back to back are merged into one entry, the way readline
// does it: a backward kill prepends, a forward kill appends. Call Break when
// any other command runs so the next kill starts a fresh entry.
type KillRing struct {
	entries  []string // oldest first
	size     int
	yank     int // index of the entry the last Yank/Rotate returned
	chaining bool
}

// NewKillRing returns an empty ring holding at most size entries.
func NewKillRing(size int) *KillRing {
	if size < 1 {
		size = DefaultKillRingSize
	}
	return &KillRing{size: size}
}

// Record saves killed text. Empty text is ignored and does not break a chain.
func (k *KillRing) Record(text string, dir KillDirection) {
	if text == "" {
		return
	}
	if k.chaining && len(k.entries) > 0 {
		last := len(k.entries) - 1
		if dir == KillBackward {
			k.entries[last] = text + k.entries[last]
		} else {
			k.entries[last] += text
		}
	} else {
		k.entries = append(k.entries, text)
		if len(k.entries) > k.size {
			k.entries = k.entries[len(k.entries)-k.size:]
		}
	}
	k.chaining = true
	k.yank = len(k.entries) - 1
}

// Break ends the current kill chain.
func (k *KillRing) Break() {
	k.chaining = false
}

// Yank returns the most recent kill.
func (k *KillRing) Yank() (string, bool) {
	k.chaining = false
	if len(k.entries) == 0 {
		return "", false
	}
	k.yank = len(k.entries) - 1
	return k.entries[k.yank], true
}

// Rotate steps to the kill before the one last yanked, wrapping around to the
// newest after the oldest.
func (k *KillRing) Rotate() (string, bool) {
	k.chaining = false
	if len(k.entries) == 0 {
		return "", false
	}
	k.yank--
	if k.yank < 0 {
		k.yank = len(k.entries) - 1
	}
	return k.entries[k.yank], true
}

// Len returns the number of stored kills.
func (k *KillRing) Len() int {
	return len(k.entries)
}
