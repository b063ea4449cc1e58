package input

// Keyboard is the ordered set of currently-held keys. The run loop owns
// one instance and mutates it on the loop thread only; anything else
// should treat it as read-only between frames.
type Keyboard struct {
	pressed []Key
}

// Press adds key to the held set, reporting whether it was newly added.
// Repeats while the key is already held return false and leave the set
// unchanged.
func (kb *Keyboard) Press(key Key) bool {
	for _, k := range kb.pressed {
		if k == key {
			return false
		}
	}
	kb.pressed = append(kb.pressed, key)
	return true
}

// Release removes key from the held set, reporting whether it was
// present. Releasing a key that is not held is a no-op.
func (kb *Keyboard) Release(key Key) bool {
	for i, k := range kb.pressed {
		if k == key {
			kb.pressed = append(kb.pressed[:i], kb.pressed[i+1:]...)
			return true
		}
	}
	return false
}

// IsDown reports whether key is currently held.
func (kb *Keyboard) IsDown(key Key) bool {
	for _, k := range kb.pressed {
		if k == key {
			return true
		}
	}
	return false
}

// Pressed returns the held keys in press order. The result is a copy.
func (kb *Keyboard) Pressed() []Key {
	out := make([]Key, len(kb.pressed))
	copy(out, kb.pressed)
	return out
}
