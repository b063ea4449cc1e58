package input

import "testing"

func TestKeyboardPressDedupe(t *testing.T) {
	var kb Keyboard
	if !kb.Press(KeyA) {
		t.Fatal("first Press(KeyA) = false, want true")
	}
	if kb.Press(KeyA) {
		t.Fatal("second Press(KeyA) = true, want false")
	}
	if got := kb.Pressed(); len(got) != 1 || got[0] != KeyA {
		t.Fatalf("Pressed() = %v, want [A]", got)
	}
}

func TestKeyboardReleaseAbsent(t *testing.T) {
	var kb Keyboard
	kb.Press(KeyA)
	if kb.Release(KeyB) {
		t.Fatal("Release of a key never pressed = true, want false")
	}
	if got := kb.Pressed(); len(got) != 1 {
		t.Fatalf("set size changed by releasing an absent key: %v", got)
	}
}

func TestKeyboardOrderPreserved(t *testing.T) {
	var kb Keyboard
	kb.Press(KeyC)
	kb.Press(KeyA)
	kb.Press(KeyB)
	kb.Release(KeyA)
	want := []Key{KeyC, KeyB}
	got := kb.Pressed()
	if len(got) != len(want) {
		t.Fatalf("Pressed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pressed() = %v, want %v", got, want)
		}
	}
}

func TestKeyboardIsDown(t *testing.T) {
	var kb Keyboard
	kb.Press(KeyEnter)
	if !kb.IsDown(KeyEnter) {
		t.Fatal("IsDown(KeyEnter) = false after Press")
	}
	kb.Release(KeyEnter)
	if kb.IsDown(KeyEnter) {
		t.Fatal("IsDown(KeyEnter) = true after Release")
	}
}

func TestKeyboardPressedIsCopy(t *testing.T) {
	var kb Keyboard
	kb.Press(KeyA)
	got := kb.Pressed()
	got[0] = KeyZ
	if !kb.IsDown(KeyA) || kb.IsDown(KeyZ) {
		t.Fatal("mutating the Pressed() result leaked into the keyboard")
	}
}

func TestKeyCharacterValues(t *testing.T) {
	// Control-character text handling relies on these exact values.
	tests := []struct {
		name string
		got  Key
		want int
	}{
		{"KeyBack", KeyBack, 0x08},
		{"KeyTab", KeyTab, 0x09},
		{"KeyEnter", KeyEnter, 0x0D},
		{"KeyEscape", KeyEscape, 0x1B},
		{"KeySpace", KeySpace, 0x20},
		{"KeyD0", KeyD0, '0'},
		{"KeyD9", KeyD9, '9'},
		{"KeyA", KeyA, 'A'},
		{"KeyZ", KeyZ, 'Z'},
	}
	for _, tt := range tests {
		if int(tt.got) != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, int(tt.got), tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{KeyD7, "D7"},
		{KeyNumPad3, "NumPad3"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyEscape, "Escape"},
		{KeyLeftShift, "LeftShift"},
		{Key(250), "Key(250)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", int(tt.key), got, tt.want)
		}
	}
}
