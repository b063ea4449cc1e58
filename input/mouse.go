package input

// Button identifies one of the five portable mouse buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonX1:
		return "X1"
	case ButtonX2:
		return "X2"
	}
	return "Button(?)"
}

// WheelNotch is the delta recorded per wheel notch, matching the usual
// Windows WHEEL_DELTA convention consumers expect to divide by.
const WheelNotch = 120

// Mouse is the cursor, button and wheel state singleton owned by the run
// loop. Mutation happens on the loop thread only.
//
// Wheel totals accumulate for the lifetime of the loop and are never
// reset automatically; consumers either diff successive State snapshots
// or call ClearWheel explicitly.
type Mouse struct {
	x, y    int
	buttons [buttonCount]bool
	wheelX  int
	wheelY  int
}

// MouseState is a value snapshot of the mouse singleton.
type MouseState struct {
	X, Y int

	Left   bool
	Middle bool
	Right  bool
	X1     bool
	X2     bool

	WheelX int
	WheelY int
}

// MoveTo overwrites the cursor position.
func (m *Mouse) MoveTo(x, y int) {
	m.x, m.y = x, y
}

// SetButton records button as pressed or released. Buttons outside the
// five known ones are ignored.
func (m *Mouse) SetButton(b Button, down bool) {
	if b < ButtonLeft || b >= buttonCount {
		return
	}
	m.buttons[b] = down
}

// Scroll accumulates whole wheel notches, scaled by WheelNotch.
func (m *Mouse) Scroll(notchesX, notchesY int) {
	m.wheelX += notchesX * WheelNotch
	m.wheelY += notchesY * WheelNotch
}

// ClearWheel resets both accumulated wheel totals to zero.
func (m *Mouse) ClearWheel() {
	m.wheelX, m.wheelY = 0, 0
}

// Position returns the current cursor position.
func (m *Mouse) Position() (x, y int) {
	return m.x, m.y
}

// IsDown reports whether b is currently pressed.
func (m *Mouse) IsDown(b Button) bool {
	if b < ButtonLeft || b >= buttonCount {
		return false
	}
	return m.buttons[b]
}

// Wheel returns the accumulated wheel totals.
func (m *Mouse) Wheel() (x, y int) {
	return m.wheelX, m.wheelY
}

// State returns a value snapshot of the full mouse state.
func (m *Mouse) State() MouseState {
	return MouseState{
		X:      m.x,
		Y:      m.y,
		Left:   m.buttons[ButtonLeft],
		Middle: m.buttons[ButtonMiddle],
		Right:  m.buttons[ButtonRight],
		X1:     m.buttons[ButtonX1],
		X2:     m.buttons[ButtonX2],
		WheelX: m.wheelX,
		WheelY: m.wheelY,
	}
}
