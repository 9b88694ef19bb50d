package core

// Action is a semantic input, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // break the group under the cursor
	ActionBack    // open or close the scoreboard
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Pointer is a mouse click in screen cell coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame is the input gathered between two ticks. The zero value is
// an empty frame.
type InputFrame struct {
	actions uint16

	// Click is the last pointer click of the frame, nil if none.
	Click *Pointer
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions |= 1 << a
}

// Has reports whether a was pressed.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// Empty reports whether the frame holds no action and no click.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && f.Click == nil
}

// SetClick records a click at screen cell (x, y). A later click in the
// same frame replaces it.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Pointer{X: x, Y: y}
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Click = nil
}
