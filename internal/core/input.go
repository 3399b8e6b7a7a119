package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionConfirm           // Enter
	ActionBack              // B, Escape
	ActionRestart           // R: same board again
	ActionRegenerate        // N: new board
	ActionPause             // P
	ActionQuit              // Q, Ctrl+C
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionRegenerate:
		return "Regenerate"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer gesture.
type PointerKind uint8

const (
	PointerNone    PointerKind = iota
	PointerPress               // Button went down
	PointerDrag                // Moved while held
	PointerRelease             // Button went up
)

// PointerEvent is a mouse event in screen cells.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame is everything the player did during one tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent // In arrival order
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddPointer queues a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = f.Pointer[:0]
}
