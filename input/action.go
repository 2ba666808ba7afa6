package input

// Action is a navigation intent produced from one or more physical keys
type Action uint8

const (
	ActionNone Action = iota
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut
	ActionReset
	ActionQuit
	ActionMarkSet  // prefix, next letter names the mark
	ActionMarkJump // prefix, next letter names the mark
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:     "none",
	ActionPanUp:    "pan_up",
	ActionPanDown:  "pan_down",
	ActionPanLeft:  "pan_left",
	ActionPanRight: "pan_right",
	ActionZoomIn:   "zoom_in",
	ActionZoomOut:  "zoom_out",
	ActionReset:    "reset",
	ActionQuit:     "quit",
	ActionMarkSet:  "mark_set",
	ActionMarkJump: "mark_jump",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions is a set of actions, one bit per Action
type Actions uint16

// Has reports whether a is in the set
func (s Actions) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set plus a
func (s Actions) With(a Action) Actions {
	return s | 1<<a
}

// Without returns the set minus every action in other
func (s Actions) Without(other Actions) Actions {
	return s &^ other
}

// Scroll is the single zoom step honored per frame
type Scroll int8

const (
	ScrollNone Scroll = 0
	ScrollUp   Scroll = 1  // zoom in
	ScrollDown Scroll = -1 // zoom out
)

// Direction is a unit step in pixel space, Y growing downward
type Direction struct {
	DX, DY int
}

// PanDirections lists pan actions in application order with their unit vectors
var PanDirections = [...]struct {
	Action Action
	Dir    Direction
}{
	{ActionPanUp, Direction{0, -1}},
	{ActionPanDown, Direction{0, 1}},
	{ActionPanLeft, Direction{-1, 0}},
	{ActionPanRight, Direction{1, 0}},
}

// MarkKind selects what a mark operation does
type MarkKind uint8

const (
	MarkNone MarkKind = iota
	MarkSet
	MarkJump
)

// MarkOp stores or recalls the viewport under a letter a-z
type MarkOp struct {
	Kind MarkKind
	Name rune
}

// IsMarkName reports whether r can name a mark
func IsMarkName(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Frame is the per-frame navigation snapshot consumed by the viewport
type Frame struct {
	// Scroll is the first zoom event of the frame, wheel or key
	Scroll Scroll

	// Edges holds actions whose key went from released to pressed this frame
	Edges Actions

	// Mark is the first completed mark operation of the frame
	Mark MarkOp

	// Quit is set whenever a quit key was seen, edge or not
	Quit bool

	// Resized is set when the terminal reported a new size
	Resized bool
}
