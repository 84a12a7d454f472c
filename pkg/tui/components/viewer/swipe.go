package viewer

// SwipeThreshold is the minimum horizontal drag distance, in cells, that
// registers as a navigation gesture. Smaller drags are treated as clicks.
const SwipeThreshold = 40

// Swipe is the navigation action derived from a horizontal drag.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipePrev
	SwipeNext
)

// SwipeFor maps a horizontal drag delta (release minus press column) to a
// navigation action: dragging right goes to the previous image, dragging
// left to the next.
func SwipeFor(delta int) Swipe {
	switch {
	case delta > SwipeThreshold:
		return SwipePrev
	case delta < -SwipeThreshold:
		return SwipeNext
	default:
		return SwipeNone
	}
}
