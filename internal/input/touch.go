package input

// Region is one of the touch zones of the on-screen overlay. The screen is
// split into a 3x3 grid: the top two rows steer (left, up, right) and the
// bottom row holds action, down and fire.
type Region int

const (
	RegionLeft Region = iota
	RegionRight
	RegionUp
	RegionDown
	RegionAction
	RegionFire
)

func (r Region) String() string {
	switch r {
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	case RegionUp:
		return "up"
	case RegionDown:
		return "down"
	case RegionAction:
		return "action"
	case RegionFire:
		return "fire"
	}
	return "unknown"
}

// RegionAt returns the region containing point (x, y) on a w by h screen.
// Points outside the screen fall into the nearest edge cell.
func RegionAt(x, y, w, h float64) Region {
	thirdW, thirdH := w/3, h/3

	row := 3
	if y < thirdH {
		row = 1
	} else if y < 2*thirdH {
		row = 2
	}

	col := 3
	if x < thirdW {
		col = 1
	} else if x < 2*thirdW {
		col = 2
	}

	if row < 3 {
		switch col {
		case 1:
			return RegionLeft
		case 2:
			return RegionUp
		default:
			return RegionRight
		}
	}
	switch col {
	case 1:
		return RegionAction
	case 2:
		return RegionDown
	default:
		return RegionFire
	}
}

// RegionKey returns the key a region presses. Action and fire act as
// enter and escape while the menus are up.
func RegionKey(r Region, inGame bool) Key {
	switch r {
	case RegionLeft:
		return KeyLeftArrow
	case RegionRight:
		return KeyRightArrow
	case RegionDown:
		return KeyDownArrow
	case RegionAction:
		if inGame {
			return KeyUse
		}
		return KeyEnter
	case RegionFire:
		if inGame {
			return KeyFire
		}
		return KeyEscape
	}
	return KeyUpArrow
}
