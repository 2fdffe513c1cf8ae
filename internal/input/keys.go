// Package input translates touch and keyboard input from the Apple front
// ends into Doom key events.
package input

import "fmt"

// Key is a Doom key code as posted to the engine's key queue
type Key uint8

const (
	KeyTab        Key = 9
	KeyEnter      Key = 13
	KeyEscape     Key = 27
	KeySpace      Key = ' '
	KeyBackspace  Key = 0x7f
	KeyRCtrl      Key = 0x80 + 0x1d
	KeyRShift     Key = 0x80 + 0x36
	KeyStrafeL    Key = 0xa0
	KeyStrafeR    Key = 0xa1
	KeyUse        Key = 0xa2
	KeyFire       Key = 0xa3
	KeyLeftArrow  Key = 0xac
	KeyUpArrow    Key = 0xad
	KeyRightArrow Key = 0xae
	KeyDownArrow  Key = 0xaf
)

var keyNames = map[Key]string{
	KeyTab:        "tab",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeySpace:      "space",
	KeyBackspace:  "backspace",
	KeyRCtrl:      "rctrl",
	KeyRShift:     "rshift",
	KeyStrafeL:    "strafe_l",
	KeyStrafeR:    "strafe_r",
	KeyUse:        "use",
	KeyFire:       "fire",
	KeyLeftArrow:  "left",
	KeyUpArrow:    "up",
	KeyRightArrow: "right",
	KeyDownArrow:  "down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > ' ' && k < 0x7f {
		return string(rune(k))
	}
	return fmt.Sprintf("0x%02x", uint8(k))
}
