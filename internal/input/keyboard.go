package input

// KeyCode is a USB HID keyboard usage code, as reported by hardware
// keyboards attached to iOS devices
type KeyCode uint16

const (
	CodeA         KeyCode = 0x04
	CodeE         KeyCode = 0x08
	CodeZ         KeyCode = 0x1d
	Code1         KeyCode = 0x1e
	Code9         KeyCode = 0x26
	Code0         KeyCode = 0x27
	CodeEnter     KeyCode = 0x28
	CodeEscape    KeyCode = 0x29
	CodeBackspace KeyCode = 0x2a
	CodeTab       KeyCode = 0x2b
	CodeSpace     KeyCode = 0x2c
	CodeRight     KeyCode = 0x4f
	CodeLeft      KeyCode = 0x50
	CodeDown      KeyCode = 0x51
	CodeUp        KeyCode = 0x52
	CodeLCtrl     KeyCode = 0xe0
	CodeLShift    KeyCode = 0xe1
	CodeRCtrl     KeyCode = 0xe4
	CodeRShift    KeyCode = 0xe5
)

// KeyFor maps a HID key code to a Doom key. Space and E fire and use in
// play but type their characters while a text field (such as a savegame
// name) is being edited. The second result is false for unmapped keys.
func KeyFor(code KeyCode, textInput bool) (Key, bool) {
	switch code {
	case CodeEnter:
		return KeyEnter, true
	case CodeEscape:
		return KeyEscape, true
	case CodeTab:
		return KeyTab, true
	case CodeSpace:
		if textInput {
			return KeySpace, true
		}
		return KeyFire, true
	case CodeE:
		if textInput {
			return 'e', true
		}
		return KeyUse, true
	case CodeLeft:
		return KeyLeftArrow, true
	case CodeRight:
		return KeyRightArrow, true
	case CodeUp:
		return KeyUpArrow, true
	case CodeDown:
		return KeyDownArrow, true
	case CodeLShift, CodeRShift:
		return KeyRShift, true
	case CodeLCtrl, CodeRCtrl:
		return KeyRCtrl, true
	case CodeBackspace:
		return KeyBackspace, true
	case Code0:
		return '0', true
	}

	switch {
	case code >= CodeA && code <= CodeZ:
		return Key('a' + (code - CodeA)), true
	case code >= Code1 && code <= Code9:
		return Key('1' + (code - Code1)), true
	}
	return 0, false
}

// MacKeyCode is an AppKit virtual key code
type MacKeyCode uint16

var macKeys = map[MacKeyCode]Key{
	36:  KeyEnter,
	76:  KeyEnter, // keypad enter
	48:  KeyTab,
	14:  KeyUse, // E
	123: KeyLeftArrow,
	124: KeyRightArrow,
	125: KeyDownArrow,
	126: KeyUpArrow,
	49:  KeyFire, // space
	53:  KeyEscape,
	56:  KeyRShift, // left shift
	60:  KeyRShift,
	18:  '1',
	19:  '2',
	20:  '3',
	21:  '4',
	23:  '5',
	22:  '6',
	26:  '7',
	28:  '8',
	25:  '9',
	29:  '0',
}

// MacKeyFor maps a macOS virtual key code to a Doom key
func MacKeyFor(code MacKeyCode) (Key, bool) {
	k, ok := macKeys[code]
	return k, ok
}
