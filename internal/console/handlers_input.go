package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/famish99/doomhal/internal/input"
)

// cmdInput handles the 'input' command family, posting key events the way
// the touch overlay and hardware keyboards do
func (c *Console) cmdInput(args []string) string {
	if len(args) == 0 {
		return ack(ackArg, "input", "missing subcommand")
	}

	in := c.engine.Input()
	name := "input " + args[0]
	rest := args[1:]

	switch args[0] {
	case "game", "text":
		if len(rest) != 1 || (rest[0] != "0" && rest[0] != "1") {
			return ack(ackArg, name, "expected 0 or 1")
		}
		if args[0] == "game" {
			in.SetInGame(rest[0] == "1")
		} else {
			in.SetTextInput(rest[0] == "1")
		}
		return "OK\n"

	case "key", "mackey":
		code, pressed, reply := keyArgs(name, rest)
		if reply != "" {
			return reply
		}
		var k input.Key
		var ok bool
		if args[0] == "key" {
			k, ok = in.Keyboard(input.KeyCode(code), pressed)
		} else {
			k, ok = in.MacKeyboard(input.MacKeyCode(code), pressed)
		}
		if !ok {
			return ack(ackArg, name, "unmapped key code")
		}
		return fmt.Sprintf("key: %v\nOK\n", k)

	case "touch":
		if len(rest) != 4 {
			return ack(ackArg, name, "expected X Y W H")
		}
		var v [4]float64
		for i, arg := range rest {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return ack(ackArg, name, "invalid coordinate")
			}
			v[i] = f
		}
		r := in.Touch(v[0], v[1], v[2], v[3])
		return fmt.Sprintf("region: %v\nOK\n", r)

	case "release":
		in.TouchEnd()
		return "OK\n"

	case "events":
		var b strings.Builder
		for _, ev := range in.Events() {
			state := "up"
			if ev.Pressed {
				state = "down"
			}
			fmt.Fprintf(&b, "event: %s %v\n", state, ev.Key)
		}
		b.WriteString("OK\n")
		return b.String()

	case "status":
		return fmt.Sprintf("game: %v\ntext: %v\npending: %d\nOK\n", in.InGame(), in.TextInput(), in.Pending())

	default:
		return ack(ackUnknown, name, "unknown subcommand")
	}
}

// keyArgs parses "CODE [up]". Codes may be decimal or 0x-prefixed hex.
func keyArgs(name string, args []string) (uint16, bool, string) {
	if len(args) == 0 || len(args) > 2 {
		return 0, false, ack(ackArg, name, "expected CODE [up]")
	}
	code, err := strconv.ParseUint(args[0], 0, 16)
	if err != nil {
		return 0, false, ack(ackArg, name, "invalid key code")
	}
	pressed := true
	if len(args) == 2 {
		switch args[1] {
		case "up":
			pressed = false
		case "down":
		default:
			return 0, false, ack(ackArg, name, "expected up or down")
		}
	}
	return uint16(code), pressed, ""
}
