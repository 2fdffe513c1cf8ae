package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/famish99/doomhal/internal/engine"
)

// maxUpdateFrames caps 'joy update N', ten seconds at Doom's tic rate
const maxUpdateFrames = 350

// cmdJoy handles the 'joy' command family
func (c *Console) cmdJoy(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return ack(ackArg, "joy", "missing subcommand")
	}

	joy := c.engine.Joystick()
	name := "joy " + args[0]

	switch args[0] {
	case "init":
		joy.Init()
	case "shutdown":
		joy.Shutdown()
	case "bind":
		joy.BindVariables()
	case "update":
		// update [N] - poll N frames, or one frame outside the engine loop
		n := 1
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 0 {
				return ack(ackArg, name, "invalid frame count")
			}
			if v > maxUpdateFrames {
				return ack(ackArg, name, fmt.Sprintf("frame count above %d", maxUpdateFrames))
			}
			n = v
		}
		if c.engine.State() == engine.StateStopped {
			for i := 0; i < n; i++ {
				joy.Update()
			}
			return "OK\n"
		}
		if _, err := c.engine.RunFrames(ctx, n); err != nil {
			return ack(ackSystem, name, err.Error())
		}
	default:
		return ack(ackUnknown, name, "unknown subcommand")
	}
	return "OK\n"
}
