package console

import (
	"fmt"
	"strconv"

	"github.com/famish99/doomhal/internal/hal"
)

// cmdCD handles the 'cd' command family
func (c *Console) cmdCD(args []string) string {
	if len(args) == 0 {
		return ack(ackArg, "cd", "missing subcommand")
	}

	music := c.engine.Music()
	sub := args[0]
	name := "cd " + sub

	switch sub {
	case "init":
		return statusReply(name, music.Init())

	case "startup":
		music.PrintStartup()
		return "OK\n"

	case "play":
		track, reply := intArg(name, args[1:])
		if reply != "" {
			return reply
		}
		return errReply(name, c.engine.PlayTrack(track))

	case "stop":
		return errReply(name, c.engine.StopMusic())

	case "resume":
		return errReply(name, c.engine.ResumeMusic())

	case "volume":
		level, reply := intArg(name, args[1:])
		if reply != "" {
			return reply
		}
		return errReply(name, c.engine.SetMusicVolume(level))

	case "first":
		return fmt.Sprintf("first: %d\nOK\n", music.FirstTrack())

	case "last":
		return fmt.Sprintf("last: %d\nOK\n", music.LastTrack())

	case "length":
		track, reply := intArg(name, args[1:])
		if reply != "" {
			return reply
		}
		return fmt.Sprintf("length: %d\nOK\n", music.TrackLength(track))

	case "status":
		return fmt.Sprintf("error: %d\nfirst: %d\nlast: %d\nOK\n",
			int(music.Err()), music.FirstTrack(), music.LastTrack())

	default:
		return ack(ackUnknown, name, "unknown subcommand")
	}
}

// intArg parses the single integer argument of a command. Any value is
// accepted; the drivers do their own range handling.
func intArg(name string, args []string) (int, string) {
	if len(args) != 1 {
		return 0, ack(ackArg, name, "expected one integer argument")
	}
	arg := args[0]
	if unquoted, err := strconv.Unquote(arg); err == nil {
		arg = unquoted
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, ack(ackArg, name, "invalid integer")
	}
	return n, ""
}

func statusReply(name string, s hal.Status) string {
	return errReply(name, hal.Check(name, s))
}

func errReply(name string, err error) string {
	if err != nil {
		return ack(ackSystem, name, err.Error())
	}
	return "OK\n"
}
