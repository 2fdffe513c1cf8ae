package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/engine"
)

// Console executes text commands against a running engine. Replies end
// with "OK" or an "ACK [code@0] {command} message" line.
type Console struct {
	engine   *engine.Engine
	platform string
	log      slog.Logger
}

// New creates a console for the engine
func New(e *engine.Engine, platform string, log slog.Logger) *Console {
	if log == nil {
		log = slog.Disabled
	}
	return &Console{engine: e, platform: platform, log: log}
}

// ACK error codes
const (
	ackArg     = 2
	ackUnknown = 5
	ackSystem  = 50
)

func ack(code int, command, msg string) string {
	return fmt.Sprintf("ACK [%d@0] {%s} %s\n", code, command, msg)
}

var commands = map[string]string{
	"ping":     "ping",
	"cd":       "cd init|startup|play N|stop|resume|volume N|first|last|length N|status",
	"joy":      "joy init|shutdown|update [N]|bind",
	"input":    "input game 0|1|text 0|1|key CODE [up]|mackey CODE [up]|touch X Y W H|release|events|status",
	"cvarlist": "cvarlist",
	"get":      "get NAME",
	"set":      "set NAME VALUE",
	"platform": "platform",
	"help":     "help",
}

// Commands returns the top-level command names, sorted
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute processes a single console command
func (c *Console) Execute(line string) string {
	return c.ExecuteContext(context.Background(), line)
}

// ExecuteContext processes a single console command. Commands that run
// engine frames stop when ctx is cancelled.
func (c *Console) ExecuteContext(ctx context.Context, line string) string {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "OK\n"
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]
	c.log.Tracef("command: %s", line)

	switch command {
	case "ping":
		return "OK\n"

	case "cd":
		return c.cmdCD(args)

	case "joy":
		return c.cmdJoy(ctx, args)

	case "input":
		return c.cmdInput(args)

	case "cvarlist":
		return c.cmdCvarList(args)

	case "get":
		return c.cmdGet(args)

	case "set":
		return c.cmdSet(args)

	case "platform":
		return fmt.Sprintf("platform: %s\nstate: %s\nOK\n", c.platform, c.engine.State())

	case "help":
		var b strings.Builder
		for _, name := range Commands() {
			fmt.Fprintf(&b, "usage: %s\n", commands[name])
		}
		b.WriteString("OK\n")
		return b.String()

	default:
		c.log.Debugf("Unknown console command: %s", command)
		return ack(ackUnknown, command, "unknown command")
	}
}
