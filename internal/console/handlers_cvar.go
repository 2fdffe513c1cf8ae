package console

import (
	"fmt"
	"strings"
)

// cmdCvarList lists bound variables with their values
func (c *Console) cmdCvarList(args []string) string {
	cvars := c.engine.Cvars()
	var b strings.Builder
	for _, name := range cvars.Names() {
		v, err := cvars.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", name, v)
	}
	fmt.Fprintf(&b, "count: %d\nOK\n", cvars.Len())
	return b.String()
}

// cmdGet handles 'get NAME'
func (c *Console) cmdGet(args []string) string {
	if len(args) != 1 {
		return ack(ackArg, "get", "expected variable name")
	}
	v, err := c.engine.Cvars().Get(args[0])
	if err != nil {
		return ack(ackArg, "get", err.Error())
	}
	return fmt.Sprintf("%s: %s\nOK\n", args[0], v)
}

// cmdSet handles 'set NAME VALUE'
func (c *Console) cmdSet(args []string) string {
	if len(args) != 2 {
		return ack(ackArg, "set", "expected variable name and value")
	}
	if err := c.engine.Cvars().Set(args[0], args[1]); err != nil {
		return ack(ackArg, "set", err.Error())
	}
	return "OK\n"
}
