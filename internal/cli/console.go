package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/famish99/doomhal/internal/console"
	"github.com/famish99/doomhal/internal/logging"
	"github.com/famish99/doomhal/internal/platform"
)

func consoleCmd(opts *options) *cobra.Command {
	var startup bool

	c := &cobra.Command{
		Use:   "console",
		Short: "Interactive console for the drivers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if startup {
				if err := s.engine.Startup(); err != nil {
					return err
				}
				defer s.engine.Shutdown()
			}

			con := console.New(s.engine, platform.Name(), s.loggers.Logger(logging.SubConsole))

			rl, err := readline.NewEx(&readline.Config{
				Prompt:       "] ",
				AutoComplete: completer(),
				Stdout:       cmd.OutOrStdout(),
			})
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			defer rl.Close()

			return runConsole(cmd.Context(), rl, cmd.OutOrStdout(), con)
		},
	}

	c.Flags().BoolVar(&startup, "startup", false, "Run the engine startup sequence before reading commands")
	return c
}

type lineReader interface {
	Readline() (string, error)
}

// runConsole feeds lines to the console until quit, exit, EOF or ctx is
// cancelled
func runConsole(ctx context.Context, r lineReader, w io.Writer, con *console.Console) error {
	for {
		line, err := r.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(w, con.ExecuteContext(ctx, line))
	}
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(console.Commands())+2)
	for _, name := range console.Commands() {
		switch name {
		case "cd":
			items = append(items, readline.PcItem("cd",
				readline.PcItem("init"), readline.PcItem("startup"), readline.PcItem("play"),
				readline.PcItem("stop"), readline.PcItem("resume"), readline.PcItem("volume"),
				readline.PcItem("first"), readline.PcItem("last"), readline.PcItem("length"),
				readline.PcItem("status"),
			))
		case "joy":
			items = append(items, readline.PcItem("joy",
				readline.PcItem("init"), readline.PcItem("shutdown"),
				readline.PcItem("update"), readline.PcItem("bind"),
			))
		case "input":
			items = append(items, readline.PcItem("input",
				readline.PcItem("game"), readline.PcItem("text"), readline.PcItem("key"),
				readline.PcItem("mackey"), readline.PcItem("touch"), readline.PcItem("release"),
				readline.PcItem("events"), readline.PcItem("status"),
			))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	items = append(items, readline.PcItem("quit"), readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}
