package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

func framesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "frames N",
		Short: "Start the engine, run N input frames, then shut down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid frame count: %s", args[0])
			}

			s, err := newSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.engine.Startup(); err != nil {
				return err
			}
			defer s.engine.Shutdown()

			// Stop early on interrupt
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			done, err := s.engine.RunFrames(ctx, n)
			fmt.Fprintf(cmd.OutOrStdout(), "frames: %d\n", done)
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
