package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/famish99/doomhal/internal/hal"
)

func selfTestCmd(opts *options) *cobra.Command {
	var track int

	c := &cobra.Command{
		Use:   "selftest",
		Short: "Run the CD audio sequence the sound menu performs and report the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runSelfTest(cmd.OutOrStdout(), s.engine.Music(), track)
		},
	}

	c.Flags().IntVar(&track, "track", 5, "Track number to play")
	return c
}

// runSelfTest calls init, play, track length and stop in order and fails on
// the first unexpected result
func runSelfTest(w io.Writer, m hal.MusicDevice, track int) error {
	if err := hal.Check("init", m.Init()); err != nil {
		return err
	}
	fmt.Fprintf(w, "init:          OK\n")

	if err := hal.Check("play", m.Play(track)); err != nil {
		return err
	}
	fmt.Fprintf(w, "play %-8d  OK\n", track)

	length := m.TrackLength(track)
	if length != 0 {
		return fmt.Errorf("track %d reports length %d on an empty disc", track, length)
	}
	fmt.Fprintf(w, "length %-6d  %d\n", track, length)

	if err := hal.Check("stop", m.Stop()); err != nil {
		return err
	}
	fmt.Fprintf(w, "stop:          OK\n")

	fmt.Fprintf(w, "tracks:        %d-%d\n", m.FirstTrack(), m.LastTrack())
	fmt.Fprintf(w, "last error:    %d\n", int(m.Err()))
	return nil
}
