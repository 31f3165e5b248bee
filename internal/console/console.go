// Package console is an interactive MIDI console for checking the output
// port by hand: pick a note and velocity, play it, stop it.
package console

import (
	"context"
	"errors"
	"fmt"
	"handi/pkg/logger"
	"io"

	"go.uber.org/zap"
)

// Commands offered by the console menu.
const (
	CommandPlay     = "play"
	CommandStop     = "stop"
	CommandNote     = "note"
	CommandVelocity = "vol"
	CommandExit     = "exit"
)

// Commands lists the menu in display order.
var Commands = []string{CommandPlay, CommandStop, CommandNote, CommandVelocity, CommandExit} //nolint: gochecknoglobals

const (
	defaultNote     = 60
	defaultVelocity = 100
)

// ErrInterrupted is returned by a Prompter when the user aborts the prompt.
var ErrInterrupted = errors.New("interrupted")

// Transmitter is the MIDI surface the console drives.
//
//go:generate mockgen -package mockconsole -source=console.go -destination=mock/mockconsole.go *
type Transmitter interface {
	NoteOn(ctx context.Context, channel, note, velocity uint8) error
	NoteOff(ctx context.Context, channel, note uint8) error
	Panic(ctx context.Context) error
}

// Prompter asks the user for input.
type Prompter interface {
	Select(ctx context.Context, message string, options []string) (string, error)
	// Number asks for a value in [0, 127].
	Number(ctx context.Context, message string, def uint8) (uint8, error)
}

// Console keeps the selected note and velocity between commands.
type Console struct {
	tx      Transmitter
	prompt  Prompter
	out     io.Writer
	channel uint8

	note     uint8
	velocity uint8
	playing  map[uint8]struct{}
}

// New returns a console playing on channel, starting at middle C with
// velocity 100.
func New(tx Transmitter, prompt Prompter, out io.Writer, channel uint8) *Console {
	return &Console{
		tx:       tx,
		prompt:   prompt,
		out:      out,
		channel:  channel,
		note:     defaultNote,
		velocity: defaultVelocity,
		playing:  make(map[uint8]struct{}),
	}
}

// Run prompts for commands until exit, an interrupt or a done ctx. Every
// sounding note is silenced before it returns.
func (c *Console) Run(ctx context.Context) error {
	defer func() {
		if err := c.tx.Panic(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not silence output", zap.Error(err))
		}
		clear(c.playing)
		c.printf("All notes stopped.\n")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return nil //nolint: nilerr
		}

		cmd, err := c.prompt.Select(ctx, "Command", Commands)
		if err != nil {
			return c.promptErr(err)
		}

		done, err := c.Exec(ctx, cmd)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Exec runs one command and reports whether the console should exit.
func (c *Console) Exec(ctx context.Context, cmd string) (bool, error) {
	switch cmd {
	case CommandPlay:
		if err := c.tx.NoteOn(ctx, c.channel, c.note, c.velocity); err != nil {
			c.printf("Could not play note: %v\n", err)

			return false, nil
		}
		c.playing[c.note] = struct{}{}
		c.printf("Playing note %d with velocity %d\n", c.note, c.velocity)
	case CommandStop:
		if _, ok := c.playing[c.note]; !ok {
			c.printf("Note %d is not playing\n", c.note)

			return false, nil
		}
		if err := c.tx.NoteOff(ctx, c.channel, c.note); err != nil {
			c.printf("Could not stop note: %v\n", err)

			return false, nil
		}
		delete(c.playing, c.note)
		c.printf("Stopped note %d\n", c.note)
	case CommandNote:
		n, err := c.prompt.Number(ctx, "MIDI note", c.note)
		if err != nil {
			return true, c.promptErr(err)
		}
		c.note = n
		c.printf("Pitch changed to MIDI note %d\n", n)
	case CommandVelocity:
		v, err := c.prompt.Number(ctx, "Velocity", c.velocity)
		if err != nil {
			return true, c.promptErr(err)
		}
		c.velocity = v
		c.printf("Volume changed to %d\n", v)
	case CommandExit:
		return true, nil
	default:
		c.printf("Unknown command %q\n", cmd)
	}

	return false, nil
}

// Note returns the selected note and velocity.
func (c *Console) Note() (note, velocity uint8) {
	return c.note, c.velocity
}

func (c *Console) promptErr(err error) error {
	if errors.Is(err, ErrInterrupted) {
		return nil
	}

	return fmt.Errorf("could not prompt: %w", err)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
