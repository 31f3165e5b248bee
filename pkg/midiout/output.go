// Package midiout sends MIDI to an output port. It wraps gomidi ports behind
// the small Output interface, and provides the Transmitter that turns gesture
// values and triggers into channel messages.
package midiout

import (
	"fmt"
	"handi/pkg/serrors"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Output is a destination for raw MIDI messages.
//
//go:generate mockgen -package mockmidiout -source=output.go -destination=mock/mockmidiout.go *
type Output interface {
	// Send writes one complete MIDI message.
	Send(msg []byte) error
	// Close releases the port.
	Close() error
	// Name returns a human readable port name.
	Name() string
}

// Recorder receives a copy of every message written to an Output.
type Recorder interface {
	Record(msg []byte)
}

// PortInfo describes an output port offered by the MIDI driver.
type PortInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Ports lists the output ports of the registered driver.
func Ports() []PortInfo {
	outs := midi.GetOutPorts()
	infos := make([]PortInfo, 0, len(outs))
	for _, o := range outs {
		infos = append(infos, PortInfo{Number: o.Number(), Name: o.String()})
	}

	return infos
}

// port adapts a gomidi driver port to Output.
type port struct {
	out drivers.Out
}

func (p *port) Send(msg []byte) error {
	if err := p.out.Send(msg); err != nil {
		return fmt.Errorf("could not send to %s: %w", p.out.String(), err)
	}

	return nil
}

func (p *port) Close() error {
	if err := p.out.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", p.out.String(), err)
	}

	return nil
}

func (p *port) Name() string { return p.out.String() }

// OpenPort opens the output port named name. An exact match wins; otherwise
// the first port whose name contains name (case-insensitive) is used, so
// "Python to VCV" finds the "Python to VCV 1" port created by loopMIDI.
func OpenPort(name string) (Output, error) {
	outs := midi.GetOutPorts()

	var match drivers.Out
	for _, o := range outs {
		if o.String() == name {
			match = o

			break
		}
	}
	if match == nil {
		needle := strings.ToLower(name)
		for _, o := range outs {
			if strings.Contains(strings.ToLower(o.String()), needle) {
				match = o

				break
			}
		}
	}
	if match == nil {
		names := make([]string, 0, len(outs))
		for _, o := range outs {
			names = append(names, o.String())
		}

		return nil, serrors.With(serrors.ErrNotFound,
			"midi output port %q not found (available: %s)", name, strings.Join(names, ", "))
	}

	if err := match.Open(); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not open midi port %q", match.String())
	}

	return &port{out: match}, nil
}

// CloseDriver releases the MIDI driver. It must be called once at exit.
func CloseDriver() {
	midi.CloseDriver()
}
