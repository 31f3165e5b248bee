package main

import (
	"fmt"
	"handi/pkg/midiout"

	"github.com/spf13/cobra"
)

// portsCommand lists the MIDI output ports, as the run command matches
// midi.port against them.
func portsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "Lists MIDI output ports",
		Run: func(cmd *cobra.Command, args []string) {
			ports := midiout.Ports()
			if len(ports) == 0 {
				fmt.Println("no MIDI output ports found") //nolint: forbidigo

				return
			}
			for _, p := range ports {
				fmt.Printf("%d\t%s\n", p.Number, p.Name) //nolint: forbidigo
			}
		},
	}
}
