package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/demo"
	"github.com/aretw0/canopy/internal/presentation/tui"
	"github.com/aretw0/canopy/pkg/domain"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the bundled platformer actor for a number of ticks",
	Long: `Drives the demo player through a scripted walk/jump/land cycle and prints
the active path after every tick, plus each committed transition.`,
	Run: func(cmd *cobra.Command, args []string) {
		ticks, _ := cmd.Flags().GetInt("ticks")
		dt, _ := cmd.Flags().GetFloat64("dt")
		logger := newLogger(cmd)

		color := term.IsTerminal(int(os.Stdout.Fd()))
		if color {
			tui.PrintBanner()
		}

		hooks := domain.LifecycleHooks{
			OnTransition: func(e *domain.TransitionEvent) {
				fmt.Printf("        %s -> %s\n", e.Source, e.Target)
			},
		}

		machine, err := demo.NewMachine(
			canopy.WithLogger(logger),
			canopy.WithLifecycleHooks(hooks),
		)
		if err != nil {
			fmt.Printf("Error building machine: %v\n", err)
			os.Exit(1)
		}

		player := demo.NewPlayer()
		if err := machine.InitialEntry(player); err != nil {
			fmt.Printf("Error entering machine: %v\n", err)
			os.Exit(1)
		}

		for frame := 0; frame < ticks; frame++ {
			demo.Drive(frame, player)
			if err := machine.Tick(player, dt); err != nil {
				fmt.Printf("Tick error: %v\n", err)
			}
			fmt.Printf("%4d  %s\n", frame, renderPath(player.Path().IDs(), color))
		}

		fmt.Printf("\ndistance=%.2f airtime=%.2f\n", player.Distance, player.Airtime)
	},
}

func renderPath(ids []domain.ID, color bool) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if color {
			parts[i] = tui.StatePill(string(id), i == len(ids)-1)
		} else {
			parts[i] = string(id)
		}
	}
	return strings.Join(parts, " / ")
}

func init() {
	simulateCmd.Flags().Int("ticks", 32, "Number of ticks to simulate")
	simulateCmd.Flags().Float64("dt", 1.0/60, "Seconds per tick")
	rootCmd.AddCommand(simulateCmd)
}
