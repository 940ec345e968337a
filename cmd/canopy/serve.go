package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/demo"
	httpadapter "github.com/aretw0/canopy/pkg/adapters/http"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live inspector over HTTP",
	Long: `Starts the inspector server while simulating the demo player in the
background. Endpoints: /tree, /graph, /actors, /actors/{id}, /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		logger := newLogger(cmd)

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		machine, err := demo.NewMachine(
			canopy.WithLogger(logger),
			canopy.WithMetrics(metrics),
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

		// The tick goroutine owns the player; the actor source only reads a
		// copy taken under the same lock.
		var mu sync.Mutex
		go func() {
			const dt = 1.0 / 20
			ticker := time.NewTicker(50 * time.Millisecond)
			defer ticker.Stop()

			frame := 0
			for range ticker.C {
				mu.Lock()
				demo.Drive(frame, player)
				if err := machine.Tick(player, dt); err != nil {
					logger.Error("tick failed", "err", err)
				}
				mu.Unlock()
				frame++
			}
		}()

		actors := func() map[string][]domain.ID {
			mu.Lock()
			defer mu.Unlock()
			return map[string][]domain.ID{
				"player-1": player.Path().IDs(),
			}
		}

		handler := httpadapter.NewHandler(machine,
			httpadapter.WithActorSource(actors),
			httpadapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			httpadapter.WithLogger(logger),
		)

		fmt.Printf("Inspector listening on %s\n", addr)
		if err := http.ListenAndServe(addr, handler); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8787", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
