/*
Package canopy is a hierarchical state tree engine for tick-driven actors.

Instead of a flat state machine, an actor is driven by a tree of behavioral
states (e.g. Grounded -> {Idle, Move}), so transition logic shared by a whole
branch lives once, on the ancestor. The engine resolves at most one transition
per tick, computes the new root-to-leaf active path, and delivers exit/enter
notifications in strict order: exits deepest-first from the point of
divergence, then enters shallowest-first.

# Concept

States declare their children explicitly; canopy discovers the tree once from
the root, builds an identity lookup table, and computes the tree height. The
tree is immutable and holds no actor state. Each actor owns its ActivePath (a
fixed array of height slots), so a single machine can drive many actors. This
Hexagonal Architecture keeps the core pure: persistence, metrics, and the
inspector HTTP server are adapters around it.

# Key Features

  - Hierarchical transitions: an ancestor's transition pre-empts any
    descendant's, so "leave this whole branch" is declared once.
  - Deterministic notification order: exit-before-enter per transition, and
    root-to-leaf ordering for tick, fixed-tick, and initial entry.
  - Cycle safety: malformed registrations fail the build (or drop the branch
    in lenient mode), and a descent that would revisit a state truncates with
    a warning instead of looping.
  - Snapshot & restore: an actor's path can be persisted through a
    SnapshotStore (in-memory and Redis adapters included).

# Usage

Define states by embedding domain.Base and overriding what you need, then
build a machine from the root:

	package main

	import (
		"log"

		"github.com/aretw0/canopy"
		"github.com/aretw0/canopy/pkg/domain"
	)

	type Player struct {
		path     domain.ActivePath
		OnGround bool
	}

	func (p *Player) Path() *domain.ActivePath { return &p.path }

	func main() {
		machine, err := canopy.New[*Player](newRootState())
		if err != nil {
			log.Fatal(err)
		}

		player := &Player{OnGround: true}
		if err := machine.InitialEntry(player); err != nil {
			log.Fatal(err)
		}

		// Host loop: one Tick per frame, FixedTick at the simulation rate.
		for i := 0; i < 60; i++ {
			if err := machine.Tick(player, 1.0/60); err != nil {
				log.Printf("tick: %v", err)
			}
		}
	}

The host supplies dt; canopy performs no timing of its own.
*/
package canopy
