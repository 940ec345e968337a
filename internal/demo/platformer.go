// Package demo bundles a small platformer actor and its state tree
// (Root -> {Grounded -> {Idle, Move}, Airborne}) for the CLI commands and
// the inspector server.
package demo

import (
	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
)

const (
	StateRoot     domain.ID = "root"
	StateGrounded domain.ID = "grounded"
	StateIdle     domain.ID = "idle"
	StateMove     domain.ID = "move"
	StateAirborne domain.ID = "airborne"
)

// Player is the demo actor.
type Player struct {
	path domain.ActivePath

	OnGround bool
	Speed    float64

	// Accumulated by tick hooks.
	Distance float64
	Airtime  float64
}

// NewPlayer returns a grounded, resting player.
func NewPlayer() *Player {
	return &Player{OnGround: true}
}

// Path returns the player's active-path storage.
func (p *Player) Path() *domain.ActivePath { return &p.path }

type rootState struct {
	domain.Base[*Player]
	children []domain.State[*Player]
}

func (*rootState) ID() domain.ID { return StateRoot }
func (s *rootState) Children() []domain.State[*Player] { return s.children }
func (*rootState) InitialChild() domain.ID { return StateGrounded }

type groundedState struct {
	domain.Base[*Player]
	children []domain.State[*Player]
}

func (*groundedState) ID() domain.ID { return StateGrounded }
func (s *groundedState) Children() []domain.State[*Player] { return s.children }
func (*groundedState) InitialChild() domain.ID { return StateIdle }

func (*groundedState) Transition(p *Player) domain.ID {
	if !p.OnGround {
		return StateAirborne
	}
	return domain.None
}

type idleState struct {
	domain.Base[*Player]
}

func (*idleState) ID() domain.ID { return StateIdle }

func (*idleState) Transition(p *Player) domain.ID {
	if p.Speed > 0 {
		return StateMove
	}
	return domain.None
}

type moveState struct {
	domain.Base[*Player]
}

func (*moveState) ID() domain.ID { return StateMove }

func (*moveState) Transition(p *Player) domain.ID {
	if p.Speed == 0 {
		return StateIdle
	}
	return domain.None
}

func (*moveState) OnTick(p *Player, dt float64) {
	p.Distance += p.Speed * dt
}

type airborneState struct {
	domain.Base[*Player]
}

func (*airborneState) ID() domain.ID { return StateAirborne }

func (*airborneState) Transition(p *Player) domain.ID {
	if p.OnGround {
		return StateGrounded
	}
	return domain.None
}

func (*airborneState) OnTick(p *Player, dt float64) {
	p.Airtime += dt
}

// NewRoot wires a fresh instance of the demo tree.
func NewRoot() domain.State[*Player] {
	grounded := &groundedState{}
	grounded.children = []domain.State[*Player]{&idleState{}, &moveState{}}

	root := &rootState{}
	root.children = []domain.State[*Player]{grounded, &airborneState{}}
	return root
}

// NewMachine builds a machine over the demo tree.
func NewMachine(opts ...canopy.Option) (*canopy.Machine[*Player], error) {
	return canopy.New(NewRoot(), opts...)
}

// Drive applies a deterministic input script for one frame: the player walks,
// jumps, lands, and stops on a repeating cycle. It stands in for real input
// in the CLI simulation.
func Drive(frame int, p *Player) {
	switch frame % 16 {
	case 3:
		p.Speed = 2.5
	case 6:
		p.OnGround = false
	case 9:
		p.OnGround = true
	case 12:
		p.Speed = 0
	}
}
