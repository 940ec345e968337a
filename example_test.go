package canopy_test

import (
	"fmt"
	"log"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
)

// doorActor is the entity driven by the example tree. It owns its active
// path; the machine itself stays stateless and shareable.
type doorActor struct {
	path     domain.ActivePath
	WantOpen bool
}

func (d *doorActor) Path() *domain.ActivePath { return &d.path }

type doorRoot struct {
	domain.Base[*doorActor]
	children []domain.State[*doorActor]
}

func (doorRoot) ID() domain.ID { return "door" }

func (s doorRoot) Children() []domain.State[*doorActor] { return s.children }

func (doorRoot) InitialChild() domain.ID { return "closed" }

type doorClosed struct{ domain.Base[*doorActor] }

func (doorClosed) ID() domain.ID { return "closed" }
func (doorClosed) Transition(d *doorActor) domain.ID {
	if d.WantOpen {
		return "open"
	}
	return domain.None
}

type doorOpen struct{ domain.Base[*doorActor] }

func (doorOpen) ID() domain.ID { return "open" }
func (doorOpen) Transition(d *doorActor) domain.ID {
	if !d.WantOpen {
		return "closed"
	}
	return domain.None
}

// Example demonstrates building a small behavior tree and driving one actor
// through a transition.
func Example() {
	root := doorRoot{children: []domain.State[*doorActor]{doorClosed{}, doorOpen{}}}

	machine, err := canopy.New[*doorActor](root)
	if err != nil {
		log.Fatal(err)
	}

	door := &doorActor{}
	if err := machine.InitialEntry(door); err != nil {
		log.Fatal(err)
	}
	fmt.Println("after entry:", door.Path().IDs())

	door.WantOpen = true
	if err := machine.Tick(door, 1.0/60); err != nil {
		log.Fatal(err)
	}
	fmt.Println("after tick:", door.Path().IDs())

	// Output:
	// after entry: [door closed]
	// after tick: [door open]
}
