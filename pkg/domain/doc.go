/*
Package domain contains the core domain models for the Canopy state tree engine.

It defines the fundamental entities of a hierarchical state machine: state
identities, the State behavior contract, the Actor binding, and the ActivePath
an actor carries through the tree. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - ID: A stable, comparable tag uniquely naming a state kind.
  - State: One node in the hierarchy, with behavior hooks and resolution hooks.
  - Actor: The external entity driven by a machine; owns its ActivePath.
  - ActivePath: The actor's current root-to-leaf (or partial) slot sequence.
  - Snapshot: A persistable capture of an actor's active path.
*/
package domain
