/*
Package ports defines the driven ports (interfaces) for the Canopy engine.

These interfaces decouple the core from external implementations, allowing
actor snapshots to be persisted in various backends and the tree structure to
be inspected by presentation adapters.

# Key Interfaces

  - SnapshotStore: persists and loads actor active-path snapshots.
  - Inspector: read-only view over a built machine for renderers and servers.
*/
package ports
