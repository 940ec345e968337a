package domain

import "errors"

// ErrDuplicateState is returned when tree discovery revisits an identity.
// A diamond (two parents sharing one logical child) or a true cycle both
// signal a broken tree registration.
var ErrDuplicateState = errors.New("duplicate state identity")

// ErrUnknownState is returned when a transition target or child identity is
// not present in the tree's lookup table.
var ErrUnknownState = errors.New("unknown state identity")

// ErrNotEntered is returned when an actor is ticked before its initial entry.
var ErrNotEntered = errors.New("actor has not entered the machine")

// ErrAlreadyEntered is returned when initial entry runs twice for one actor.
var ErrAlreadyEntered = errors.New("actor has already entered the machine")

// ErrInvalidSnapshot is returned when a snapshot does not describe a valid
// ancestor chain in the live tree.
var ErrInvalidSnapshot = errors.New("snapshot is not a valid ancestor chain")

// ErrSnapshotNotFound is returned when an actor ID cannot be found in a
// snapshot store.
var ErrSnapshotNotFound = errors.New("snapshot not found")
