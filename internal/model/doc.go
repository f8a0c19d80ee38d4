package model

// Package model defines the board data structures shared across the app:
// phases, sticky notes, board snapshots and the session identity. Snapshots
// are immutable values received from the server and are never merged.
