package vote

// Package vote holds the point allocation rules: a fixed budget of MaxPoints
// per participant, per-note values clamped to [0, MaxPoints], and a remaining
// budget derived only from the allocations found in a fetched snapshot.
