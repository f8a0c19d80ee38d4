package drag

// Package drag implements the pointer-driven repositioning state machine used
// by sticky notes. Each visual element owns its own Controller, so a drag on
// one element never affects another.
