package api

// Package api implements the transport adapter for the board server: a thin
// HTTP+JSON client that injects the access-code credential on every request,
// normalizes error bodies into a single RequestError, and never retries.
