// Package board keeps a client view in sync with the shared retro board.
//
// A Session joins the board, polls the authoritative snapshot on a fixed
// interval and performs user actions. Every successful poll fully replaces
// what the View shows; there is no local mutation of the snapshot.
package board
