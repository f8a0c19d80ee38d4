package api

import (
	"context"

	"github.com/ytget/retro-board/internal/model"
)

// BoardAPI defines the operations the board session needs from the server.
type BoardAPI interface {
	Join(ctx context.Context, name string, isOrganizer bool) (*model.Participant, error)
	Board(ctx context.Context) (*model.Snapshot, error)
	CreateSticky(ctx context.Context, name, text string, x, y float64) (*model.Sticky, error)
	MoveSticky(ctx context.Context, stickyID, name string, x, y float64) error
	DeleteSticky(ctx context.Context, stickyID, name string) error

	// SetVote submits an absolute allocation, not a delta
	SetVote(ctx context.Context, name, stickyID string, points int) error

	SetPhase(ctx context.Context, name string, phase model.Phase) error
	Reset(ctx context.Context, name string) error
	Status(ctx context.Context) (*model.BoardStatus, error)
}
