package board

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/retro-board/internal/api"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
	"github.com/ytget/retro-board/internal/vote"
)

// Canvas range for newly placed notes
const (
	NewNoteMaxX = 400
	NewNoteMaxY = 300
)

// MessageBoardFinished is shown when a note is added to a finished board
const MessageBoardFinished = "Board is finished. Changes are not allowed."

// ErrBoardFinished is returned by actions blocked by the FINISHED phase
var ErrBoardFinished = errors.New(MessageBoardFinished)

// ErrAlreadyStarted is returned when Start is called twice
var ErrAlreadyStarted = errors.New("session already started")

// Prefixes of user-facing action failures
const (
	prefixJoin        = "Failed to join: "
	prefixAdd         = "Add failed: "
	prefixMove        = "Move failed: "
	prefixVote        = "Vote failed: "
	prefixStartVoting = "Cannot start voting: "
	prefixFinish      = "Cannot finish: "
	prefixReset       = "Reset failed: "
	prefixDelete      = "Delete failed: "
)

// Session is one participant's connection to a board for the lifetime of
// a board view
type Session struct {
	identity model.Identity
	client   api.BoardAPI
	view     View
	poller   *Poller
	intN     func(n int) int

	mu      sync.Mutex
	phase   model.Phase
	started bool
	ctx     context.Context
	cancel  context.CancelFunc

	stopOnce sync.Once
}

// Option configures a Session
type Option func(*Session)

// WithPollInterval overrides DefaultPollInterval
func WithPollInterval(interval time.Duration) Option {
	return func(s *Session) {
		s.poller = NewPoller(interval, s.tick)
	}
}

// WithRandom replaces the source used to place new notes.
// intN must return a value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(s *Session) {
		if intN != nil {
			s.intN = intN
		}
	}
}

// NewSession creates a session that is not yet connected
func NewSession(identity model.Identity, client api.BoardAPI, view View, opts ...Option) *Session {
	s := &Session{
		identity: identity,
		client:   client,
		view:     view,
		intN:     rand.Intn,
		phase:    model.PhaseGenerating,
	}
	s.poller = NewPoller(DefaultPollInterval, s.tick)
	for _, opt := range opts {
		opt(s)
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Identity returns the session's identity
func (s *Session) Identity() model.Identity {
	return s.identity
}

// Phase returns the locally known phase from the last rendered snapshot
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Context is cancelled when the session stops. Actions started from the
// UI should use it so they are abandoned on teardown.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Start validates the identity, joins the board, renders once and begins
// polling. Fatal failures redirect the view home and are returned.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	log := s.logger()

	if err := s.identity.Validate(); err != nil {
		log.WithError(err).Info("missing identity, returning to entry view")
		s.view.RedirectHome()
		s.Stop()
		return err
	}

	if err := s.join(ctx); err != nil {
		s.view.ShowError(prefixJoin + err.Error())
		s.view.RedirectHome()
		s.Stop()
		return fmt.Errorf("join board: %w", err)
	}

	_ = s.PollOnce(ctx)

	// Polling lives as long as the session, not the caller's context
	s.poller.Start(s.ctx)
	log.WithField("interval", s.poller.Interval()).Info("board polling started")
	return nil
}

func (s *Session) join(ctx context.Context) error {
	_, err := s.client.Join(ctx, s.identity.Name, s.identity.IsOrganizer)
	if err == nil {
		s.view.ClearError()
		return nil
	}
	if api.IsNameTaken(err) {
		s.logger().Debug("name already registered, continuing as returning participant")
		return nil
	}
	return err
}

// Stop cancels polling and in-flight work. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.poller.Stop()
		s.logger().Debug("board session stopped")
	})
}

// Stopped reports whether the session has been torn down
func (s *Session) Stopped() bool {
	return s.ctx.Err() != nil
}

func (s *Session) tick(ctx context.Context) {
	_ = s.PollOnce(ctx)
}

// PollOnce fetches the snapshot and renders it. Failures are logged and
// returned but never shown to the user.
func (s *Session) PollOnce(ctx context.Context) error {
	snap, err := s.client.Board(ctx)
	if err != nil {
		s.logger().WithError(err).Warn("polling error")
		return err
	}
	if s.Stopped() {
		return context.Canceled
	}
	s.view.Render(s.frame(snap))
	return nil
}

func (s *Session) frame(snap *model.Snapshot) Frame {
	phase := snap.Phase
	if !phase.IsValid() {
		s.logger().WithField("phase", phase).Warn("unknown phase in snapshot")
	}

	s.mu.Lock()
	s.phase = phase
	s.mu.Unlock()

	own := snap.OwnAllocations(s.identity.Name)
	return Frame{
		Identity:         s.identity,
		Phase:            phase,
		Remaining:        vote.Remaining(own),
		AddNoteVisible:   phase.ShowsAddNote(),
		OrganizerVisible: s.identity.IsOrganizer,
		Own:              own,
		Snapshot:         snap,
	}
}

// AddNote posts a note at a random position. Blank text is ignored.
func (s *Session) AddNote(ctx context.Context, text string) error {
	if s.Phase() == model.PhaseFinished {
		s.view.ShowError(MessageBoardFinished)
		return ErrBoardFinished
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	x := float64(s.intN(NewNoteMaxX))
	y := float64(s.intN(NewNoteMaxY))
	_, err := s.client.CreateSticky(ctx, s.identity.Name, text, x, y)
	return s.finish(ctx, prefixAdd, err)
}

// MoveSticky persists a note position committed by a drag
func (s *Session) MoveSticky(ctx context.Context, stickyID string, x, y float64) error {
	err := s.client.MoveSticky(ctx, stickyID, s.identity.Name, x, y)
	return s.finish(ctx, prefixMove, err)
}

// SetVote stores the absolute allocation for one note
func (s *Session) SetVote(ctx context.Context, stickyID string, points int) error {
	err := s.client.SetVote(ctx, s.identity.Name, stickyID, vote.Clamp(points))
	return s.finish(ctx, prefixVote, err)
}

// DeleteSticky removes one of the participant's own notes
func (s *Session) DeleteSticky(ctx context.Context, stickyID string) error {
	err := s.client.DeleteSticky(ctx, stickyID, s.identity.Name)
	return s.finish(ctx, prefixDelete, err)
}

// StartVoting moves the board to VOTING
func (s *Session) StartVoting(ctx context.Context) error {
	err := s.client.SetPhase(ctx, s.identity.Name, model.PhaseVoting)
	return s.finish(ctx, prefixStartVoting, err)
}

// Finish moves the board to FINISHED
func (s *Session) Finish(ctx context.Context) error {
	err := s.client.SetPhase(ctx, s.identity.Name, model.PhaseFinished)
	return s.finish(ctx, prefixFinish, err)
}

// Reset clears the board and ends the session on success
func (s *Session) Reset(ctx context.Context) error {
	if err := s.client.Reset(ctx, s.identity.Name); err != nil {
		s.view.ShowError(prefixReset + err.Error())
		return err
	}
	s.view.ClearError()
	s.logger().Info("board reset, leaving")
	s.Stop()
	s.view.RedirectHome()
	return nil
}

// finish applies the shared outcome handling of an action
func (s *Session) finish(ctx context.Context, prefix string, err error) error {
	if err != nil {
		s.logger().WithError(err).Debug(strings.TrimSuffix(prefix, ": "))
		s.view.ShowError(prefix + err.Error())
		return err
	}
	s.view.ClearError()
	_ = s.PollOnce(ctx)
	return nil
}

func (s *Session) logger() *logrus.Entry {
	return logging.Log.WithFields(logrus.Fields{
		"board_user": s.identity.Name,
		"organizer":  s.identity.IsOrganizer,
	})
}
