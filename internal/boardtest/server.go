// Package boardtest provides an in-memory board server that speaks the same
// HTTP+JSON contract as the real one. It is meant for tests of the client.
package boardtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ytget/retro-board/internal/model"
)

// DefaultAccessCode is the credential accepted by a new Server
const DefaultAccessCode = "ABC123"

// maxPoints mirrors the server-side vote budget
const maxPoints = 5

var colors = []string{"#fff59d", "#ffe082", "#ffcc80", "#c5e1a5", "#fff176", "#ffd180"}

// Request is one request observed by the server
type Request struct {
	Method  string
	Path    string
	Header  http.Header
	Body    map[string]any
	Arrived time.Time
}

type failure struct {
	status  int
	message string
}

// Server is a fake board server backed by gin and httptest
type Server struct {
	URL        string
	AccessCode string

	httpServer *httptest.Server

	mu           sync.Mutex
	phase        model.Phase
	participants []model.Participant
	notes        []*model.Sticky
	votes        map[string]map[string]int
	requests     []Request
	failures     map[string][]failure
}

// New starts a server and closes it when the test ends
func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		AccessCode: DefaultAccessCode,
		phase:      model.PhaseGenerating,
		votes:      make(map[string]map[string]int),
		failures:   make(map[string][]failure),
	}
	s.httpServer = httptest.NewServer(s.router())
	s.URL = s.httpServer.URL
	t.Cleanup(s.httpServer.Close)
	return s
}

// Close shuts the server down early, making further requests fail
func (s *Server) Close() {
	s.httpServer.Close()
}

// FailNext makes the next request matching method and path fail with
// the given status. An empty message produces a body without "error".
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.failures[key] = append(s.failures[key], failure{status: status, message: message})
}

// Requests returns all observed requests matching method and path
func (s *Server) Requests(method, path string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Request
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// RequestCount returns the total number of observed requests
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Phase returns the current board phase
func (s *Server) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// SetPhase forces the board phase without organizer checks
func (s *Server) SetPhase(phase model.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

// AddParticipant registers a participant directly
func (s *Server) AddParticipant(name string, isOrganizer bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joinLocked(name, isOrganizer)
}

// AddSticky places a note directly, bypassing phase checks
func (s *Server) AddSticky(author, text string, x, y float64) model.Sticky {
	s.mu.Lock()
	defer s.mu.Unlock()
	note := s.addNoteLocked(author, text, x, y)
	return *note
}

// SetVotes replaces the allocations of one participant
func (s *Server) SetVotes(name string, allocations map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]int, len(allocations))
	for id, points := range allocations {
		copied[id] = points
	}
	s.votes[name] = copied
}

// Snapshot returns the board as the GET /api/board handler would
func (s *Server) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(s.record, s.checkAccessCode, s.injectFailures)

	r.POST("/api/join", s.handleJoin)
	r.GET("/api/board", s.handleBoard)
	r.GET("/api/status", s.handleStatus)
	r.POST("/api/stickies", s.handleAddSticky)
	r.POST("/api/stickies/:id/move", s.handleMoveSticky)
	r.DELETE("/api/stickies/:id", s.handleDeleteSticky)
	r.POST("/api/votes", s.handleVote)
	r.POST("/api/phase", s.handlePhase)
	r.POST("/api/reset", s.handleReset)
	return r
}

func (s *Server) record(c *gin.Context) {
	var body map[string]any
	if c.Request.ContentLength != 0 && c.Request.Body != nil {
		_ = c.ShouldBindJSON(&body)
	}
	c.Set("body", body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Header:  c.Request.Header.Clone(),
		Body:    body,
		Arrived: time.Now(),
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) checkAccessCode(c *gin.Context) {
	s.mu.Lock()
	code := s.AccessCode
	s.mu.Unlock()
	if c.GetHeader("X-Access-Code") != code {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access code"})
		return
	}
	c.Next()
}

func (s *Server) injectFailures(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path

	s.mu.Lock()
	queued := s.failures[key]
	var next *failure
	if len(queued) > 0 {
		next = &queued[0]
		s.failures[key] = queued[1:]
	}
	s.mu.Unlock()

	if next == nil {
		c.Next()
		return
	}
	if next.message == "" {
		c.AbortWithStatus(next.status)
		return
	}
	c.AbortWithStatusJSON(next.status, gin.H{"error": next.message})
}

func body(c *gin.Context) map[string]any {
	raw, _ := c.Get("body")
	m, _ := raw.(map[string]any)
	return m
}

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok && v != ""
}

func numberField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

func (s *Server) handleJoin(c *gin.Context) {
	req := body(c)
	if req == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	name, ok := stringField(req, "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	isOrganizer, ok := req["is_organizer"].(bool)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_organizer must be boolean"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.participantLocked(name) != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "name already taken"})
		return
	}
	c.JSON(http.StatusOK, s.joinLocked(name, isOrganizer))
}

func (s *Server) handleBoard(c *gin.Context) {
	c.JSON(http.StatusOK, s.Snapshot())
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, model.BoardStatus{
		Phase:             s.phase,
		ParticipantsCount: len(s.participants),
		NotesCount:        len(s.notes),
		VotesCount:        len(s.votes),
	})
}

func (s *Server) handleAddSticky(c *gin.Context) {
	req := body(c)
	name, ok := stringField(req, "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	text, ok := stringField(req, "text")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	x, okX := numberField(req, "x")
	y, okY := numberField(req, "y")
	if !okX || !okY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be numeric"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != model.PhaseGenerating {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden in current phase"})
		return
	}
	if s.participantLocked(name) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusCreated, s.addNoteLocked(name, text, x, y))
}

func (s *Server) handleMoveSticky(c *gin.Context) {
	req := body(c)
	name, _ := stringField(req, "name")
	x, okX := numberField(req, "x")
	y, okY := numberField(req, "y")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.participantLocked(name) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown participant"})
		return
	}
	if !okX || !okY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be numeric"})
		return
	}
	if s.phase == model.PhaseFinished {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden in current phase"})
		return
	}
	note := s.noteLocked(c.Param("id"))
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	note.X, note.Y = x, y
	c.JSON(http.StatusOK, gin.H{"status": "moved"})
}

func (s *Server) handleDeleteSticky(c *gin.Context) {
	name, ok := stringField(body(c), "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == model.PhaseFinished {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden in current phase"})
		return
	}
	id := c.Param("id")
	note := s.noteLocked(id)
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if note.AuthorName != name {
		c.JSON(http.StatusForbidden, gin.H{"error": "not author"})
		return
	}
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	for _, allocations := range s.votes {
		delete(allocations, id)
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleVote(c *gin.Context) {
	req := body(c)
	name, ok := stringField(req, "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	stickyID, ok := stringField(req, "sticky_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sticky_id is required"})
		return
	}
	raw, ok := numberField(req, "points")
	if !ok || raw != float64(int(raw)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be integer"})
		return
	}
	points := int(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != model.PhaseVoting {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden in current phase"})
		return
	}
	if points < 0 || points > maxPoints {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote limit exceeded"})
		return
	}
	if s.participantLocked(name) == nil || s.noteLocked(stickyID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	allocations := s.votes[name]
	if allocations == nil {
		allocations = make(map[string]int)
		s.votes[name] = allocations
	}
	used := 0
	for id, p := range allocations {
		if id != stickyID {
			used += p
		}
	}
	if used+points > maxPoints {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote limit exceeded"})
		return
	}
	allocations[stickyID] = points
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePhase(c *gin.Context) {
	req := body(c)
	name, ok := stringField(req, "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	rawPhase, _ := req["phase"].(string)
	next, err := model.ParsePhase(rawPhase)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.participantLocked(name); p == nil || !p.IsOrganizer {
		c.JSON(http.StatusForbidden, gin.H{"error": "not organizer"})
		return
	}
	allowed := map[model.Phase]model.Phase{
		model.PhaseGenerating: model.PhaseVoting,
		model.PhaseVoting:     model.PhaseFinished,
	}
	if next != s.phase && allowed[s.phase] != next {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase transition"})
		return
	}
	s.phase = next
	c.JSON(http.StatusOK, gin.H{"phase": s.phase})
}

func (s *Server) handleReset(c *gin.Context) {
	name, ok := stringField(body(c), "name")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.participantLocked(name); p == nil || !p.IsOrganizer {
		c.JSON(http.StatusForbidden, gin.H{"error": "not organizer"})
		return
	}
	s.phase = model.PhaseGenerating
	s.participants = nil
	s.notes = nil
	s.votes = make(map[string]map[string]int)
	// Status only; the new access code is not exposed to clients here
	c.String(http.StatusOK, "reset")
}

func (s *Server) participantLocked(name string) *model.Participant {
	for i := range s.participants {
		if s.participants[i].Name == name {
			return &s.participants[i]
		}
	}
	return nil
}

func (s *Server) joinLocked(name string, isOrganizer bool) model.Participant {
	p := model.Participant{
		Name:        name,
		IsOrganizer: isOrganizer,
		Color:       colors[len(s.participants)%len(colors)],
	}
	s.participants = append(s.participants, p)
	return p
}

func (s *Server) noteLocked(id string) *model.Sticky {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (s *Server) addNoteLocked(author, text string, x, y float64) *model.Sticky {
	color := ""
	if p := s.participantLocked(author); p != nil {
		color = p.Color
	}
	note := &model.Sticky{
		ID:         uuid.NewString(),
		AuthorName: author,
		Text:       text,
		X:          x,
		Y:          y,
		Color:      color,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	s.notes = append(s.notes, note)
	return note
}

func (s *Server) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		Phase:        s.phase,
		Stickies:     make([]model.Sticky, 0, len(s.notes)),
		Scores:       make(map[string]int, len(s.notes)),
		Votes:        make(map[string]map[string]int, len(s.votes)),
		Participants: append([]model.Participant(nil), s.participants...),
	}
	for _, n := range s.notes {
		snap.Stickies = append(snap.Stickies, *n)
		snap.Scores[n.ID] = 0
	}
	for name, allocations := range s.votes {
		copied := make(map[string]int, len(allocations))
		for id, points := range allocations {
			copied[id] = points
			snap.Scores[id] += points
		}
		snap.Votes[name] = copied
	}
	return snap
}

// String describes the server for test failure messages
func (s *Server) String() string {
	return fmt.Sprintf("boardtest.Server(%s, phase=%s)", s.URL, s.Phase())
}
