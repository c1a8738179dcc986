// Package session provides persistence for interactive deck-building
// conversations.
//
// A chat session holds the conversation history with the language model and
// the outline as it evolves across turns, so a user can refine a deck over
// multiple commands (or multiple days) without starting over.
//
// # Usage
//
// Create a store and a session:
//
//	store, err := session.NewFileStore("") // Uses ~/.config/deckforge/sessions/
//	sess := session.New("renewable energy", session.DefaultTTL)
//	store.Set(ctx, sess)
//
// Continue a conversation:
//
//	sess, err := store.Get(ctx, id)
//	if sess == nil {
//	    // not found or expired
//	}
//	sess.Append("user", "make slide 3 shorter")
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/spec"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// DefaultTTL is the default session duration.
const DefaultTTL = 7 * 24 * time.Hour

// Session stores one deck-building conversation.
type Session struct {
	ID        string          `json:"id"`
	Topic     string          `json:"topic"`
	Messages  []genai.Message `json:"messages,omitempty"`
	Outline   *spec.Outline   `json:"outline,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// New creates a session for a topic.
func New(topic string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Append records one conversation turn and bumps the update time.
func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, genai.Message{Role: role, Content: content})
	s.UpdatedAt = time.Now()
}

// SetOutline replaces the session's working outline.
func (s *Session) SetOutline(o spec.Outline) {
	s.Outline = &o
	s.UpdatedAt = time.Now()
}

// History returns the conversation as prompt history for the next model turn.
func (s *Session) History() []genai.Message {
	return s.Messages
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all live sessions, newest first.
	List(ctx context.Context) ([]*Session, error)

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}
