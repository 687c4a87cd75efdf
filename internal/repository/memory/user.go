// Package memory provides process-lifetime, in-memory repositories.
// Nothing is persisted: every record is lost on restart.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viddeck/viddeck/internal/domain"
)

// UserStore implements domain.UserRepository with two maps (by email and
// by ID) guarded by a single mutex. Write volume is expected to be low,
// so one lock around every mutation is sufficient.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	order   []string // emails in insertion order, for ListAll
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

// Create inserts the user. ID defaults to a millisecond timestamp (with a
// random UUID fallback on collision), Name to the local part of the email.
// Returns ErrAlreadyExists when the email or a caller-provided ID is taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if user.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return fmt.Errorf("%w: email %s", domain.ErrAlreadyExists, user.Email)
	}
	if user.ID != "" {
		if _, ok := s.byID[user.ID]; ok {
			return fmt.Errorf("%w: id %s", domain.ErrAlreadyExists, user.ID)
		}
	} else {
		user.ID = s.nextIDLocked()
	}
	if user.Name == "" {
		user.Name = localPart(user.Email)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	stored := *user
	s.byEmail[stored.Email] = &stored
	s.byID[stored.ID] = &stored
	s.order = append(s.order, stored.Email)
	return nil
}

// GetByEmail returns a copy of the record for email, or ErrNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// Exists reports whether a record with the given email is present.
func (s *UserStore) Exists(ctx context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byEmail[email]
	return ok, nil
}

// ListAll returns copies of every record in insertion order.
func (s *UserStore) ListAll(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.order))
	for _, email := range s.order {
		users = append(users, *s.byEmail[email])
	}
	return users, nil
}

// Clear removes every record and reports how many were removed.
func (s *UserStore) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.byEmail)
	s.byEmail = make(map[string]*domain.User)
	s.byID = make(map[string]*domain.User)
	s.order = nil
	return count, nil
}

// nextIDLocked derives an ID from the current time in milliseconds.
// Two registrations landing on the same millisecond fall back to a
// random UUID; uniqueness is practical, not cryptographic.
func (s *UserStore) nextIDLocked() string {
	id := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if _, ok := s.byID[id]; !ok {
		return id
	}
	return uuid.NewString()
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
