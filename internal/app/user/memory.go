package user

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Repository. Its contents are lost on restart.
type MemoryStore struct {
	// mu guards every field below.
	mu sync.RWMutex

	users map[int64]*User

	// byEmail indexes users by email so uniqueness is checked under the same lock as the insert.
	byEmail map[string]int64

	// nextID is never decremented, so ids are not reused.
	nextID int64
}

// NewMemoryStore returns an empty store whose first user receives id 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]*User),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

func (s *MemoryStore) Insert(_ context.Context, u User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[u.Email]; taken {
		return nil, ErrDuplicateEmail
	}

	u.ID = s.nextID
	s.nextID++

	stored := u
	s.users[u.ID] = &stored
	s.byEmail[u.Email] = u.ID

	return &u, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}
