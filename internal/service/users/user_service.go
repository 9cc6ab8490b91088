package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/repository"
)

var (
	ErrNotFound      = errors.New("user ID not found")
	ErrAlreadyExists = errors.New("user ID already exists")
	ErrMissingName   = errors.New("missing 'name' field")
)

// Service owns the user records. New users never start as admins; the
// flag is only ever set directly in the store.
type Service struct {
	mu    sync.Mutex
	users []domain.User
	store repository.UserStore
}

func New(store repository.UserStore) *Service {
	return &Service{store: store}
}

func (s *Service) Load(ctx context.Context) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

func (s *Service) All() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Service) ByID(id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (s *Service) IsAdmin(id string) bool {
	u, err := s.ByID(id)
	return err == nil && u.IsAdmin
}

// Add creates a user with an id derived from the name.
func (s *Service) Add(ctx context.Context, name string) (domain.User, error) {
	if name == "" {
		return domain.User{}, ErrMissingName
	}
	user := domain.User{
		ID:         domain.UserIDFromName(name),
		Name:       name,
		LastActive: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == user.ID {
			return domain.User{}, ErrAlreadyExists
		}
	}
	s.users = append(s.users, user)
	if err := s.store.Replace(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return domain.User{}, err
	}
	return user, nil
}

// Update renames a user; the id is stable once created.
func (s *Service) Update(ctx context.Context, id, name string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		previous := s.users[i]
		if name != "" {
			s.users[i].Name = name
		}
		s.users[i].LastActive = time.Now().Unix()
		if err := s.store.Replace(ctx, s.users); err != nil {
			s.users[i] = previous
			return domain.User{}, err
		}
		return s.users[i], nil
	}
	return domain.User{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		remaining := append(append([]domain.User(nil), s.users[:i]...), s.users[i+1:]...)
		if err := s.store.Replace(ctx, remaining); err != nil {
			return domain.User{}, err
		}
		s.users = remaining
		return u, nil
	}
	return domain.User{}, ErrNotFound
}
