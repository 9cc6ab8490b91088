package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/maelc/cinebooking/internal/domain"
)

type UserStore interface {
	Load(ctx context.Context) ([]domain.User, error)
	Replace(ctx context.Context, users []domain.User) error
}

type userFile struct {
	Users []domain.User `json:"users"`
}

type FileUserStore struct {
	path string
}

func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{path: path}
}

func (s *FileUserStore) Load(ctx context.Context) ([]domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.User{}, nil
		}
		return nil, fmt.Errorf("read users: %w", err)
	}
	var doc userFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if doc.Users == nil {
		doc.Users = []domain.User{}
	}
	return doc.Users, nil
}

func (s *FileUserStore) Replace(ctx context.Context, users []domain.User) error {
	data, err := json.MarshalIndent(userFile{Users: users}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

var _ UserStore = (*FileUserStore)(nil)
