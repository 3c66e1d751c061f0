package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prioritiser-backend/internal/assessment"
)

var (
	// ErrInvalidClientID marks a client id unsafe to use as a storage key.
	ErrInvalidClientID = errors.New("invalid client id")

	// ErrNotFound marks a missing progress blob.
	ErrNotFound = errors.New("progress not found")
)

// State is the in-progress assessment blob: the answers so far and the
// current step. Last write wins; there is no merging.
type State struct {
	Answers assessment.AnswersMap `json:"answers"`
	Step    int                   `json:"step"`
}

// Store persists per-client assessment progress.
type Store interface {
	Save(ctx context.Context, clientID string, state State) error
	Load(ctx context.Context, clientID string) (State, error)
	Clear(ctx context.Context, clientID string) error
}

// FileStore implements Store as one JSON file per client under baseDir.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: filepath.Join(baseDir, "progress")}
}

// Save overwrites the client's progress blob.
func (s *FileStore) Save(ctx context.Context, clientID string, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(clientID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// Load reads the client's progress blob.
func (s *FileStore) Load(ctx context.Context, clientID string) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	path, err := s.pathFor(clientID)
	if err != nil {
		return State{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, ErrNotFound
		}
		return State{}, fmt.Errorf("read progress: %w", err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode progress: %w", err)
	}
	if state.Answers == nil {
		state.Answers = assessment.AnswersMap{}
	}
	return state, nil
}

// Clear removes the client's progress blob. Clearing absent progress is not
// an error.
func (s *FileStore) Clear(ctx context.Context, clientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.pathFor(clientID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove progress: %w", err)
	}
	return nil
}

func (s *FileStore) pathFor(clientID string) (string, error) {
	if clientID == "" || len(clientID) > 128 {
		return "", ErrInvalidClientID
	}
	for _, c := range clientID {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return "", ErrInvalidClientID
		}
	}
	return filepath.Join(s.baseDir, clientID+".json"), nil
}

var _ Store = (*FileStore)(nil)
