package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

const (
	treeFile = "tree.json"
	dirPerm  = 0o755
	filePerm = 0o644
)

// Document is the content of tree.json.
type Document struct {
	Focused entity.ContainerID  `json:"focused,omitempty"`
	Tree    entity.ContainerDTO `json:"tree"`
}

// FileStore writes the tree to tree.json in the XDG state directory.
type FileStore struct {
	paths port.XDGPaths
	mu    sync.Mutex
}

var _ port.TreeStore = (*FileStore)(nil)

// NewFileStore creates a store rooted at the state directory of paths.
func NewFileStore(paths port.XDGPaths) *FileStore {
	return &FileStore{paths: paths}
}

// Path returns the location of tree.json.
func (s *FileStore) Path() (string, error) {
	dir, err := s.paths.StateDir()
	if err != nil {
		return "", fmt.Errorf("resolve state directory: %w", err)
	}
	return filepath.Join(dir, treeFile), nil
}

// SaveTree replaces tree.json. Readers never see a partial file.
func (s *FileStore) SaveTree(ctx context.Context, tree entity.ContainerDTO, focused entity.ContainerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(Document{Focused: focused, Tree: tree}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace tree: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("tree snapshot saved")
	return nil
}

// Load reads a tree.json written by SaveTree.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &doc, nil
}
