// Package content serves pathway nodes from a YAML file. The file is the
// static data source of the public site; it is reloaded when edited on disk
// and rewritten when a node is updated through the store.
package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
)

// Document is the on-disk layout of the content file.
type Document struct {
	Nodes []pathway.Node `yaml:"nodes"`
}

// FileStore implements repository.NodeStore over a YAML document.
type FileStore struct {
	path   string
	mem    *memory.NodeStore
	logger *zap.Logger

	writeMu sync.Mutex
}

// Open loads path. A missing file is created from fallback so a fresh
// checkout serves the built-in catalog.
func Open(path string, fallback []pathway.Node, logger *zap.Logger) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		mem:    memory.NewNodeStore(nil),
		logger: logger.With(zap.String("content_file", path)),
	}

	nodes, err := readDocument(path)
	switch {
	case err == nil:
		s.mem.Replace(nodes)
	case os.IsNotExist(err):
		s.mem.Replace(fallback)
		if err := s.persist(); err != nil {
			return nil, err
		}
		s.logger.Info("Created content file from built-in catalog", zap.Int("nodes", len(fallback)))
	default:
		return nil, err
	}
	return s, nil
}

// Path returns the watched file.
func (s *FileStore) Path() string {
	return s.path
}

// ListByPosition implements repository.NodeStore.
func (s *FileStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	return s.mem.ListByPosition(ctx)
}

// UpdateByID implements repository.NodeStore and rewrites the file.
func (s *FileStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	updated, err := s.mem.UpdateByID(ctx, node)
	if err != nil {
		return nil, err
	}
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return updated, nil
}

// Reload re-reads the file into memory.
func (s *FileStore) Reload() error {
	nodes, err := readDocument(s.path)
	if err != nil {
		return err
	}
	s.mem.Replace(nodes)
	s.logger.Info("Content file reloaded", zap.Int("nodes", len(nodes)))
	return nil
}

func (s *FileStore) persist() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.persistLocked()
}

// persistLocked writes through a temp file and rename so readers and the
// watcher never observe a half-written document.
func (s *FileStore) persistLocked() error {
	data, err := yaml.Marshal(Document{Nodes: s.mem.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to encode content file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".pathway-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp content file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write content file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func readDocument(path string) ([]pathway.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	for i := range doc.Nodes {
		doc.Nodes[i] = doc.Nodes[i].Normalize()
	}
	return doc.Nodes, nil
}
