package content

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Store holds the page currently being served. Readers never block; a
// reload swaps the whole page at once.
type Store struct {
	page   atomic.Pointer[Page]
	path   string
	logger *zap.Logger
}

// NewStore returns a store serving initial. path is the content file that
// Reload and Watch read; it may be empty for built-in content.
func NewStore(initial *Page, path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{path: path, logger: logger}
	s.page.Store(initial)
	return s
}

// Page returns the current page. Callers must treat it as read only.
func (s *Store) Page() *Page {
	return s.page.Load()
}

// Path is the watched file, or empty for built-in content.
func (s *Store) Path() string { return s.path }

// Reload reads and validates the content file. On any error the current
// page is kept and the error returned.
func (s *Store) Reload() error {
	p, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.page.Store(p)
	s.logger.Info("content reloaded",
		zap.String("path", s.path),
		zap.Int("projects", len(p.Projects)),
		zap.Int("roles", len(p.Experience)))
	return nil
}
