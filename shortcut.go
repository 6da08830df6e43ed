package lnkinfo

import (
	"fmt"
	"os"
	"sync/atomic"

	goerrors "github.com/go-errors/errors"

	"github.com/andrewstucki/lnkinfo/lnk"
)

// Shortcut is a handle to a shortcut on disk and its most recently decoded
// contents. It is safe for concurrent use.
type Shortcut struct {
	path string
	info atomic.Pointer[lnk.Info]
}

// Open reads and decodes the shortcut at path.
func Open(path string) (*Shortcut, error) {
	s := &Shortcut{path: path}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the path the shortcut was opened with.
func (s *Shortcut) Path() string {
	return s.path
}

// Info returns the decoded shortcut, or nil if the last refresh failed.
// The returned value must not be modified.
func (s *Shortcut) Info() *lnk.Info {
	return s.info.Load()
}

// Valid reports whether the last refresh succeeded.
func (s *Shortcut) Valid() bool {
	return s.info.Load() != nil
}

// Refresh re-reads the file and replaces the decoded contents. On failure
// the handle is left invalid.
func (s *Shortcut) Refresh() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.info.Store(nil)
		return goerrors.Wrap(fmt.Errorf("%w: %w", lnk.ErrIO, err), 1)
	}
	info, err := lnk.Decode(data)
	if err != nil {
		s.info.Store(nil)
		return err
	}
	s.info.Store(info)
	return nil
}
