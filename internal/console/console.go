// Package console acquires the console that command output is printed to.
//
// A session must always be closed. On Windows, closing a session that
// attached to the parent's console detaches from it again.
package console

import (
	"io"
)

type Session struct {
	Stdout  io.Writer
	release func() error
}

// Close the session. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.release == nil {
		return nil
	}
	release := s.release
	s.release = nil
	return release()
}

// Attacher acquires a session
type Attacher func() (*Session, error)

// Parent attaches to the console of the process that launched us, falling
// back to our own stdout.
func Parent() (*Session, error) {
	return attach()
}

// Writer returns an attacher whose sessions print to w
func Writer(w io.Writer) Attacher {
	return func() (*Session, error) {
		return &Session{Stdout: w}, nil
	}
}
