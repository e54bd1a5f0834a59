package dispatch

// Session is a live connection to the host application created by Connect.
// Unlike a Handle, a Session owns the application object and releases it on
// Close.
type Session struct {
	root    *Handle
	release func() error
}

// Handle returns the handle of the application object.
func (s *Session) Handle() *Handle {
	if s == nil {
		return nil
	}
	return s.root
}

// Close releases the application object. Handles derived from the session must
// not be used afterwards. Close must be called from the goroutine that called
// Connect.
func (s *Session) Close() error {
	if s == nil || s.release == nil {
		return nil
	}
	release := s.release
	s.release = nil
	return release()
}
