//go:build !windows

package dispatch

// Connect is unavailable outside windows.
func Connect(progID string, opts ...Option) (*Session, error) {
	return nil, ErrUnsupportedPlatform
}
