package wellcad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/timzifer/wellcad/dispatch"
)

// ErrCommaInPath is returned by MultiFileImport for file names the host cannot
// load because it splits its file list on commas.
var ErrCommaInPath = errors.New("wellcad: file name contains a comma")

// Application is the host application.
type Application struct {
	h       *dispatch.Handle
	session *dispatch.Session
}

// NewApplication wraps a handle referring to the host application object.
func NewApplication(h *dispatch.Handle) *Application {
	return &Application{h: h}
}

// Connect starts or attaches to the host registered as progID
// (dispatch.DefaultProgID when empty). The returned application owns the
// connection and must be closed.
func Connect(progID string, opts ...dispatch.Option) (*Application, error) {
	if progID == "" {
		progID = dispatch.DefaultProgID
	}
	session, err := dispatch.Connect(progID, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", progID, err)
	}
	return &Application{h: session.Handle(), session: session}, nil
}

// Close releases a connection opened by Connect. It does not quit the host.
func (a *Application) Close() error {
	if a == nil || a.session == nil {
		return nil
	}
	return a.session.Close()
}

// Dispatch returns the wrapped host object.
func (a *Application) Dispatch() dispatch.Object { return a.h.Object() }

func (a *Application) borehole(member string, args ...any) (*Borehole, error) {
	h, err := a.h.CallObject(member, args...)
	if err != nil || h == nil {
		return nil, err
	}
	return NewBorehole(h), nil
}

// ShowWindow makes the host main window visible.
func (a *Application) ShowWindow() (bool, error) {
	value, err := a.h.Call("ShowWindow")
	if err != nil {
		return false, err
	}
	if value == nil {
		return true, nil
	}
	return dispatch.AsBool(value)
}

// MinimizeWindow minimises the host main window.
func (a *Application) MinimizeWindow() error {
	_, err := a.h.Call("MinimizeWindow")
	return err
}

// MaximizeWindow maximises the host main window.
func (a *Application) MaximizeWindow() error {
	_, err := a.h.Call("MaximizeWindow")
	return err
}

// NewBorehole creates a document, laid out from the .WDT template when one is
// given.
func (a *Application) NewBorehole(template string) (*Borehole, error) {
	return a.borehole("NewBorehole", template)
}

// OpenBorehole opens the WCL document at path.
func (a *Application) OpenBorehole(path string) (*Borehole, error) {
	return a.borehole("OpenBorehole", path)
}

// CloseBorehole closes the active document.
func (a *Application) CloseBorehole(save bool) error {
	_, err := a.h.Call("CloseBorehole", save)
	return err
}

// BoreholeCount returns the number of open documents.
func (a *Application) BoreholeCount() (int, error) { return a.h.Int("NbOfDocuments") }

// ActiveBorehole returns the document that has the focus.
func (a *Application) ActiveBorehole() (*Borehole, error) {
	return a.borehole("GetActiveBorehole")
}

// Borehole returns an open document by zero based index.
func (a *Application) Borehole(index int) (*Borehole, error) {
	return a.borehole("GetBorehole", index)
}

// FileImport imports a data file (LAS, ASCII, WAQ and the other formats the
// host reads) into a new document. Errors are logged by the host to logFile
// when set.
func (a *Application) FileImport(path string, p Process, logFile string) (*Borehole, error) {
	return a.borehole("FileImport", path, p.Prompt, p.Config, logFile)
}

// MultiFileImport imports several data files into one new document.
func (a *Application) MultiFileImport(paths []string, p Process, logFile string) (*Borehole, error) {
	for _, path := range paths {
		if strings.Contains(path, ",") {
			return nil, fmt.Errorf("%q: %w", path, ErrCommaInPath)
		}
	}
	return a.borehole("MultiFileImport", strings.Join(paths, ","), p.Prompt, p.Config, logFile)
}

// Quit exits the host, saving open documents first when save is set.
func (a *Application) Quit(save bool) error {
	_, err := a.h.Call("Quit", save)
	return err
}
