package wellcad

import "github.com/timzifer/wellcad/dispatch"

// Log is a log of a borehole document.
type Log struct {
	h *dispatch.Handle
}

// NewLog wraps a handle referring to a host log object.
func NewLog(h *dispatch.Handle) *Log {
	return &Log{h: h}
}

// Dispatch returns the wrapped host object.
func (l *Log) Dispatch() dispatch.Object { return l.h.Object() }

// Name returns the log title.
func (l *Log) Name() (string, error) { return l.h.String("Name") }

// SetName renames the log.
func (l *Log) SetName(name string) error { return l.h.Put("Name", name) }

// Type returns the kind of the log.
func (l *Log) Type() (LogType, error) {
	n, err := l.h.Int("Type")
	return LogType(n), err
}

// TopDepth returns the first depth holding data.
func (l *Log) TopDepth() (float64, error) { return l.h.Float("TopDepth") }

// BottomDepth returns the last depth holding data.
func (l *Log) BottomDepth() (float64, error) { return l.h.Float("BottomDepth") }

// Header is the document header of a borehole document.
type Header struct {
	h *dispatch.Handle
}

// NewHeader wraps a handle referring to a host header object.
func NewHeader(h *dispatch.Handle) *Header {
	return &Header{h: h}
}

// Dispatch returns the wrapped host object.
func (hd *Header) Dispatch() dispatch.Object { return hd.h.Object() }

// ItemText returns the text of the header item called item.
func (hd *Header) ItemText(item string) (string, error) {
	value, err := hd.h.Call("ItemText", item)
	if err != nil {
		return "", err
	}
	return dispatch.AsString(value)
}

// SetItemText replaces the text of the header item called item.
func (hd *Header) SetItemText(item, text string) error {
	_, err := hd.h.Call("SetItemText", item, text)
	return err
}

// Page holds the page layout of a borehole document.
type Page struct {
	h *dispatch.Handle
}

// NewPage wraps a handle referring to a host page object.
func NewPage(h *dispatch.Handle) *Page {
	return &Page{h: h}
}

// Dispatch returns the wrapped host object.
func (p *Page) Dispatch() dispatch.Object { return p.h.Object() }

// NbOfPages returns the number of printed pages of the document.
func (p *Page) NbOfPages() (int, error) { return p.h.Int("NbOfPages") }

// Workspace is a processing workspace stored in a borehole document.
type Workspace struct {
	h *dispatch.Handle
}

// NewWorkspace wraps a handle referring to a host workspace object.
func NewWorkspace(h *dispatch.Handle) *Workspace {
	return &Workspace{h: h}
}

// Dispatch returns the wrapped host object.
func (w *Workspace) Dispatch() dispatch.Object { return w.h.Object() }

// Name returns the workspace name.
func (w *Workspace) Name() (string, error) { return w.h.String("Name") }

// Odbc gives access to the database connection of a borehole document.
type Odbc struct {
	h *dispatch.Handle
}

// NewOdbc wraps a handle referring to a host ODBC object.
func NewOdbc(h *dispatch.Handle) *Odbc {
	return &Odbc{h: h}
}

// Dispatch returns the wrapped host object.
func (o *Odbc) Dispatch() dispatch.Object { return o.h.Object() }

// Connect opens the data source named dsn.
func (o *Odbc) Connect(dsn string) error {
	_, err := o.h.Call("Connect", dsn)
	return err
}

// Title is the title box of a log.
type Title struct {
	h *dispatch.Handle
}

// NewTitle wraps a handle referring to a host title object.
func NewTitle(h *dispatch.Handle) *Title {
	return &Title{h: h}
}

// Dispatch returns the wrapped host object.
func (t *Title) Dispatch() dispatch.Object { return t.h.Object() }

// Name returns the title text.
func (t *Title) Name() (string, error) { return t.h.String("Name") }

// Depth is the master vertical axis of a borehole document, in depth or time.
type Depth struct {
	h *dispatch.Handle
}

// NewDepth wraps a handle referring to a host depth object.
func NewDepth(h *dispatch.Handle) *Depth {
	return &Depth{h: h}
}

// Dispatch returns the wrapped host object.
func (d *Depth) Dispatch() dispatch.Object { return d.h.Object() }

// CurrentUnit returns the unit the axis is displayed in.
func (d *Depth) CurrentUnit() (string, error) { return d.h.String("CurrentUnit") }
