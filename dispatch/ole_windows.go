//go:build windows

package dispatch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialised on the
// calling thread.
const sFalse = 0x00000001

// Connect starts (or attaches to) the host application registered under
// progID and returns a session owning the application object.
//
// COM is initialised in a single-threaded apartment on the calling goroutine's
// OS thread, which stays locked until Close.
func Connect(progID string, opts ...Option) (*Session, error) {
	if progID == "" {
		progID = DefaultProgID
	}
	runtime.LockOSThread()
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("initialize com: %w", err)
		}
	}
	unknown, err := oleutil.CreateObject(progID)
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("create %s: %w", progID, err)
	}
	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("query IDispatch of %s: %w", progID, err)
	}
	release := func() error {
		disp.Release()
		unknown.Release()
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil
	}
	return &Session{root: NewHandle(newOLEObject(disp), opts...), release: release}, nil
}

// oleObject implements Object on top of an IDispatch pointer. It does not
// release the pointer: host objects returned from calls stay owned by the host.
type oleObject struct {
	disp    *ole.IDispatch
	methods map[string]struct{}
}

func newOLEObject(disp *ole.IDispatch) *oleObject {
	return &oleObject{disp: disp, methods: make(map[string]struct{})}
}

func (o *oleObject) Get(member string) (any, error) {
	v, err := oleutil.GetProperty(o.disp, member)
	if err != nil {
		return nil, err
	}
	return o.fromVariant(v), nil
}

func (o *oleObject) Put(member string, value any) error {
	v, err := oleutil.PutProperty(o.disp, member, toOLE(value))
	if err != nil {
		return err
	}
	if v != nil {
		v.Clear()
	}
	return nil
}

func (o *oleObject) Call(member string, args ...any) (any, error) {
	kind := int16(ole.DISPATCH_METHOD | ole.DISPATCH_PROPERTYGET)
	if _, ok := o.methods[member]; ok {
		kind = ole.DISPATCH_METHOD
	}
	params := make([]interface{}, len(args))
	for i, arg := range args {
		params[i] = toOLE(arg)
	}
	v, err := o.disp.InvokeWithOptionalArgs(member, kind, params)
	if err != nil {
		return nil, err
	}
	return o.fromVariant(v), nil
}

func (o *oleObject) FlagAsMethod(member string) error {
	o.methods[member] = struct{}{}
	return nil
}

func (o *oleObject) fromVariant(v *ole.VARIANT) any {
	if v == nil {
		return nil
	}
	if v.VT == ole.VT_DISPATCH {
		disp := v.ToIDispatch()
		if disp == nil {
			return nil
		}
		return newOLEObject(disp)
	}
	value := v.Value()
	v.Clear()
	return value
}

// toOLE converts facade arguments into values go-ole can marshal.
func toOLE(value any) any {
	switch v := value.(type) {
	case *oleObject:
		return v.disp
	case int:
		return int32(v)
	}
	return value
}
