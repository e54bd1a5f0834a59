package dispatch

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/timzifer/wellcad/telemetry"
)

// Option configures a Handle during construction.
type Option func(*Handle)

// WithLogger attaches a logger receiving one debug event per host call.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handle) {
		if h == nil {
			return
		}
		h.logger = logger
	}
}

// WithTelemetry attaches a collector observing every host call.
func WithTelemetry(collector telemetry.Collector) Option {
	return func(h *Handle) {
		if h == nil {
			return
		}
		if collector == nil {
			collector = telemetry.Noop()
		}
		h.collector = collector
	}
}

// Handle is a non-owning reference to a host automation object.
type Handle struct {
	obj       Object
	logger    zerolog.Logger
	collector telemetry.Collector
	flagged   map[string]struct{}
}

// NewHandle wraps obj. The returned handle does not take ownership of obj.
func NewHandle(obj Object, opts ...Option) *Handle {
	h := &Handle{
		obj:       obj,
		logger:    zerolog.Nop(),
		collector: telemetry.Noop(),
		flagged:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h
}

// Object returns the wrapped automation object.
func (h *Handle) Object() Object {
	if h == nil {
		return nil
	}
	return h.obj
}

// Wrap returns a handle for obj sharing this handle's logger and collector.
func (h *Handle) Wrap(obj Object) *Handle {
	return &Handle{
		obj:       obj,
		logger:    h.logger,
		collector: h.collector,
		flagged:   make(map[string]struct{}),
	}
}

// Get reads a property.
func (h *Handle) Get(member string) (any, error) {
	if h == nil || h.obj == nil {
		return nil, ErrNilObject
	}
	start := time.Now()
	value, err := h.obj.Get(member)
	h.observe("get", member, start, err)
	return value, err
}

// Put writes a property.
func (h *Handle) Put(member string, value any) error {
	if h == nil || h.obj == nil {
		return ErrNilObject
	}
	start := time.Now()
	err := h.obj.Put(member, value)
	h.observe("put", member, start, err)
	return err
}

// Call invokes member with positional args. Arguments and results are
// forwarded as-is and host errors are returned unchanged.
func (h *Handle) Call(member string, args ...any) (any, error) {
	if h == nil || h.obj == nil {
		return nil, ErrNilObject
	}
	start := time.Now()
	value, err := h.obj.Call(member, args...)
	h.observe("call", member, start, err)
	return value, err
}

// CallMethod flags member as a method on first use and then calls it.
func (h *Handle) CallMethod(member string, args ...any) (any, error) {
	if err := h.flag(member); err != nil {
		return nil, err
	}
	return h.Call(member, args...)
}

// GetObject reads a property holding a host object. The object variants
// return a nil handle when the host returns nothing.
func (h *Handle) GetObject(member string) (*Handle, error) {
	value, err := h.Get(member)
	if err != nil {
		return nil, err
	}
	return h.wrapResult(member, value)
}

// CallObject calls member and wraps the returned host object.
func (h *Handle) CallObject(member string, args ...any) (*Handle, error) {
	value, err := h.Call(member, args...)
	if err != nil {
		return nil, err
	}
	return h.wrapResult(member, value)
}

// CallMethodObject is CallMethod followed by result wrapping.
func (h *Handle) CallMethodObject(member string, args ...any) (*Handle, error) {
	value, err := h.CallMethod(member, args...)
	if err != nil {
		return nil, err
	}
	return h.wrapResult(member, value)
}

// Flagged reports whether member has been registered as a method.
func (h *Handle) Flagged(member string) bool {
	if h == nil {
		return false
	}
	_, ok := h.flagged[member]
	return ok
}

func (h *Handle) flag(member string) error {
	if h == nil || h.obj == nil {
		return ErrNilObject
	}
	if _, ok := h.flagged[member]; ok {
		return nil
	}
	if err := h.obj.FlagAsMethod(member); err != nil {
		return err
	}
	h.flagged[member] = struct{}{}
	return nil
}

// wrapResult wraps a host object. An empty result (nil) yields a nil handle
// and no error: the host completed the call without returning an object.
func (h *Handle) wrapResult(member string, value any) (*Handle, error) {
	if value == nil {
		return nil, nil
	}
	obj, ok := value.(Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%s: %w (got %T)", member, ErrNotObject, value)
	}
	return h.Wrap(obj), nil
}

func (h *Handle) observe(op, member string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := telemetry.OutcomeOK
	if err != nil {
		outcome = telemetry.OutcomeError
	}
	h.collector.ObserveCall(member, outcome, elapsed)
	h.logger.Debug().
		Str("op", op).
		Str("member", member).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("dispatch")
}
