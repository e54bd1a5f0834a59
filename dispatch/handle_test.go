package dispatch

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	calls []string
}

func (r *recordingCollector) ObserveCall(member, outcome string, _ time.Duration) {
	r.calls = append(r.calls, member+":"+outcome)
}

func (r *recordingCollector) IncJobStep(string, string, string) {}

func TestHandleCallForwardsArgumentsUnchanged(t *testing.T) {
	fake := NewFake()
	fake.Results["RemoveLog"] = true
	h := NewHandle(fake)

	value, err := h.Call("RemoveLog", "GR", 2, nil)
	require.NoError(t, err)
	require.Equal(t, true, value)

	last, ok := fake.LastCall()
	require.True(t, ok)
	require.Equal(t, "RemoveLog", last.Member)
	require.Equal(t, []any{"GR", 2, nil}, last.Args)
	require.Empty(t, fake.Flags())
}

func TestHandleReturnsHostErrorUnchanged(t *testing.T) {
	hostErr := errors.New("document not open")
	fake := NewFake()
	fake.Errors["SaveAs"] = hostErr
	h := NewHandle(fake)

	_, err := h.Call("SaveAs", "C:\\well.wcl")
	require.Same(t, hostErr, err)
}

func TestCallMethodFlagsOncePerMember(t *testing.T) {
	fake := NewFake()
	h := NewHandle(fake)

	for i := 0; i < 3; i++ {
		_, err := h.CallMethod("FilterLog", 0, false, "")
		require.NoError(t, err)
	}
	_, err := h.CallMethod("AddLog", nil)
	require.NoError(t, err)

	require.Equal(t, []string{"FilterLog", "AddLog"}, fake.Flags())
	require.Len(t, fake.CallsTo("FilterLog"), 3)
	require.True(t, h.Flagged("FilterLog"))
	require.False(t, h.Flagged("ResampleLog"))

	fake.Results["FilterLog"] = 7
	fake.Reset()
	value, err := h.CallMethod("FilterLog", 0, false, "")
	require.NoError(t, err)
	require.Equal(t, 7, value)
	require.Empty(t, fake.Flags())
	require.Len(t, fake.CallsTo("FilterLog"), 1)
}

func TestCallObjectWrapsReturnedObject(t *testing.T) {
	child := NewFake()
	fake := NewFake()
	fake.Results["Log"] = child

	var logs bytes.Buffer
	collector := &recordingCollector{}
	h := NewHandle(fake, WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)), WithTelemetry(collector))

	wrapped, err := h.CallObject("Log", "GR")
	require.NoError(t, err)
	require.Same(t, child, wrapped.Object())

	_, err = wrapped.Get("Name")
	require.NoError(t, err)
	require.Equal(t, []string{"Log:ok", "Name:ok"}, collector.calls)
	require.Contains(t, logs.String(), `"member":"Name"`)
}

func TestCallObjectRejectsPlainValues(t *testing.T) {
	fake := NewFake()
	fake.Results["Log"] = "not an object"
	fake.Results["Header"] = 3
	h := NewHandle(fake)

	_, err := h.CallObject("Log", 0)
	require.ErrorIs(t, err, ErrNotObject)

	_, err = h.CallObject("Header")
	require.ErrorIs(t, err, ErrNotObject)
}

func TestEmptyResultYieldsNilHandle(t *testing.T) {
	fake := NewFake()
	h := NewHandle(fake)

	child, err := h.CallMethodObject("CorrectDeadSensor", 0, false, "")
	require.NoError(t, err)
	require.Nil(t, child)
	require.Len(t, fake.CallsTo("CorrectDeadSensor"), 1)

	child, err = h.GetObject("Header")
	require.NoError(t, err)
	require.Nil(t, child)
}

func TestGetObjectWrapsProperty(t *testing.T) {
	header := NewFake()
	fake := NewFake()
	fake.Props["Header"] = header

	h := NewHandle(fake)
	wrapped, err := h.GetObject("Header")
	require.NoError(t, err)
	require.Same(t, header, wrapped.Object())
	require.Empty(t, fake.Calls())
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	_, err := h.Call("Log", 0)
	require.ErrorIs(t, err, ErrNilObject)
	require.Nil(t, h.Object())

	_, err = NewHandle(nil).CallMethod("FilterLog")
	require.ErrorIs(t, err, ErrNilObject)
}

func TestTypedReaders(t *testing.T) {
	fake := NewFake()
	fake.Props["Name"] = "Well 1"
	fake.Props["VersionMajor"] = int32(5)
	fake.Props["TopDepth"] = float32(12.5)
	fake.Props["AutoUpdate"] = true
	fake.Props["Broken"] = []byte("x")
	h := NewHandle(fake)

	name, err := h.String("Name")
	require.NoError(t, err)
	require.Equal(t, "Well 1", name)

	major, err := h.Int("VersionMajor")
	require.NoError(t, err)
	require.Equal(t, 5, major)

	top, err := h.Float("TopDepth")
	require.NoError(t, err)
	require.InDelta(t, 12.5, top, 1e-9)

	auto, err := h.Bool("AutoUpdate")
	require.NoError(t, err)
	require.True(t, auto)

	_, err = h.Int("Broken")
	require.ErrorIs(t, err, ErrUnexpectedType)
	_, err = h.String("VersionMajor")
	require.ErrorIs(t, err, ErrUnexpectedType)
}

func TestAsIntRejectsFractions(t *testing.T) {
	_, err := AsInt(1.5)
	require.ErrorIs(t, err, ErrUnexpectedType)

	n, err := AsInt(float64(3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	b, err := AsBool(int16(0))
	require.NoError(t, err)
	require.False(t, b)
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	released := 0
	s := &Session{root: NewHandle(NewFake()), release: func() error {
		released++
		return nil
	}}
	require.NotNil(t, s.Handle())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.Equal(t, 1, released)
}
