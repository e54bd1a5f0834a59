package dispatch

// Invocation captures one member call observed by a Fake.
type Invocation struct {
	Member string
	Args   []any
}

// Fake is an in-memory Object useful for unit tests. It records every
// interaction and returns scripted results.
//
// Results are looked up by member name; OnCall, when set, takes precedence and
// receives the recorded arguments. Put stores values in Props so a later Get
// observes them.
type Fake struct {
	Props   map[string]any
	Results map[string]any
	Errors  map[string]error
	OnCall  func(member string, args []any) (any, error)

	calls []Invocation
	puts  []Invocation
	gets  []string
	flags []string
}

var _ Object = (*Fake)(nil)

// NewFake returns an empty fake host object.
func NewFake() *Fake {
	return &Fake{
		Props:   make(map[string]any),
		Results: make(map[string]any),
		Errors:  make(map[string]error),
	}
}

// Get implements Object.
func (f *Fake) Get(member string) (any, error) {
	f.gets = append(f.gets, member)
	if err := f.Errors[member]; err != nil {
		return nil, err
	}
	return f.Props[member], nil
}

// Put implements Object.
func (f *Fake) Put(member string, value any) error {
	f.puts = append(f.puts, Invocation{Member: member, Args: []any{value}})
	if err := f.Errors[member]; err != nil {
		return err
	}
	if f.Props == nil {
		f.Props = make(map[string]any)
	}
	f.Props[member] = value
	return nil
}

// Call implements Object.
func (f *Fake) Call(member string, args ...any) (any, error) {
	f.calls = append(f.calls, Invocation{Member: member, Args: append([]any(nil), args...)})
	if f.OnCall != nil {
		return f.OnCall(member, args)
	}
	if err := f.Errors[member]; err != nil {
		return nil, err
	}
	return f.Results[member], nil
}

// FlagAsMethod implements Object.
func (f *Fake) FlagAsMethod(member string) error {
	f.flags = append(f.flags, member)
	return nil
}

// Calls returns a copy of all recorded calls in order.
func (f *Fake) Calls() []Invocation {
	return append([]Invocation(nil), f.calls...)
}

// CallsTo returns the recorded calls of member.
func (f *Fake) CallsTo(member string) []Invocation {
	var out []Invocation
	for _, c := range f.calls {
		if c.Member == member {
			out = append(out, c)
		}
	}
	return out
}

// LastCall returns the most recent call.
func (f *Fake) LastCall() (Invocation, bool) {
	if len(f.calls) == 0 {
		return Invocation{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// Puts returns the recorded property writes.
func (f *Fake) Puts() []Invocation {
	return append([]Invocation(nil), f.puts...)
}

// Gets returns the recorded property reads.
func (f *Fake) Gets() []string {
	return append([]string(nil), f.gets...)
}

// Flags returns every FlagAsMethod request in order.
func (f *Fake) Flags() []string {
	return append([]string(nil), f.flags...)
}

// Reset clears the recorded interactions but keeps scripted results.
func (f *Fake) Reset() {
	f.calls = nil
	f.puts = nil
	f.gets = nil
	f.flags = nil
}
