package param

import "fmt"

// Set is a dynamic, ordered parameter collection. Parameters and children are
// registered explicitly; every structural mutation fires exactly one
// StructureChanged event.
type Set struct {
	owner    Collection
	params   []*Value
	children []Child
	events   Emitter
}

// SetOption configures a Set.
type SetOption func(*Set)

// WithOwner makes events and Source() report owner instead of the Set itself.
// Types that embed a Set to expose it as their own surface use this.
func WithOwner(owner Collection) SetOption {
	return func(s *Set) { s.owner = owner }
}

// NewSet creates an empty Set.
func NewSet(opts ...SetOption) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}
	if s.owner == nil {
		s.owner = s
	}
	return s
}

// Add registers a parameter under key. Keys must be unique within the Set.
func (s *Set) Add(key string, b Binding, meta Meta) (*Value, error) {
	if key == "" {
		return nil, fmt.Errorf("parameter key cannot be empty")
	}
	if _, exists := s.Get(key); exists {
		return nil, fmt.Errorf("parameter '%s' already registered", key)
	}
	v := &Value{key: key, meta: meta, binding: b, source: s.owner, emitter: &s.events}
	s.params = append(s.params, v)
	s.emitStructure()
	return v, nil
}

// MustAdd is Add for static registrations, which cannot fail at runtime.
func (s *Set) MustAdd(key string, b Binding, meta Meta) *Value {
	v, err := s.Add(key, b, meta)
	if err != nil {
		panic(err)
	}
	return v
}

// Remove unregisters a parameter.
func (s *Set) Remove(key string) bool {
	for i, v := range s.params {
		if v.key == key {
			s.params = append(s.params[:i], s.params[i+1:]...)
			s.emitStructure()
			return true
		}
	}
	return false
}

// Get finds a registered parameter by key.
func (s *Set) Get(key string) (*Value, bool) {
	for _, v := range s.params {
		if v.key == key {
			return v, true
		}
	}
	return nil, false
}

// AddChild registers a nested collection under key.
func (s *Set) AddChild(key string, c Collection) {
	s.AddChildSlot(StaticChild(key, c))
}

// AddChildSlot registers a child slot with full metadata and a custom resolver.
func (s *Set) AddChildSlot(ch Child) {
	s.children = append(s.children, ch)
	s.emitStructure()
}

// RemoveChild unregisters the first child slot with the given key.
func (s *Set) RemoveChild(key string) bool {
	for i, ch := range s.children {
		if ch.Key == key {
			s.children = append(s.children[:i], s.children[i+1:]...)
			s.emitStructure()
			return true
		}
	}
	return false
}

// Parameters implements Collection.
func (s *Set) Parameters() []Access {
	out := make([]Access, len(s.params))
	for i, v := range s.params {
		out[i] = v
	}
	return out
}

// Children implements Collection.
func (s *Set) Children() []Child {
	return append([]Child(nil), s.children...)
}

// Events implements Collection.
func (s *Set) Events() *Emitter {
	return &s.events
}

func (s *Set) emitStructure() {
	s.events.Emit(Event{Kind: StructureChanged, Source: s.owner})
}
