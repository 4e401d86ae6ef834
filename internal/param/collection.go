package param

// Collection exposes an ordered list of parameters and, optionally, named
// child collections.
type Collection interface {
	// Parameters returns the collection's own accesses in declaration order.
	Parameters() []Access
	// Children returns the child slots in declaration order.
	Children() []Child
	// Events is the emitter for structure and value changes of this collection.
	Events() *Emitter
}

// Child is a named slot holding a nested collection.
type Child struct {
	Key         string
	Name        string
	Description string
	Hidden      bool
	UIOrder     int
	// Resolve returns the nested collection. A nil collection means the slot is
	// currently empty. Errors are collaborator faults; a collection returned
	// together with an error is partial and is still visited.
	Resolve func() (Collection, error)
}

// StaticChild builds a Child that always resolves to c.
func StaticChild(key string, c Collection) Child {
	return Child{
		Key:     key,
		Resolve: func() (Collection, error) { return c, nil },
	}
}

// Lookup finds a parameter by local key.
func Lookup(c Collection, key string) (Access, bool) {
	for _, a := range c.Parameters() {
		if a.Key() == key {
			return a, true
		}
	}
	return nil, false
}
