package param

import "github.com/zclconf/go-cty/cty"

// Persistence controls whether a parameter is written when its owner is saved.
type Persistence int

const (
	// Persistent parameters are serialized with their owner.
	Persistent Persistence = iota
	// Transient parameters are never serialized.
	Transient
)

func (p Persistence) String() string {
	if p == Transient {
		return "transient"
	}
	return "persistent"
}

// Access is a typed get/set handle to one parameter plus its metadata.
//
// Implementations must be pointer types; the parameter tree indexes accesses
// by identity.
type Access interface {
	// Key is the local key, unique within the owning collection.
	Key() string
	Name() string
	Description() string
	FieldType() cty.Type
	Hidden() bool
	Important() bool
	UIOrder() int
	Persistence() Persistence
	Get() any
	Set(value any) error
	// Source is the owning collection. The access does not own it.
	Source() Collection
}

// Meta is the declarative metadata attached to a registered parameter.
type Meta struct {
	Name        string
	Description string
	// Type overrides the type implied by the binding when set.
	Type        cty.Type
	Hidden      bool
	Important   bool
	UIOrder     int
	Persistence Persistence
}

// Value is the standard Access implementation produced by Set.Add.
type Value struct {
	key     string
	meta    Meta
	binding Binding
	source  Collection
	emitter *Emitter
}

// Key implements Access.
func (v *Value) Key() string { return v.key }

// Name returns the display name, falling back to the key.
func (v *Value) Name() string {
	if v.meta.Name != "" {
		return v.meta.Name
	}
	return v.key
}

func (v *Value) Description() string      { return v.meta.Description }
func (v *Value) Hidden() bool             { return v.meta.Hidden }
func (v *Value) Important() bool          { return v.meta.Important }
func (v *Value) UIOrder() int             { return v.meta.UIOrder }
func (v *Value) Persistence() Persistence { return v.meta.Persistence }
func (v *Value) Source() Collection       { return v.source }

// FieldType returns the declared type, or the one implied by the binding.
func (v *Value) FieldType() cty.Type {
	if v.meta.Type != cty.NilType {
		return v.meta.Type
	}
	return v.binding.Type()
}

// Get reads the current value through the binding.
func (v *Value) Get() any {
	return v.binding.Get()
}

// Set writes through the binding and emits one ValueChanged event on success.
func (v *Value) Set(value any) error {
	if err := v.binding.Set(value); err != nil {
		return err
	}
	if v.emitter != nil {
		v.emitter.Emit(Event{Kind: ValueChanged, Key: v.key, Source: v.source})
	}
	return nil
}
