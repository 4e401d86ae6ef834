package param

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Binding connects an Access to the storage behind it.
type Binding interface {
	Get() any
	Set(value any) error
	Type() cty.Type
}

type fieldBinding[T any] struct {
	ptr *T
	ty  cty.Type
}

// Field binds a Go variable. Set accepts a T, or a cty.Value convertible to
// the type implied by T.
func Field[T any](ptr *T) Binding {
	ty := cty.DynamicPseudoType
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		var zero T
		if implied, err := gocty.ImpliedType(zero); err == nil {
			ty = implied
		}
	}
	return &fieldBinding[T]{ptr: ptr, ty: ty}
}

func (b *fieldBinding[T]) Get() any       { return *b.ptr }
func (b *fieldBinding[T]) Type() cty.Type { return b.ty }

func (b *fieldBinding[T]) Set(value any) error {
	switch v := value.(type) {
	case T:
		*b.ptr = v
		return nil
	case cty.Value:
		if b.ty == cty.DynamicPseudoType {
			return fmt.Errorf("cannot assign cty value of type %s to %s", v.Type().FriendlyName(), reflect.TypeFor[T]())
		}
		converted, err := convert.Convert(v, b.ty)
		if err != nil {
			return fmt.Errorf("cannot convert %s to %s: %w", v.Type().FriendlyName(), b.ty.FriendlyName(), err)
		}
		var out T
		if err := gocty.FromCtyValue(converted, &out); err != nil {
			return err
		}
		*b.ptr = out
		return nil
	default:
		return fmt.Errorf("cannot assign %T to parameter of type %s", value, reflect.TypeFor[T]())
	}
}

type ctyBinding struct {
	val cty.Value
	ty  cty.Type
}

// CtyValue stores a cty.Value of the given type. Set accepts a cty.Value or
// any Go value gocty can describe, converted to the declared type.
func CtyValue(initial cty.Value, ty cty.Type) Binding {
	if initial.IsNull() {
		initial = cty.NullVal(ty)
	}
	return &ctyBinding{val: initial, ty: ty}
}

func (b *ctyBinding) Get() any       { return b.val }
func (b *ctyBinding) Type() cty.Type { return b.ty }

func (b *ctyBinding) Set(value any) error {
	val, ok := value.(cty.Value)
	if !ok && value == nil {
		val, ok = cty.NullVal(b.ty), true
	}
	if !ok {
		implied, err := gocty.ImpliedType(value)
		if err != nil {
			return fmt.Errorf("unable to infer cty.Type for %T: %w", value, err)
		}
		val, err = gocty.ToCtyValue(value, implied)
		if err != nil {
			return err
		}
	}
	converted, err := convert.Convert(val, b.ty)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), b.ty.FriendlyName(), err)
	}
	b.val = converted
	return nil
}

type funcBinding struct {
	get func() any
	set func(any) error
	ty  cty.Type
}

// Func builds a Binding from plain functions. A nil set makes the parameter
// read-only.
func Func(ty cty.Type, get func() any, set func(any) error) Binding {
	return &funcBinding{get: get, set: set, ty: ty}
}

func (b *funcBinding) Get() any       { return b.get() }
func (b *funcBinding) Type() cty.Type { return b.ty }

func (b *funcBinding) Set(value any) error {
	if b.set == nil {
		return fmt.Errorf("parameter is read-only")
	}
	return b.set(value)
}
