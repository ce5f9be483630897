package wfcontext

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrKeyNotFound is returned by typed access when the key is absent.
var ErrKeyNotFound = errors.New("wfcontext: key not found")

// ErrTypeMismatch is returned by typed access when the stored value is not
// assignable to the requested type.
var ErrTypeMismatch = errors.New("wfcontext: stored value has unexpected type")

// TypedLookupError carries the key and the expected/actual types for a
// failed typed access.
type TypedLookupError struct {
	Key  string
	Want reflect.Type
	Got  reflect.Type
	err  error
}

func (e *TypedLookupError) Error() string {
	if errors.Is(e.err, ErrKeyNotFound) {
		return fmt.Sprintf("wfcontext: key %q not found", e.Key)
	}
	return fmt.Sprintf("wfcontext: key %q has type %v, want %v", e.Key, e.Got, e.Want)
}

func (e *TypedLookupError) Unwrap() error { return e.err }

// GetTyped returns the value at key if and only if it is assignable to T;
// otherwise it fails with a TypedLookupError wrapping ErrKeyNotFound or
// ErrTypeMismatch.
func GetTyped[T any](c *Context, key string) (T, error) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, &TypedLookupError{Key: key, Want: reflect.TypeOf(zero), err: ErrKeyNotFound}
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &TypedLookupError{Key: key, Want: reflect.TypeOf(zero), Got: reflect.TypeOf(v), err: ErrTypeMismatch}
	}
	return typed, nil
}

// GetTypedDefault returns the value at key if present and assignable to
// T; otherwise it returns def — covering both "absent" and "wrong type".
func GetTypedDefault[T any](c *Context, key string, def T) T {
	v, err := GetTyped[T](c, key)
	if err != nil {
		return def
	}
	return v
}

// Key is a fully-parameterised typed key: a "type reference" carrier that
// preserves T (including generic element types, e.g. Key[[]string])
// across Get/Put, Copy, and GetKeyDefault, unlike a bare string key.
type Key[T any] struct {
	name string
}

// NewKey builds a typed key bound to name.
func NewKey[T any](name string) Key[T] { return Key[T]{name: name} }

// Name returns the underlying string key.
func (k Key[T]) Name() string { return k.name }

// PutKey writes value under k's name.
func PutKey[T any](c *Context, k Key[T], value T) {
	c.Put(k.name, value)
}

// GetKey is GetTyped specialised to k's name and type.
func GetKey[T any](c *Context, k Key[T]) (T, error) {
	return GetTyped[T](c, k.name)
}

// GetKeyDefault is GetTypedDefault specialised to k's name and type.
func GetKeyDefault[T any](c *Context, k Key[T], def T) T {
	return GetTypedDefault[T](c, k.name, def)
}
