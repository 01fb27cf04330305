package result

// Optional models a value that may legitimately be absent. Unlike a failed
// Result, a None Optional is not an error: it is the expected shape of
// "query matched no row" for lookups where absence is part of the contract.
// The zero value is None.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns the absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OfNullable converts a possibly nil pointer into an Optional.
func OfNullable[T any](value *T) Optional[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.present }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// MustGet returns the value, or the zero value when absent.
func (o Optional[T]) MustGet() T { return o.value }

// OrElse returns the value or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// MapOptional transforms a present value and is a no-op on None.
func MapOptional[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}
