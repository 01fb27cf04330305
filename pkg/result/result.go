package result

// Result is the outcome of a single operation: either a success value or a
// typed failure. Exactly one arm is populated. The zero value is a failure
// with a generic unknown error, so an accidentally unset Result never reads
// as success.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps a failure. A nil err is normalized to an Unknown error so a
// failed Result always carries a non-nil *Error.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		err = Unknown(nil)
	}
	return Result[T]{err: err}
}

// FromLookup converts a nullable lookup outcome into a Result: a non-nil
// value succeeds, nil becomes NotFound(key).
func FromLookup[T any](value *T, key any) Result[T] {
	if value == nil {
		return Fail[T](NotFound(key))
	}
	return Ok(*value)
}

// FromNullable is FromLookup with a caller-supplied failure for the nil case.
func FromNullable[T any](value *T, err *Error) Result[T] {
	if value == nil {
		return Fail[T](err)
	}
	return Ok(*value)
}

// IsOk reports whether the Result holds a success value.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether the Result holds a failure.
func (r Result[T]) IsErr() bool { return !r.ok }

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *Error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return Unknown(nil)
	}
	return r.err
}

// OrElse returns the success value or def on failure.
func (r Result[T]) OrElse(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// Map transforms the success value, passing failures through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsErr() {
		return Fail[U](r.Err())
	}
	return Ok(fn(r.value))
}

// FlatMap chains a Result-returning operation onto a success, passing
// failures through unchanged.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Fail[U](r.Err())
	}
	return fn(r.value)
}

// Match reduces a Result to a single value by applying exactly one of the
// two functions.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(*Error) U) U {
	if r.IsOk() {
		return onOk(r.value)
	}
	return onErr(r.Err())
}
