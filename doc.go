// Package sf provides the scalar type vocabulary and flat result-code
// taxonomy shared by every layer of the runtime: the state vector, the
// state machine, tasks, the executor, and the platform support layer.
//
// # Result codes
//
// Every public operation in this module returns a [Result] instead of
// panicking or allocating an error value on success. [Result] implements
// the standard [error] interface so it composes with [errors.Is] and
// [fmt.Errorf] at call sites that want that, but the hot path (state
// machine stepping, expression evaluation, task stepping) never boxes an
// error value; it passes the [Result] by value.
//
// # Scalar types
//
// [Scalar] constrains the element type parameter used throughout
// github.com/sf-go/sf/core: i8/i16/i32/i64, u8/u16/u32/u64, f32/f64, and
// bool. [ElementType] is the corresponding runtime type tag, with stable
// numeric values suitable for serialization.
package sf
