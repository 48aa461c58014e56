// Package result define el tipo etiquetado Ok | Err que atraviesa las capas de servicio
// y sus proyecciones a las formas de respuesta de la fachada CRUD.
package result

import (
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
)

// Result es Ok(valor) o Err(causa). El valor cero es Ok con el valor cero de T.
type Result[T any] struct {
	value T
	err   error
}

// Ok construye un resultado exitoso.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err construye un resultado fallido. Un err nil se trata como fallo desconocido.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = domain.ErrUnknown
	}
	return Result[T]{err: err}
}

// Of adapta el par (valor, error) habitual de Go.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk indica si el resultado es exitoso.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Value devuelve el valor (cero si es Err).
func (r Result[T]) Value() T { return r.value }

// ValueOr devuelve el valor o def si es Err.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Err devuelve la causa del fallo o nil.
func (r Result[T]) Err() error { return r.err }

// Reason devuelve el mensaje del backend tal cual, o "" si es Ok.
func (r Result[T]) Reason() string {
	return domain.Reason(r.err)
}
