package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrForeignKey   = errors.New("foreign key constraint")
	ErrUnknown      = errors.New("fallo desconocido del backend")
)

// BackendError envuelve un fallo del backend conservando su mensaje original.
// Code es el SQLSTATE cuando el backend lo reporta.
type BackendError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *BackendError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrDuplicate) sobre violaciones conocidas.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrDuplicate:
		return e.Code == "23505"
	case ErrForeignKey:
		return e.Code == "23503"
	}
	return false
}

// Reason devuelve el mensaje "crudo" del backend para mostrarlo tal cual.
// Si no hay BackendError en la cadena, usa el error más interno.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
