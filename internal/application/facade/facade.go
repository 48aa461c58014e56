// Package facade reúne la política común de las funciones de servicio: una llamada al
// backend, el error se registra y se devuelve como result.Err, nunca como pánico.
package facade

import (
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Rows normaliza una lectura: error → Err (lista vacía al proyectar), nil → lista vacía.
func Rows[T any](log *logger.Logger, op string, rows []T, err error) result.Result[[]T] {
	if err != nil {
		log.Failure(op, err).Msg("lectura fallida, se devuelve lista vacía")
		return result.Err[[]T](err)
	}
	if rows == nil {
		rows = []T{}
	}
	return result.Ok(rows)
}

// One normaliza una fila: (nil, nil) del repositorio se convierte en ErrNotFound.
func One[T any](log *logger.Logger, op string, row *T, err error) result.Result[*T] {
	if err != nil {
		log.Failure(op, err).Msg("operación fallida")
		return result.Err[*T](err)
	}
	if row == nil {
		return result.Err[*T](domain.ErrNotFound)
	}
	return result.Ok(row)
}

// Done normaliza una mutación sin fila de retorno.
func Done(log *logger.Logger, op string, err error) result.Result[struct{}] {
	if err != nil {
		log.Failure(op, err).Msg("mutación fallida")
		return result.Err[struct{}](err)
	}
	return result.Ok(struct{}{})
}

// Invalid rechaza una entrada antes de llegar al backend.
func Invalid[T any](log *logger.Logger, op string, err error) result.Result[T] {
	log.Rejected(op, err).Msg("entrada rechazada")
	return result.Err[T](err)
}

// Touch invalida la clave si la mutación fue exitosa. inv puede ser nil.
func Touch[T any](inv cache.Invalidator, key string, r result.Result[T]) result.Result[T] {
	if inv != nil && r.IsOk() {
		inv.Invalidate(key)
	}
	return r
}
