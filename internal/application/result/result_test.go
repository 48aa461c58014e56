package result_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
)

type fila struct {
	ID     int64
	Nombre string
}

func TestToList_ErrorYNilDevuelvenVacio(t *testing.T) {
	assert.Equal(t, []fila{}, result.ToList(result.Err[[]fila](errors.New("timeout"))))
	assert.Equal(t, []fila{}, result.ToList(result.Ok[[]fila](nil)))

	rows := []fila{{ID: 1, Nombre: "Polo"}}
	assert.Equal(t, rows, result.ToList(result.Ok(rows)))
}

func TestToMutation_CamposExcluyentes(t *testing.T) {
	ok := result.ToMutation(result.Ok(struct{}{}))
	assert.True(t, ok.Success)
	assert.Empty(t, ok.Error)

	ko := result.ToMutation(result.Err[struct{}](errors.New("foreign key constraint")))
	assert.False(t, ko.Success)
	assert.Equal(t, "foreign key constraint", ko.Error)
}

func TestToRow_ExitoYFallo(t *testing.T) {
	row := result.ToRow(result.Ok(&fila{ID: 50, Nombre: "Polo Azul"}))
	if assert.NotNil(t, row.Data) {
		assert.Equal(t, int64(50), row.Data.ID)
	}
	assert.Empty(t, row.Error)

	failed := result.ToRow(result.Err[*fila](errors.New("duplicate key")))
	assert.Nil(t, failed.Data)
	assert.Equal(t, "duplicate key", failed.Error)

	empty := result.ToRow(result.Ok[*fila](nil))
	assert.Nil(t, empty.Data)
	assert.NotEmpty(t, empty.Error)
}

func TestReason_UsaMensajeDelBackend(t *testing.T) {
	be := &domain.BackendError{Op: "delete order", Code: "23503", Message: "foreign key constraint"}
	r := result.Err[struct{}](fmt.Errorf("servicio: %w", be))

	assert.Equal(t, "foreign key constraint", r.Reason())
	assert.ErrorIs(t, r.Err(), domain.ErrForeignKey)
	assert.False(t, r.IsOk())
}

func TestOf_YValueOr(t *testing.T) {
	assert.Equal(t, 3, result.Of(3, nil).ValueOr(7))
	assert.Equal(t, 7, result.Of(3, errors.New("x")).ValueOr(7))
	assert.True(t, result.Of("a", nil).IsOk())
}

func TestErr_NilEsFalloDesconocido(t *testing.T) {
	r := result.Err[struct{}](nil)

	assert.False(t, r.IsOk())
	assert.ErrorIs(t, r.Err(), domain.ErrUnknown)
	assert.NotErrorIs(t, r.Err(), domain.ErrConflict)
	assert.False(t, result.ToMutation(r).Success)
}
