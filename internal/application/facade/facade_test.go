package facade_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

func TestRows_NilYErrorSonListaVacia(t *testing.T) {
	log := logger.Nop()

	ok := facade.Rows[int](log, "x", nil, nil)
	assert.True(t, ok.IsOk())
	assert.Equal(t, []int{}, ok.Value())

	ko := facade.Rows[int](log, "x", []int{1}, errors.New("caída"))
	assert.False(t, ko.IsOk())
	assert.Equal(t, []int{}, result.ToList(ko))
}

func TestOne_SinFilaEsNotFound(t *testing.T) {
	r := facade.One[string](logger.Nop(), "x", nil, nil)
	assert.ErrorIs(t, r.Err(), domain.ErrNotFound)
}

func TestTouch_SoloInvalidaEnExito(t *testing.T) {
	hub := cache.NewHub(1)
	facade.Touch(hub, cache.KeyOrders, result.Err[struct{}](errors.New("x")))
	assert.Equal(t, uint64(0), hub.Version(cache.KeyOrders))

	facade.Touch(hub, cache.KeyOrders, result.Ok(struct{}{}))
	assert.Equal(t, uint64(1), hub.Version(cache.KeyOrders))

	facade.Touch[struct{}](nil, cache.KeyOrders, result.Ok(struct{}{}))
}
