package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInvalidate_IncrementaVersionPorClave(t *testing.T) {
	h := cache.NewHub(4)
	assert.Equal(t, uint64(0), h.Version(cache.KeyInventoryItems))

	assert.Equal(t, uint64(1), h.Invalidate(cache.KeyInventoryItems))
	assert.Equal(t, uint64(2), h.Invalidate(cache.KeyInventoryItems))
	assert.Equal(t, uint64(0), h.Version(cache.KeySuppliers), "otra clave no se ve afectada")
}

func TestSubscribe_FiltraPorClave(t *testing.T) {
	h := cache.NewHub(4)
	sub := h.Subscribe(cache.KeySuppliers)
	defer sub.Cancel()

	h.Invalidate(cache.KeyInventoryItems)
	h.Invalidate(cache.KeySuppliers)

	ev := <-sub.Events
	assert.Equal(t, cache.KeySuppliers, ev.Key)
	assert.Equal(t, uint64(1), ev.Version)
	assert.Len(t, sub.Events, 0)
}

func TestInvalidate_NoBloqueaConBufferLleno(t *testing.T) {
	h := cache.NewHub(1)
	sub := h.Subscribe()
	defer sub.Cancel()

	for i := 0; i < 10; i++ {
		h.Invalidate(cache.KeyOrders)
	}
	assert.Equal(t, uint64(10), h.Version(cache.KeyOrders))
	assert.Len(t, sub.Events, 1)
}

func TestCancel_EsIdempotenteYCierraCanal(t *testing.T) {
	h := cache.NewHub(2)
	sub := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	sub.Cancel()
	sub.Cancel()
	_, open := <-sub.Events
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers())
}

func TestConcurrencia_SuscriptoresEInvalidaciones(t *testing.T) {
	h := cache.NewHub(64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := h.Subscribe(cache.KeyLeads)
			for j := 0; j < 20; j++ {
				h.Invalidate(cache.KeyLeads)
			}
			sub.Cancel()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(160), h.Version(cache.KeyLeads))
	h.Close()
}
