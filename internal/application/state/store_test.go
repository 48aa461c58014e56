package state_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

func TestStore_ConservaDatosAnterioresSiFalla(t *testing.T) {
	calls := 0
	load := func(ctx context.Context) result.Result[[]string] {
		calls++
		if calls == 1 {
			return result.Ok([]string{"a", "b"})
		}
		return result.Err[[]string](errors.New("timeout"))
	}
	st := state.NewStore[string]("k", load, nil, "Error al cargar", logger.Nop())

	first := st.Load(context.Background())
	assert.Equal(t, []string{"a", "b"}, first.Data)
	assert.Empty(t, first.Error)
	assert.False(t, first.Loading)

	second := st.Load(context.Background())
	assert.Equal(t, []string{"a", "b"}, second.Data)
	assert.Equal(t, "Error al cargar", second.Error)
	assert.False(t, second.Loading)
}

func TestStore_NuevaCargaLimpiaElError(t *testing.T) {
	fail := true
	load := func(ctx context.Context) result.Result[[]int] {
		if fail {
			return result.Err[[]int](errors.New("x"))
		}
		return result.Ok([]int{1})
	}
	st := state.NewStore[int]("k", load, nil, "Error", logger.Nop())

	assert.Equal(t, "Error", st.Load(context.Background()).Error)
	fail = false
	snap := st.Load(context.Background())
	assert.Empty(t, snap.Error)
	assert.Equal(t, []int{1}, snap.Data)
}

func TestStore_SinCargarEsObsoletoYDataNoNil(t *testing.T) {
	st := state.NewStore[int]("k", func(ctx context.Context) result.Result[[]int] { return result.Ok[[]int](nil) }, nil, "", nil)

	snap := st.Snapshot()
	assert.True(t, snap.Stale)
	assert.NotNil(t, snap.Data)

	snap = st.Load(context.Background())
	assert.False(t, snap.Stale)
	assert.NotNil(t, snap.Data)
}

func TestStore_GanaLaUltimaEmitida(t *testing.T) {
	hub := cache.NewHub(1)
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int32
	load := func(ctx context.Context) result.Result[[]string] {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return result.Ok([]string{"viejo"})
		}
		return result.Ok([]string{"nuevo"})
	}
	st := state.NewStore[string](cache.KeyInventoryItems, load, hub, "", logger.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st.Load(context.Background())
	}()
	<-started

	hub.Invalidate(cache.KeyInventoryItems)
	latest := st.Load(context.Background())
	assert.Equal(t, []string{"nuevo"}, latest.Data)
	assert.True(t, latest.Loading)

	close(release)
	wg.Wait()

	final := st.Snapshot()
	assert.Equal(t, []string{"nuevo"}, final.Data)
	assert.False(t, final.Loading)
	assert.Equal(t, uint64(1), final.Version)
	assert.False(t, final.Stale)
}

func TestStore_CargasSimultaneasSeAgrupan(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	load := func(ctx context.Context) result.Result[[]int] {
		atomic.AddInt32(&calls, 1)
		<-release
		return result.Ok([]int{7})
	}
	st := state.NewStore[int]("k", load, cache.NewHub(1), "", logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Load(context.Background())
		}()
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []int{7}, st.Snapshot().Data)
}

func TestStore_RefreshSoloSiHayEscrituras(t *testing.T) {
	hub := cache.NewHub(1)
	var calls int
	st := state.NewStore[int]("k", func(ctx context.Context) result.Result[[]int] {
		calls++
		return result.Ok([]int{calls})
	}, hub, "", logger.Nop())
	ctx := context.Background()

	st.Refresh(ctx)
	st.Refresh(ctx)
	assert.Equal(t, 1, calls)

	hub.Invalidate("otra")
	st.Refresh(ctx)
	assert.Equal(t, 1, calls)

	hub.Invalidate("k")
	assert.True(t, st.Stale())
	snap := st.Refresh(ctx)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{2}, snap.Data)
}

func TestStore_SnapshotEsCopia(t *testing.T) {
	st := state.NewStore[int]("k", func(ctx context.Context) result.Result[[]int] { return result.Ok([]int{1, 2}) }, nil, "", nil)
	snap := st.Load(context.Background())

	snap.Data[0] = 99

	assert.Equal(t, []int{1, 2}, st.Snapshot().Data)
}
