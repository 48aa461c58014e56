// Package state mantiene el estado derivado por dominio: la última lectura buena de cada
// entidad con sus banderas de carga y error, compartida entre consumidores e invalidada
// por versión cuando alguien escribe.
package state

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Loader trae la lista completa de una entidad.
type Loader[T any] func(ctx context.Context) result.Result[[]T]

// Versions fuente de versiones por clave (cache.Hub).
type Versions interface {
	Version(key string) uint64
}

// Snapshot foto del estado de una entidad. Data nunca es nil.
type Snapshot[T any] struct {
	Data    []T    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Version uint64 `json:"version"`
	Stale   bool   `json:"stale"`
}

// Store guarda la última lista cargada con éxito. Un fallo de carga deja los datos
// anteriores y fija un mensaje fijo de error. Entre cargas solapadas gana la última
// emitida; las de la misma versión se agrupan en una sola llamada.
type Store[T any] struct {
	key      string
	load     Loader[T]
	versions Versions
	failMsg  string
	log      *logger.Logger

	group singleflight.Group

	mu       sync.Mutex
	data     []T
	loaded   bool
	inflight int
	errMsg   string
	version  uint64
	issued   uint64
	applied  uint64
}

// NewStore crea un store para key. versions puede ser nil (nunca se marca obsoleto
// salvo antes de la primera carga).
func NewStore[T any](key string, load Loader[T], versions Versions, failMsg string, log *logger.Logger) *Store[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Store[T]{
		key:      key,
		load:     load,
		versions: versions,
		failMsg:  failMsg,
		log:      log.Named("state"),
		data:     []T{},
	}
}

// Key clave de entidad del store.
func (s *Store[T]) Key() string { return s.key }

func (s *Store[T]) currentVersion() uint64 {
	if s.versions == nil {
		return 0
	}
	return s.versions.Version(s.key)
}

// Load recarga la entidad y devuelve la foto resultante.
func (s *Store[T]) Load(ctx context.Context) Snapshot[T] {
	v := s.currentVersion()

	s.mu.Lock()
	s.inflight++
	s.errMsg = ""
	s.mu.Unlock()

	_, _, _ = s.group.Do(strconv.FormatUint(v, 10), func() (any, error) {
		s.mu.Lock()
		s.issued++
		seq := s.issued
		s.mu.Unlock()

		s.apply(seq, v, s.load(ctx))
		return nil, nil
	})

	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
	return s.Snapshot()
}

// Refresh recarga solo si hubo escrituras desde la última carga (o nunca se cargó).
func (s *Store[T]) Refresh(ctx context.Context) Snapshot[T] {
	if !s.Stale() {
		return s.Snapshot()
	}
	return s.Load(ctx)
}

func (s *Store[T]) apply(seq, version uint64, r result.Result[[]T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		s.log.Debug().Str("key", s.key).Uint64("seq", seq).Uint64("applied", s.applied).Msg("respuesta atrasada descartada")
		return
	}
	s.applied = seq
	if !r.IsOk() {
		s.errMsg = s.failMsg
		s.log.Warn().Str("key", s.key).Str("reason", r.Reason()).Msg("carga fallida, se conservan los datos anteriores")
		return
	}
	s.data = r.Value()
	if s.data == nil {
		s.data = []T{}
	}
	s.version = version
	s.loaded = true
}

// Stale indica si la versión cargada quedó por detrás de la publicada.
func (s *Store[T]) Stale() bool {
	current := s.currentVersion()
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded || current > s.version
}

// Snapshot copia el estado actual.
func (s *Store[T]) Snapshot() Snapshot[T] {
	current := s.currentVersion()
	s.mu.Lock()
	defer s.mu.Unlock()
	data := make([]T, len(s.data))
	copy(data, s.data)
	return Snapshot[T]{
		Data:    data,
		Loading: s.inflight > 0,
		Error:   s.errMsg,
		Version: s.version,
		Stale:   !s.loaded || current > s.version,
	}
}
