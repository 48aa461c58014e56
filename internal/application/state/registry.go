package state

import (
	"fmt"
	"sync"

	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Registry reparte un único Store por clave entre todos sus consumidores y lo libera
// cuando el último lo suelta.
type Registry struct {
	versions Versions
	log      *logger.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	store any
	refs  int
}

// NewRegistry crea un registro que consulta versiones en versions (normalmente el hub).
func NewRegistry(versions Versions, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{versions: versions, log: log, entries: make(map[string]*entry)}
}

// Acquire devuelve el store compartido de key (creándolo si hace falta) y la función
// para soltarlo. Soltar dos veces no tiene efecto. Pedir la misma clave con otro tipo
// es un error de programación y provoca pánico.
func Acquire[T any](r *Registry, key string, load Loader[T], failMsg string) (*Store[T], func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		e = &entry{store: NewStore(key, load, r.versions, failMsg, r.log)}
		r.entries[key] = e
	}
	st, ok := e.store.(*Store[T])
	if !ok {
		panic(fmt.Sprintf("state: la clave %q ya está registrada con otro tipo", key))
	}
	e.refs++

	var once sync.Once
	return st, func() { once.Do(func() { r.release(key, e) }) }
}

func (r *Registry) release(key string, e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.refs--
	if e.refs <= 0 && r.entries[key] == e {
		delete(r.entries, key)
	}
}

// Refs número de consumidores activos de key.
func (r *Registry) Refs(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		return e.refs
	}
	return 0
}
