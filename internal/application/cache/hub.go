// Package cache coordina la invalidación de datos compartidos por entidad: cada clave
// (nombre de tabla) lleva un contador de versión y una lista de suscriptores.
package cache

import (
	"sync"
	"time"
)

// Claves de entidad (coinciden con los nombres de tabla).
const (
	KeyInventoryItems    = "inventory_items"
	KeySuppliers         = "suppliers"
	KeySupplierOrders    = "supplier_orders"
	KeyProductCategories = "product_categories"
	KeyStockAlerts       = "stock_alerts"
	KeyOrders            = "orders"
	KeyUniformRequests   = "uniform_requests"
	KeyLeads             = "leads"
	KeyLeadInteractions  = "lead_interactions"
	KeyProjects          = "projects"
	KeyMeetings          = "meetings"
)

// Invalidator es lo que necesitan los servicios para anunciar una escritura.
type Invalidator interface {
	Invalidate(key string) uint64
}

// Event notifica que la clave Key pasó a Version.
type Event struct {
	Key     string    `json:"key"`
	Version uint64    `json:"version"`
	At      time.Time `json:"at"`
}

// Subscription recibe eventos de invalidación. Cancel es idempotente.
type Subscription struct {
	ID     uint64
	Events <-chan Event
	cancel func()
}

// Cancel da de baja la suscripción y cierra Events.
func (s *Subscription) Cancel() { s.cancel() }

type subscriber struct {
	keys map[string]bool // vacío = todas las claves
	ch   chan Event
}

// Hub mantiene versiones por clave y reparte eventos sin bloquear: si el buffer de un
// suscriptor está lleno el evento se descarta (la versión sigue siendo la fuente de verdad).
type Hub struct {
	mu       sync.RWMutex
	versions map[string]uint64
	subs     map[uint64]*subscriber
	nextID   uint64
	closed   bool
	buffer   int
}

// NewHub crea un hub. buffer es la capacidad del canal de cada suscriptor.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		versions: make(map[string]uint64),
		subs:     make(map[uint64]*subscriber),
		buffer:   buffer,
	}
}

// Version devuelve la versión actual de la clave (0 si nunca se invalidó).
func (h *Hub) Version(key string) uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.versions[key]
}

// Invalidate incrementa la versión de la clave y avisa a los suscriptores.
func (h *Hub) Invalidate(key string) uint64 {
	h.mu.Lock()
	h.versions[key]++
	v := h.versions[key]
	ev := Event{Key: key, Version: v, At: time.Now()}
	for _, s := range h.subs {
		if len(s.keys) > 0 && !s.keys[key] {
			continue
		}
		select {
		case s.ch <- ev:
		default:
		}
	}
	h.mu.Unlock()
	return v
}

// Subscribe registra un suscriptor para las claves dadas (ninguna = todas).
func (h *Hub) Subscribe(keys ...string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.closed {
		close(ch)
		return &Subscription{Events: ch, cancel: func() {}}
	}

	h.nextID++
	id := h.nextID
	s := &subscriber{keys: make(map[string]bool, len(keys)), ch: ch}
	for _, k := range keys {
		s.keys[k] = true
	}
	h.subs[id] = s

	var once sync.Once
	return &Subscription{
		ID:     id,
		Events: ch,
		cancel: func() {
			once.Do(func() { h.unsubscribe(id) })
		},
	}
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.subs[id]; ok {
		close(s.ch)
		delete(h.subs, id)
	}
}

// Subscribers número de suscriptores activos.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close cierra todas las suscripciones; Invalidate sigue contando versiones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.subs {
		close(s.ch)
		delete(h.subs, id)
	}
	h.closed = true
}
