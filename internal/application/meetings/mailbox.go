package meetings

import (
	"context"
	"sync"
)

// LeadSelection lead elegido en el selector y entregado al editor de reuniones.
type LeadSelection struct {
	LeadID   string `json:"lead_id"`
	LeadName string `json:"lead_name"`
}

// Mailbox buzón de una sola clave: la última escritura gana y Take la consume.
type Mailbox interface {
	Put(ctx context.Context, sel LeadSelection) error
	// Take devuelve y borra la selección; nil si el buzón está vacío.
	Take(ctx context.Context) (*LeadSelection, error)
	// Peek devuelve la selección sin borrarla.
	Peek(ctx context.Context) (*LeadSelection, error)
}

// MemoryMailbox buzón en proceso, para tests y despliegues sin Redis.
type MemoryMailbox struct {
	mu  sync.Mutex
	sel *LeadSelection
}

var _ Mailbox = (*MemoryMailbox)(nil)

// NewMemoryMailbox crea un buzón vacío.
func NewMemoryMailbox() *MemoryMailbox { return &MemoryMailbox{} }

func (m *MemoryMailbox) Put(_ context.Context, sel LeadSelection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sel = &sel
	return nil
}

func (m *MemoryMailbox) Take(_ context.Context) (*LeadSelection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sel := m.sel
	m.sel = nil
	return sel, nil
}

func (m *MemoryMailbox) Peek(_ context.Context) (*LeadSelection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sel == nil {
		return nil, nil
	}
	cp := *m.sel
	return &cp, nil
}
