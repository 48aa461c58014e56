package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/config"
)

// HandoffMailbox buzón de traspaso lead → reunión sobre una única clave de Redis.
// Varias instancias de la API comparten la selección.
type HandoffMailbox struct {
	rdb goredis.Cmdable
	key string
}

var _ meetings.Mailbox = (*HandoffMailbox)(nil)

// NewClient crea el cliente a partir de la configuración.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewHandoffMailbox construye el buzón sobre key.
func NewHandoffMailbox(rdb goredis.Cmdable, key string) *HandoffMailbox {
	return &HandoffMailbox{rdb: rdb, key: key}
}

// Put sobrescribe la selección anterior.
func (m *HandoffMailbox) Put(ctx context.Context, sel meetings.LeadSelection) error {
	b, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("encode lead selection: %w", err)
	}
	if err := m.rdb.Set(ctx, m.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", m.key, err)
	}
	return nil
}

// Take lee y borra la selección en un solo comando (GETDEL).
func (m *HandoffMailbox) Take(ctx context.Context) (*meetings.LeadSelection, error) {
	raw, err := m.rdb.GetDel(ctx, m.key).Bytes()
	return decodeSelection(m.key, raw, err)
}

// Peek lee la selección sin consumirla.
func (m *HandoffMailbox) Peek(ctx context.Context) (*meetings.LeadSelection, error) {
	raw, err := m.rdb.Get(ctx, m.key).Bytes()
	return decodeSelection(m.key, raw, err)
}

func decodeSelection(key string, raw []byte, err error) (*meetings.LeadSelection, error) {
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	var sel meetings.LeadSelection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return nil, fmt.Errorf("decode lead selection: %w", err)
	}
	return &sel, nil
}
