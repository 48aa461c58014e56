package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// EventsHandler publica por SSE las invalidaciones del hub para que los clientes
// recarguen sus listas.
type EventsHandler struct {
	hub       *cache.Hub
	log       *logger.Logger
	heartbeat time.Duration
}

// NewEventsHandler construye el handler.
func NewEventsHandler(hub *cache.Hub, log *logger.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, log: log.Named("events"), heartbeat: 30 * time.Second}
}

// Stream godoc
// @Summary      Stream de invalidaciones
// @Description  Un evento "invalidate" por escritura. Sin keys recibe todas las entidades.
// @Tags         events
// @Produce      text/event-stream
// @Param        keys  query  string  false  "Claves separadas por coma (inventory_items, suppliers, ...)"
// @Success      200
// @Router       /api/events [get]
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	var keys []string
	for _, k := range strings.Split(c.Query("keys"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	sub := h.hub.Subscribe(keys...)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer sub.Cancel()
		fmt.Fprintf(w, "event: connected\ndata: {\"subscription\":%d}\n\n", sub.ID)
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(h.heartbeat)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-sub.Events:
				if !ok {
					return
				}
				if err := writeEvent(w, ev); err != nil {
					h.log.Debug().Err(err).Uint64("subscription", sub.ID).Msg("cliente SSE desconectado")
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})
	return nil
}

func writeEvent(w *bufio.Writer, ev cache.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: invalidate\ndata: %s\n\n", data); err != nil {
		return err
	}
	return w.Flush()
}
