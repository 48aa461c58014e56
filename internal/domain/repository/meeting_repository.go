package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// MeetingRepository define el puerto de persistencia para meetings. Objetivos y tareas
// viajan dentro del documento de la reunión.
type MeetingRepository interface {
	List(ctx context.Context, department string) ([]entity.Meeting, error)
	GetByID(ctx context.Context, id string) (*entity.Meeting, error)
	// Upsert inserta o reemplaza el documento completo.
	Upsert(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	Delete(ctx context.Context, id string) error
}
