package output

import (
	"context"

	"gaasbot/internal/domain/entities"
)

// LeaveStore persists accepted leave records. It is append-only.
type LeaveStore interface {
	Append(ctx context.Context, record *entities.LeaveRecord) error
}
