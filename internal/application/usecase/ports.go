// internal/application/usecase/ports.go
package usecase

import (
	"context"
	"time"

	orderdom "github.com/MhmdMaazin/ecommerce-platform/internal/domain/order"
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// EmailSender sends transactional mail (order confirmations).
type EmailSender interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// OrderArchive mirrors placed orders into secondary storage for reporting.
// Failures are best-effort and must not affect order placement.
type OrderArchive interface {
	Archive(ctx context.Context, o orderdom.Order) error
}

// ImageURLResolver turns stored image references (gs://bucket/object) into
// URLs a browser can fetch. Plain https references pass through unchanged.
type ImageURLResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}
