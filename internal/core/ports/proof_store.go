package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// ProofStore keeps payment screenshots for manual verification and returns
// the key under which the image was stored.
type ProofStore interface {
	Save(ctx context.Context, orderID kernel.UUID, contentType string, data []byte) (string, error)
}
