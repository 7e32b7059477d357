package experience

import (
	"context"

	"github.com/google/uuid"
)

// Repository abstracts experience persistence. List returns testimonials
// newest first by posting date.
type Repository interface {
	List(ctx context.Context) ([]*Experience, error)
	Get(ctx context.Context, id uuid.UUID) (*Experience, error)
}
