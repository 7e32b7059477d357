package sponsor

import "context"

// Repository abstracts sponsor persistence. List returns the whole
// directory ordered by display order then creation time.
type Repository interface {
	List(ctx context.Context) ([]*Sponsor, error)
}
