package scholarship

import "context"

// Repository abstracts scholarship persistence. Every method operates on
// active entries only; inactive rows are invisible to the API.
type Repository interface {
	ListActive(ctx context.Context) ([]*Scholarship, error)
	GetActive(ctx context.Context, id int) (*Scholarship, error)
	ListActiveByType(ctx context.Context, scholarshipType Type) ([]*Scholarship, error)
}
