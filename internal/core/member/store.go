package member

import "context"

// Repository is the storage contract for the roster.
type Repository interface {
	// List returns every member ordered by (position, lastname, firstname).
	List(context context.Context) ([]*Member, error)
}
