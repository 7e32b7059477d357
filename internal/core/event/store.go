package event

import "context"

// Repository is the storage contract for events. Both methods return fully
// hydrated aggregates: sponsors and gallery paths are included.
type Repository interface {
	// List returns every event. Display ordering is applied by the service,
	// not the store.
	List(context context.Context) ([]*Event, error)

	// Get returns a single event by identifier.
	Get(context context.Context, id int) (*Event, error)
}
