package announcement

import "context"

// Repository is the storage contract for announcements.
//
// Every method operates on published rows only; drafts are invisible at
// this boundary.
type Repository interface {
	// List returns published announcements matching the filter, sorted per
	// the filter's sort fields with a stable secondary key.
	List(context context.Context, filter Filter) ([]*Announcement, error)

	// Get returns a single published announcement with its semester and
	// related links hydrated.
	Get(context context.Context, id int) (*Announcement, error)

	// IncrementViews bumps the view counter in a single atomic statement
	// and returns the persisted value.
	IncrementViews(context context.Context, id int) (int64, error)

	// ListRelated returns up to limit published announcements sharing the
	// given announcement's department, excluding the announcement itself.
	ListRelated(context context.Context, id int, limit int) ([]*Announcement, error)

	// ListActiveSemesters returns active semesters, newest code first.
	ListActiveSemesters(context context.Context) ([]*Semester, error)

	// ListDepartments returns the distinct departments of published
	// announcements.
	ListDepartments(context context.Context) ([]string, error)
}
