package announcement

import (
	"context"
	"log/slog"
)

type Service struct {
	repo         Repository
	logger       *slog.Logger
	relatedLimit int
}

// NewService wires the announcement service. relatedLimit caps the related
// listing; values below 1 fall back to 4.
func NewService(repo Repository, logger *slog.Logger, relatedLimit int) *Service {
	if relatedLimit < 1 {
		relatedLimit = 4
	}
	return &Service{
		repo:         repo,
		logger:       logger,
		relatedLimit: relatedLimit,
	}
}

func (service *Service) List(context context.Context, filter Filter) ([]*Announcement, error) {
	return service.repo.List(context, filter)
}

// Get fetches a published announcement and records the view.
//
// The counter is bumped first, in a single atomic statement, so concurrent
// readers never lose increments; the serialized Views always reflects the
// persisted value returned by that statement. The increment is not rolled
// back if serialization later fails.
func (service *Service) Get(context context.Context, id int) (*Announcement, error) {
	views, err := service.repo.IncrementViews(context, id)
	if err != nil {
		return nil, err
	}

	found, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	found.Views = views
	return found, nil
}

// Related lists announcements sharing the department of the given one.
// A missing or unpublished source announcement yields a 404.
func (service *Service) Related(context context.Context, id int) ([]*Announcement, error) {
	if _, err := service.repo.Get(context, id); err != nil {
		return nil, err
	}
	return service.repo.ListRelated(context, id, service.relatedLimit)
}

// FilterOptions carries the raw material for the filter picker: active
// semesters and the departments that actually have published content.
type FilterOptions struct {
	Semesters   []*Semester
	Departments []string
}

func (service *Service) FilterOptions(context context.Context) (*FilterOptions, error) {
	semesters, err := service.repo.ListActiveSemesters(context)
	if err != nil {
		return nil, err
	}

	departments, err := service.repo.ListDepartments(context)
	if err != nil {
		return nil, err
	}

	return &FilterOptions{Semesters: semesters, Departments: departments}, nil
}
