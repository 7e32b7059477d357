package event

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all events in display order: the curated block first, then
// the chronological block.
func (service *Service) List(context context.Context) ([]*Event, error) {
	events, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return SortForDisplay(events), nil
}

func (service *Service) Get(context context.Context, id int) (*Event, error) {
	return service.repo.Get(context, id)
}
