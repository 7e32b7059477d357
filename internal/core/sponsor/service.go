package sponsor

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

// Grouped returns the directory partitioned by type, each group in the
// store's order.
func (service *Service) Grouped(context context.Context) (*Grouped, error) {
	sponsors, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return GroupByType(sponsors), nil
}
