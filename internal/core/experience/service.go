package experience

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context) ([]*Experience, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id uuid.UUID) (*Experience, error) {
	return service.repo.Get(context, id)
}
