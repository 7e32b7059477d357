package scholarship

import (
	"context"
	"log/slog"

	"github.com/tsakorea/tsak-api/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context) ([]*Scholarship, error) {
	return service.repo.ListActive(context)
}

func (service *Service) Get(context context.Context, id int) (*Scholarship, error) {
	return service.repo.GetActive(context, id)
}

// ByType lists active scholarships of one provider type. An unknown type
// segment is a client error, not an empty result.
func (service *Service) ByType(context context.Context, scholarshipType Type) ([]*Scholarship, error) {
	if !scholarshipType.IsValid() {
		return nil, apperr.ValidationError(InvalidTypeMessage())
	}
	return service.repo.ListActiveByType(context, scholarshipType)
}
